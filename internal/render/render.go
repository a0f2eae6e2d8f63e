// Package render writes a calculated menu layout to an output stream.
//
// A Renderer is cheap to build and holds no state between calls; create one
// per call site with New. It is not safe for concurrent use: two goroutines
// rendering to the same terminal interleave lines and break the fixed
// textbox position, so callers serialize.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moasq/menuforge/internal/layout"
	"github.com/moasq/menuforge/internal/menu"
	"github.com/moasq/menuforge/internal/theme"
)

// TopLevel is the menu level at which the "back" hint is omitted.
const TopLevel = "main"

const (
	clearScreen    = "\x1b[2J\x1b[H"
	textboxDivider = "─"
	hintIcon       = "💡 "
	hintPrefix     = "» "
)

// Context describes where the menu sits in the caller's navigation.
type Context struct {
	SkinID     string   `yaml:"skin_id,omitempty" json:"skin_id,omitempty"`
	Level      string   `yaml:"level,omitempty" json:"level,omitempty"`
	Breadcrumb []string `yaml:"breadcrumb,omitempty" json:"breadcrumb,omitempty"`
	// Status is written on the first reserved textbox line, so the prompt
	// row does not move when a message is shown.
	Status string `yaml:"status,omitempty" json:"status,omitempty"`
}

// IsTopLevel reports whether the menu is the root of navigation.
func (c Context) IsTopLevel() bool {
	return c.Level == TopLevel
}

// Renderer writes menus to w.
type Renderer struct {
	w     io.Writer
	style *lipgloss.Renderer
	clear bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClearScreen clears the terminal before every menu even when the layout
// does not enforce a consistent height.
func WithClearScreen(on bool) Option {
	return func(r *Renderer) { r.clear = on }
}

// WithStyleRenderer overrides the lipgloss renderer, mainly to force a color
// profile.
func WithStyleRenderer(lr *lipgloss.Renderer) Option {
	return func(r *Renderer) { r.style = lr }
}

// New returns a Renderer bound to w. Color output is enabled only when w is
// a terminal.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w}
	for _, opt := range opts {
		opt(r)
	}
	if r.style == nil {
		r.style = lipgloss.NewRenderer(w)
	}
	return r
}

// Render writes def using l. Body lines (title through the closing blank)
// never exceed l.ContentLines; after them come the padding lines and the
// textbox area. With at least three textbox lines and a target height of at
// least TextboxLines+PaddingLines (see layout.Constraints.Validate) the
// output is exactly l.TotalLines lines long. Below that height the body is
// dropped but padding and textbox lines are still written in full.
func (r *Renderer) Render(def menu.Definition, l layout.Calculated, ctx Context) error {
	st := l.Theme.Styles(r.style)
	out := &lineWriter{w: r.w}

	if l.EnforceConsistentHeight || r.clear {
		out.raw(clearScreen)
	}

	body := &budget{out: out, limit: l.ContentLines}
	body.line(st.Title(def.Title))
	body.line(st.Separator(strings.Repeat(l.SeparatorChar, l.SeparatorLength)))
	if def.Subtitle != "" {
		body.line(st.Description(def.Subtitle))
	}
	body.line("")

	// Under truncation the last body line is kept for the notice.
	itemLimit := l.ContentLines
	if l.NeedsTruncation {
		itemLimit--
	}
	shown := 0
	for i, it := range def.Items {
		if body.used >= itemLimit {
			break
		}
		body.line(itemLine(st, i+1, it))
		shown++
	}

	if l.NeedsTruncation {
		body.line(st.Description(truncationNotice(len(def.Items) - shown)))
	} else {
		body.line("")
	}

	for i := 0; i < l.PaddingLinesNeeded+l.BreathingLines; i++ {
		out.line("")
	}

	out.line(st.Separator(strings.Repeat(textboxDivider, l.SeparatorLength)))
	icon := hintPrefix
	if l.Theme.UseIcons {
		icon = hintIcon
	}
	out.line(st.Hint(icon) + st.Description(Hint(ctx)))
	for i := 0; i < max(1, l.TextboxAreaLines-2); i++ {
		if i == 0 && ctx.Status != "" {
			out.line(st.Hint(ctx.Status))
			continue
		}
		out.line("")
	}

	if out.err != nil {
		return fmt.Errorf("render menu %q: %w", def.Title, out.err)
	}
	return nil
}

// Hint is the navigation hint shown above the prompt.
func Hint(ctx Context) string {
	hints := make([]string, 0, 3)
	if !ctx.IsTopLevel() {
		hints = append(hints, `"back" to return`)
	}
	hints = append(hints, `"help" for commands`, `"quit" to exit`)
	return strings.Join(hints, ", ")
}

func itemLine(st theme.Styles, n int, it menu.Item) string {
	label := st.Item(it.Label)
	if it.Heading {
		label = st.Heading(it.Label)
	}
	s := "  " + st.Index(strconv.Itoa(n)) + ". " + label
	if it.Description != "" {
		s += st.Description(" - " + it.Description)
	}
	return s
}

func truncationNotice(hidden int) string {
	if hidden <= 0 {
		return "  … more options available"
	}
	return fmt.Sprintf("  … %d more options available", hidden)
}

// budget drops lines once limit lines have been written.
type budget struct {
	out   *lineWriter
	limit int
	used  int
}

func (b *budget) line(s string) {
	if b.used >= b.limit {
		return
	}
	b.out.line(s)
	b.used++
}

// lineWriter keeps the first write error and ignores later writes.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	lw.raw(s + "\n")
}

func (lw *lineWriter) raw(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s)
}
