// Package theme resolves a menu theme's color tokens into text styles.
// Resolution is total: missing or unknown tokens fall back to the default
// palette and never produce an error.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/moasq/menuforge/internal/menu"
)

// Defaults applied when a theme omits a value.
const (
	DefaultPrimary       = menu.ColorRed
	DefaultAccent        = menu.ColorGray
	DefaultSeparatorChar = "═"
)

// Palette is a fully resolved theme. It is a plain comparable value so a
// calculated layout that carries it stays comparable too.
type Palette struct {
	Primary       menu.Color `yaml:"primary" json:"primary"`
	Accent        menu.Color `yaml:"accent" json:"accent"`
	SeparatorChar string     `yaml:"separator_char" json:"separator_char"`
	UseIcons      bool       `yaml:"use_icons" json:"use_icons"`
}

// Styles are the text transforms the renderer applies.
type Styles struct {
	Title       func(string) string
	Heading     func(string) string
	Item        func(string) string
	Index       func(string) string
	Description func(string) string
	Separator   func(string) string
	Hint        func(string) string
}

// Resolve fills every gap in t with the defaults. A nil theme yields the
// default palette.
func Resolve(t *menu.Theme) Palette {
	p := Palette{
		Primary:       DefaultPrimary,
		Accent:        DefaultAccent,
		SeparatorChar: DefaultSeparatorChar,
	}
	if t == nil {
		return p
	}
	if t.PrimaryColor.IsSet() {
		p.Primary = t.PrimaryColor
	}
	if t.AccentColor.IsSet() {
		p.Accent = t.AccentColor
	}
	if t.SeparatorChar != "" {
		p.SeparatorChar = t.SeparatorChar
	}
	p.UseIcons = t.UseIcons
	return p
}

// Styles builds the style functions for p. The renderer decides the color
// profile, so a renderer bound to a non-terminal writer yields plain text.
// A nil renderer uses lipgloss's default (stdout) renderer.
func (p Palette) Styles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	primary := r.NewStyle().Foreground(ansiColor(p.Primary))
	accent := r.NewStyle().Foreground(ansiColor(p.Accent))
	green := r.NewStyle().Foreground(ansiColor(menu.ColorGreen))
	gray := r.NewStyle().Foreground(ansiColor(menu.ColorGray))

	return Styles{
		Title:       render(primary.Bold(true)),
		Heading:     render(accent.Bold(true)),
		Item:        render(green),
		Index:       render(primary),
		Description: render(gray),
		Separator:   render(gray),
		Hint:        render(r.NewStyle().Foreground(ansiColor(menu.ColorBlue))),
	}
}

func render(s lipgloss.Style) func(string) string {
	return func(text string) string {
		if text == "" {
			return ""
		}
		return s.Render(text)
	}
}

// ansiColor maps a token to its basic ANSI palette index.
func ansiColor(c menu.Color) lipgloss.Color {
	switch c {
	case menu.ColorRed:
		return lipgloss.Color("1")
	case menu.ColorGreen:
		return lipgloss.Color("2")
	case menu.ColorYellow:
		return lipgloss.Color("3")
	case menu.ColorBlue:
		return lipgloss.Color("4")
	case menu.ColorMagenta:
		return lipgloss.Color("5")
	case menu.ColorCyan:
		return lipgloss.Color("6")
	case menu.ColorGray:
		return lipgloss.Color("8")
	default:
		return ansiColor(DefaultPrimary)
	}
}
