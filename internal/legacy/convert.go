package legacy

import (
	"fmt"
	"strings"

	"github.com/moasq/menuforge/internal/layout"
	"github.com/moasq/menuforge/internal/menu"
	"github.com/moasq/menuforge/internal/theme"
)

// levelColors picks a primary color for menus whose first section names
// none.
var levelColors = map[string]menu.Color{
	"main":      menu.ColorRed,
	"config":    menu.ColorBlue,
	"templates": menu.ColorYellow,
	"advanced":  menu.ColorMagenta,
	"generate":  menu.ColorGreen,
	"settings":  menu.ColorCyan,
}

// Convert flattens content into a menu.Definition. With more than one
// section every heading becomes a non-interactive pseudo-item placed before
// its items. ctx may be nil.
func Convert(content Content, ctx *DisplayContext) menu.Definition {
	def := menu.Definition{
		Title:    content.Title,
		Subtitle: content.Subtitle,
		Theme:    convertTheme(content, ctx),
	}

	multi := len(content.Sections) > 1
	n := 0
	for _, section := range content.Sections {
		if multi && section.Heading != "" {
			def.Items = append(def.Items, menu.Item{
				ID:          "section-" + slug(section.Heading),
				Label:       section.Heading,
				Description: section.Description,
				Kind:        menu.KindAction,
				Heading:     true,
			})
		}
		for _, it := range section.Items {
			n++
			id := fmt.Sprintf("item-%d", n)
			var command string
			if len(it.Commands) > 0 && it.Commands[0] != "" {
				id = it.Commands[0]
				command = it.Commands[0]
			}
			def.Items = append(def.Items, menu.Item{
				ID:          id,
				Label:       it.Label,
				Description: it.Description,
				Kind:        ConvertKind(it.Kind),
				Command:     command,
			})
		}
	}
	return def
}

// ConvertKind maps the legacy vocabulary onto the three menu kinds.
// navigation becomes submenu and setting becomes command; unknown kinds are
// treated as commands.
func ConvertKind(k Kind) menu.ItemKind {
	switch k {
	case KindNavigation:
		return menu.KindSubmenu
	case KindAction:
		return menu.KindAction
	case KindCommand, KindSetting:
		return menu.KindCommand
	default:
		return menu.KindCommand
	}
}

// LevelColor returns the default primary color for a menu level.
func LevelColor(level string) (menu.Color, bool) {
	c, ok := levelColors[level]
	return c, ok
}

func convertTheme(content Content, ctx *DisplayContext) *menu.Theme {
	primary := theme.DefaultPrimary
	if c, ok := firstHeadingColor(content); ok {
		primary = c
	} else if ctx != nil {
		if c, ok := LevelColor(ctx.Level); ok {
			primary = c
		}
	}
	return &menu.Theme{
		PrimaryColor:  primary,
		AccentColor:   menu.ColorCyan,
		SeparatorChar: theme.DefaultSeparatorChar,
		UseIcons:      true,
	}
}

func firstHeadingColor(content Content) (menu.Color, bool) {
	if len(content.Sections) == 0 || content.Sections[0].Theme == nil {
		return menu.ColorUnset, false
	}
	return menu.ParseColor(content.Sections[0].Theme.HeadingColor)
}

func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// Options are the legacy composer's layout knobs, under their old names.
type Options struct {
	MinSeparatorLength int `yaml:"min_separator_length,omitempty" json:"min_separator_length,omitempty"`
	MaxSeparatorLength int `yaml:"max_separator_length,omitempty" json:"max_separator_length,omitempty"`
	FixedHeight        int `yaml:"fixed_height,omitempty" json:"fixed_height,omitempty"`
}

// Defaults the legacy composer used when an option was zero.
const (
	DefaultFixedHeight        = 25
	DefaultMinSeparatorLength = 40
	DefaultMaxSeparatorLength = 100
	DefaultTextboxLines       = 3
	DefaultPaddingLines       = 2
)

// Constraints renames legacy options into fixed-height layout constraints.
func (o Options) Constraints() layout.Constraints {
	return layout.Constraints{
		Strategy:                layout.StrategyFixedHeight,
		FixedHeight:             orDefault(o.FixedHeight, DefaultFixedHeight),
		MinWidth:                orDefault(o.MinSeparatorLength, DefaultMinSeparatorLength),
		MaxWidth:                orDefault(o.MaxSeparatorLength, DefaultMaxSeparatorLength),
		TextboxLines:            DefaultTextboxLines,
		PaddingLines:            DefaultPaddingLines,
		EnforceConsistentHeight: true,
	}
}

// ConvertWithConstraints converts content and maps the legacy options in one
// step.
func ConvertWithConstraints(content Content, ctx *DisplayContext, opts Options) (menu.Definition, layout.Constraints) {
	return Convert(content, ctx), opts.Constraints()
}

// Named is one menu in a batch conversion.
type Named struct {
	ID      string
	Content Content
	Context *DisplayContext
	Options Options
}

// ConvertAll converts a batch keyed by ID. Later duplicates win.
func ConvertAll(menus []Named) map[string]menu.Definition {
	out := make(map[string]menu.Definition, len(menus))
	for _, m := range menus {
		out[m.ID] = Convert(m.Content, m.Context)
	}
	return out
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
