// Package layout measures a menu definition and turns the measurements plus
// caller constraints into a CalculatedLayout: separator width, content and
// padding line counts, and whether items must be truncated.
//
// Everything here is a pure function of its inputs.
package layout

import (
	"github.com/moasq/menuforge/internal/menu"
	"github.com/moasq/menuforge/internal/theme"
)

// Calculated is everything the renderer needs for one render call. It is
// built once, consumed, and discarded.
type Calculated struct {
	SeparatorLength int `yaml:"separator_length" json:"separator_length"`
	MenuWidth       int `yaml:"menu_width" json:"menu_width"`

	TotalLines         int `yaml:"total_lines" json:"total_lines"`
	ContentLines       int `yaml:"content_lines" json:"content_lines"`
	TextboxAreaLines   int `yaml:"textbox_area_lines" json:"textbox_area_lines"`
	PaddingLinesNeeded int `yaml:"padding_lines_needed" json:"padding_lines_needed"`
	BreathingLines     int `yaml:"breathing_lines" json:"breathing_lines"`

	NeedsTruncation         bool          `yaml:"needs_truncation" json:"needs_truncation"`
	EnforceConsistentHeight bool          `yaml:"enforce_consistent_height" json:"enforce_consistent_height"`
	Theme                   theme.Palette `yaml:"theme" json:"theme"`
	SeparatorChar           string        `yaml:"separator_char" json:"separator_char"`
}

// TextboxRow is the 0-based line at which the textbox area starts. It only
// matches rendered output when the constraints pass Validate; a fixed height
// below TextboxLines+PaddingLines makes the output longer than TotalLines.
func (l Calculated) TextboxRow() int {
	return l.TotalLines - l.TextboxAreaLines
}

// Calculate runs the measurer, width calculator and height planner for def
// under c and attaches the resolved theme.
func Calculate(def menu.Definition, c Constraints) Calculated {
	return compose(def, c, SeparatorLength(Measure(def), c))
}

// CalculateForLevel is Calculate with the level-aware separator width.
func CalculateForLevel(def menu.Definition, level string, c Constraints) Calculated {
	return compose(def, c, ContextSeparatorLength(Measure(def), level, c))
}

func compose(def menu.Definition, c Constraints, width int) Calculated {
	m := Measure(def)
	h := PlanHeight(m, c)
	palette := theme.Resolve(def.Theme)

	return Calculated{
		SeparatorLength:         width,
		MenuWidth:               width,
		TotalLines:              h.TotalLines,
		ContentLines:            h.ContentLines,
		TextboxAreaLines:        c.TextboxLines,
		PaddingLinesNeeded:      h.PaddingNeeded,
		BreathingLines:          max(0, c.PaddingLines),
		NeedsTruncation:         h.NeedsTruncation,
		EnforceConsistentHeight: c.EnforceConsistentHeight,
		Theme:                   palette,
		SeparatorChar:           palette.SeparatorChar,
	}
}
