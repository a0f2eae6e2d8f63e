package legacy

import (
	"fmt"

	"github.com/moasq/menuforge/internal/menu"
)

// Validation reports information lost in a conversion. Issues are
// informational; the converted definition stays usable either way.
type Validation struct {
	IsValid bool     `yaml:"is_valid" json:"is_valid"`
	Issues  []string `yaml:"issues,omitempty" json:"issues,omitempty"`
	Summary Summary  `yaml:"summary" json:"summary"`
}

// Summary holds the compared values.
type Summary struct {
	OriginalItems  int  `yaml:"original_items" json:"original_items"`
	ConvertedItems int  `yaml:"converted_items" json:"converted_items"`
	TitleMatch     bool `yaml:"title_match" json:"title_match"`
	SubtitleMatch  bool `yaml:"subtitle_match" json:"subtitle_match"`
	// DroppedHints counts footer hints with no place in a menu.Definition;
	// the renderer derives its hint line from the navigation level instead.
	DroppedHints int `yaml:"dropped_hints,omitempty" json:"dropped_hints,omitempty"`
}

// Validate compares a legacy menu with its conversion. Section-heading
// pseudo-items are not counted as items. Footer hints are always reported,
// since the converted menu cannot carry them.
func Validate(original Content, converted menu.Definition) Validation {
	var issues []string

	origItems := original.ItemCount()
	convItems := converted.InteractiveCount()
	if origItems != convItems {
		issues = append(issues, fmt.Sprintf("item count mismatch: original=%d, converted=%d", origItems, convItems))
	}

	titleMatch := original.Title == converted.Title
	if !titleMatch {
		issues = append(issues, fmt.Sprintf("title mismatch: %q vs %q", original.Title, converted.Title))
	}

	subtitleMatch := original.Subtitle == converted.Subtitle
	if !subtitleMatch {
		issues = append(issues, fmt.Sprintf("subtitle mismatch: %q vs %q", original.Subtitle, converted.Subtitle))
	}

	if n := len(original.FooterHints); n > 0 {
		issues = append(issues, fmt.Sprintf("footer hints dropped: %d (%q)", n, original.FooterHints))
	}

	return Validation{
		IsValid: len(issues) == 0,
		Issues:  issues,
		Summary: Summary{
			OriginalItems:  origItems,
			ConvertedItems: convItems,
			TitleMatch:     titleMatch,
			SubtitleMatch:  subtitleMatch,
			DroppedHints:   len(original.FooterHints),
		},
	}
}
