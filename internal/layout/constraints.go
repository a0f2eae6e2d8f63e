package layout

import (
	"errors"
	"fmt"
	"strings"
)

// HeightStrategy selects how the planner hits its target height.
type HeightStrategy int

const (
	// StrategyMinHeight grows the menu past MinHeight instead of clipping it.
	StrategyMinHeight HeightStrategy = iota
	// StrategyFixedHeight keeps TotalLines at FixedHeight and truncates items
	// that do not fit.
	StrategyFixedHeight
)

func (s HeightStrategy) String() string {
	switch s {
	case StrategyFixedHeight:
		return "fixed"
	default:
		return "min"
	}
}

// ParseStrategy accepts "min"/"minimum" and "fixed".
func ParseStrategy(s string) (HeightStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "min", "minimum", "min-height":
		return StrategyMinHeight, nil
	case "fixed", "fixed-height":
		return StrategyFixedHeight, nil
	}
	return StrategyMinHeight, fmt.Errorf("unknown height strategy %q (want min or fixed)", s)
}

func (s HeightStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *HeightStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Constraints are supplied by the caller on every call. The pipeline applies
// no defaults of its own.
type Constraints struct {
	Strategy    HeightStrategy `yaml:"strategy" json:"strategy"`
	MinHeight   int            `yaml:"min_height" json:"min_height"`
	FixedHeight int            `yaml:"fixed_height,omitempty" json:"fixed_height,omitempty"`

	MinWidth int `yaml:"min_width" json:"min_width"`
	MaxWidth int `yaml:"max_width" json:"max_width"`

	TextboxLines int `yaml:"textbox_lines" json:"textbox_lines"`
	PaddingLines int `yaml:"padding_lines" json:"padding_lines"`

	EnforceConsistentHeight bool `yaml:"enforce_consistent_height" json:"enforce_consistent_height"`
}

// TargetHeight is the height the active strategy aims for.
func (c Constraints) TargetHeight() int {
	if c.Strategy == StrategyFixedHeight {
		return c.FixedHeight
	}
	return c.MinHeight
}

// Validate reports constraint values that would produce a degenerate layout.
// The layout functions themselves never call it and accept any input.
func (c Constraints) Validate() error {
	var errs []error
	if c.MinWidth < 1 {
		errs = append(errs, fmt.Errorf("min width must be positive, got %d", c.MinWidth))
	}
	if c.MaxWidth < c.MinWidth {
		errs = append(errs, fmt.Errorf("max width %d is below min width %d", c.MaxWidth, c.MinWidth))
	}
	if c.TextboxLines < 3 {
		errs = append(errs, fmt.Errorf("textbox lines must be at least 3, got %d", c.TextboxLines))
	}
	if c.PaddingLines < 0 {
		errs = append(errs, fmt.Errorf("padding lines cannot be negative, got %d", c.PaddingLines))
	}
	if h := c.TargetHeight(); h < c.TextboxLines+c.PaddingLines {
		errs = append(errs, fmt.Errorf("%s height %d leaves no room for content", c.Strategy, h))
	}
	return errors.Join(errs...)
}
