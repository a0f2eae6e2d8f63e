package menu

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is one of the fixed color tokens a theme may name.
// The zero value means "not set" and resolves to the theme default.
type Color uint8

const (
	ColorUnset Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorGray
)

var colorNames = map[Color]string{
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorBlue:    "blue",
	ColorYellow:  "yellow",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorGray:    "gray",
}

// ParseColor maps a token to a Color. Unknown tokens return ColorUnset and false.
// "grey" is accepted as an alias for gray.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "grey" {
		return ColorGray, true
	}
	for c, name := range colorNames {
		if name == s {
			return c, true
		}
	}
	return ColorUnset, false
}

// String returns the token name, or "" when unset.
func (c Color) String() string {
	return colorNames[c]
}

// IsSet reports whether c names a real color.
func (c Color) IsSet() bool {
	_, ok := colorNames[c]
	return ok
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText never fails: unknown tokens decode to ColorUnset so a bad
// skin file degrades to the default theme instead of refusing to load.
func (c *Color) UnmarshalText(text []byte) error {
	*c, _ = ParseColor(string(text))
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		*c = ColorUnset
		return nil
	}
	return c.UnmarshalText([]byte(s))
}
