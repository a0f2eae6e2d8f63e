// Package skin resolves named menus from skins and renders them through the
// layout pipeline.
//
// A skin is a YAML document listing menus by id plus optional layout
// preferences. The built-in skins are embedded in the binary; additional
// skins can be parsed from bytes with Parse.
package skin

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/moasq/menuforge/internal/layout"
	"github.com/moasq/menuforge/internal/menu"
)

//go:embed skins/*.yaml
var builtinFS embed.FS

// Loader looks up menus by skin and menu id.
type Loader interface {
	Menu(skinID, menuID string) (menu.Definition, bool)
	LayoutPreferences(skinID string) Preferences
	Skins() []string
}

// Skin is one decoded skin document.
type Skin struct {
	Name        string                     `yaml:"name" json:"name"`
	DisplayName string                     `yaml:"display_name" json:"display_name"`
	Version     string                     `yaml:"version,omitempty" json:"version,omitempty"`
	Layout      Preferences                `yaml:"layout,omitempty" json:"layout,omitempty"`
	Menus       map[string]menu.Definition `yaml:"menus" json:"menus"`
}

// MenuIDs returns the skin's menu ids in sorted order.
func (s Skin) MenuIDs() []string {
	ids := make([]string, 0, len(s.Menus))
	for id := range s.Menus {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Preferences are partial constraints. Nil fields leave the base value alone.
type Preferences struct {
	Strategy                *layout.HeightStrategy `yaml:"strategy,omitempty" json:"strategy,omitempty"`
	MinHeight               *int                   `yaml:"min_height,omitempty" json:"min_height,omitempty"`
	FixedHeight             *int                   `yaml:"fixed_height,omitempty" json:"fixed_height,omitempty"`
	MinWidth                *int                   `yaml:"min_width,omitempty" json:"min_width,omitempty"`
	MaxWidth                *int                   `yaml:"max_width,omitempty" json:"max_width,omitempty"`
	TextboxLines            *int                   `yaml:"textbox_lines,omitempty" json:"textbox_lines,omitempty"`
	PaddingLines            *int                   `yaml:"padding_lines,omitempty" json:"padding_lines,omitempty"`
	EnforceConsistentHeight *bool                  `yaml:"enforce_consistent_height,omitempty" json:"enforce_consistent_height,omitempty"`
}

// Apply returns base with every set preference copied over it.
func (p Preferences) Apply(base layout.Constraints) layout.Constraints {
	c := base
	if p.Strategy != nil {
		c.Strategy = *p.Strategy
	}
	setInt(&c.MinHeight, p.MinHeight)
	setInt(&c.FixedHeight, p.FixedHeight)
	setInt(&c.MinWidth, p.MinWidth)
	setInt(&c.MaxWidth, p.MaxWidth)
	setInt(&c.TextboxLines, p.TextboxLines)
	setInt(&c.PaddingLines, p.PaddingLines)
	if p.EnforceConsistentHeight != nil {
		c.EnforceConsistentHeight = *p.EnforceConsistentHeight
	}
	return c
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// Parse decodes one skin document. Unknown fields are rejected so typos in
// layout keys do not pass silently.
func Parse(data []byte) (Skin, error) {
	var s Skin
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Skin{}, fmt.Errorf("decode skin: %w", err)
	}
	if strings.TrimSpace(s.Name) == "" {
		return Skin{}, fmt.Errorf("decode skin: missing name")
	}
	if len(s.Menus) == 0 {
		return Skin{}, fmt.Errorf("skin %q has no menus", s.Name)
	}
	return s, nil
}

// Catalog is an in-memory Loader.
type Catalog struct {
	skins map[string]Skin
}

// NewCatalog indexes skins by name. Later skins with the same name win.
func NewCatalog(skins ...Skin) *Catalog {
	c := &Catalog{skins: make(map[string]Skin, len(skins))}
	for _, s := range skins {
		c.skins[s.Name] = s
	}
	return c
}

// Builtin decodes the skins shipped with the binary.
func Builtin() (*Catalog, error) {
	entries, err := builtinFS.ReadDir("skins")
	if err != nil {
		return nil, fmt.Errorf("read builtin skins: %w", err)
	}
	var skins []Skin
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := builtinFS.ReadFile(path.Join("skins", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read builtin skin %s: %w", e.Name(), err)
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("builtin skin %s: %w", e.Name(), err)
		}
		skins = append(skins, s)
	}
	return NewCatalog(skins...), nil
}

// Skin returns the named skin.
func (c *Catalog) Skin(skinID string) (Skin, bool) {
	s, ok := c.skins[skinID]
	return s, ok
}

// Menu implements Loader.
func (c *Catalog) Menu(skinID, menuID string) (menu.Definition, bool) {
	s, ok := c.skins[skinID]
	if !ok {
		return menu.Definition{}, false
	}
	def, ok := s.Menus[menuID]
	return def, ok
}

// LayoutPreferences implements Loader. Unknown skins have no preferences.
func (c *Catalog) LayoutPreferences(skinID string) Preferences {
	return c.skins[skinID].Layout
}

// Skins implements Loader.
func (c *Catalog) Skins() []string {
	ids := make([]string, 0, len(c.skins))
	for id := range c.skins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
