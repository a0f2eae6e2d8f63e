// Package menu holds the flat menu definition consumed by the layout and
// render pipeline. Definitions are plain data: display numbers are never
// stored on an item and are always derived from list position at render time.
package menu

import "strings"

// ItemKind is what selecting an item does.
type ItemKind string

const (
	KindCommand ItemKind = "command"
	KindSubmenu ItemKind = "submenu"
	KindAction  ItemKind = "action"
)

// Definition is a single renderable menu.
type Definition struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Items    []Item `yaml:"items" json:"items"`
	Theme    *Theme `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// Item is one entry of a menu.
type Item struct {
	ID          string   `yaml:"id" json:"id"`
	Label       string   `yaml:"label" json:"label"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Kind        ItemKind `yaml:"type" json:"type"`
	Command     string   `yaml:"command,omitempty" json:"command,omitempty"`

	// Heading marks a non-interactive section title kept in the flat list.
	Heading bool `yaml:"heading,omitempty" json:"heading,omitempty"`
}

// Theme names colors by token; theme.Resolve turns it into styles.
type Theme struct {
	PrimaryColor  Color  `yaml:"primary_color,omitempty" json:"primary_color,omitempty"`
	AccentColor   Color  `yaml:"accent_color,omitempty" json:"accent_color,omitempty"`
	SeparatorChar string `yaml:"separator_char,omitempty" json:"separator_char,omitempty"`
	UseIcons      bool   `yaml:"use_icons,omitempty" json:"use_icons,omitempty"`
}

// Interactive reports whether the item can be selected.
func (it Item) Interactive() bool {
	return !it.Heading
}

// InteractiveCount returns the number of selectable items.
func (d Definition) InteractiveCount() int {
	n := 0
	for _, it := range d.Items {
		if it.Interactive() {
			n++
		}
	}
	return n
}

// ItemAt returns the item shown with display number n (1-based).
func (d Definition) ItemAt(n int) (Item, bool) {
	if n < 1 || n > len(d.Items) {
		return Item{}, false
	}
	return d.Items[n-1], true
}

// FindCommand returns the first interactive item whose command, id or label
// matches token case-insensitively.
func (d Definition) FindCommand(token string) (Item, int, bool) {
	for i, it := range d.Items {
		if !it.Interactive() {
			continue
		}
		if equalFold(it.Command, token) || equalFold(it.ID, token) || equalFold(it.Label, token) {
			return it, i + 1, true
		}
	}
	return Item{}, 0, false
}

func equalFold(a, b string) bool {
	return a != "" && strings.EqualFold(a, strings.TrimSpace(b))
}
