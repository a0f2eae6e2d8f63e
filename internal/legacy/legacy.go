// Package legacy bridges the older sectioned menu shape into the flat
// menu.Definition used by the layout pipeline.
package legacy

// Kind is the legacy per-item vocabulary.
type Kind string

const (
	KindCommand    Kind = "command"
	KindNavigation Kind = "navigation"
	KindAction     Kind = "action"
	KindSetting    Kind = "setting"
)

// Content is a sectioned legacy menu.
type Content struct {
	Title       string    `yaml:"title" json:"title"`
	Subtitle    string    `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Sections    []Section `yaml:"sections" json:"sections"`
	FooterHints []string  `yaml:"footer_hints,omitempty" json:"footer_hints,omitempty"`
}

// Section groups items under a heading.
type Section struct {
	Heading     string        `yaml:"heading" json:"heading"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Items       []Item        `yaml:"items" json:"items"`
	Theme       *SectionTheme `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// SectionTheme is the only styling the legacy shape carried.
type SectionTheme struct {
	HeadingColor string `yaml:"heading_color,omitempty" json:"heading_color,omitempty"`
	Bold         bool   `yaml:"bold,omitempty" json:"bold,omitempty"`
}

// Item is a legacy menu entry. Commands[0] is the primary command.
type Item struct {
	Label       string   `yaml:"label" json:"label"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Commands    []string `yaml:"commands,omitempty" json:"commands,omitempty"`
	Kind        Kind     `yaml:"type,omitempty" json:"type,omitempty"`
}

// DisplayContext is the legacy render context.
type DisplayContext struct {
	Level       string   `yaml:"level" json:"level"`
	Breadcrumb  []string `yaml:"breadcrumb,omitempty" json:"breadcrumb,omitempty"`
	CurrentItem string   `yaml:"current_item,omitempty" json:"current_item,omitempty"`
}

// ItemCount is the number of interactive items across all sections.
func (c Content) ItemCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Items)
	}
	return n
}
