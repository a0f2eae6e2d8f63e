package layout

import (
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/moasq/menuforge/internal/menu"
)

// headerOverheadLines covers the title, the separator, the blank line under
// the header and the blank line closing the body.
const headerOverheadLines = 4

// Measurements describe a definition's visible content.
type Measurements struct {
	TitleLength       int
	LongestItemLength int
	TotalItems        int
	EstimatedLines    int
	SectionCount      int
}

// Measure computes visible lengths and a line estimate for def. Items are
// measured in their rendered form, with the positional number prefixed.
func Measure(def menu.Definition) Measurements {
	m := Measurements{
		TitleLength: max(VisibleLength(def.Title), VisibleLength(def.Subtitle)),
		TotalItems:  len(def.Items),
	}

	headings := 0
	for i, it := range def.Items {
		if it.Heading {
			headings++
		}
		m.LongestItemLength = max(m.LongestItemLength, VisibleLength(ItemText(i+1, it)))
	}

	m.EstimatedLines = headerOverheadLines + m.TotalItems
	if def.Subtitle != "" {
		m.EstimatedLines++
	}

	switch {
	case headings > 0:
		m.SectionCount = headings
	case m.TotalItems > 0:
		m.SectionCount = 1
	}
	return m
}

// ItemText is the unstyled text the renderer prints for item n.
func ItemText(n int, it menu.Item) string {
	s := "  " + strconv.Itoa(n) + ". " + it.Label
	if it.Description != "" {
		s += " - " + it.Description
	}
	return s
}

// VisibleLength counts the characters of s left after removing terminal
// escape sequences.
func VisibleLength(s string) int {
	if s == "" {
		return 0
	}
	return utf8.RuneCountInString(ansi.Strip(s))
}
