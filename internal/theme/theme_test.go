package theme

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/moasq/menuforge/internal/menu"
)

func TestResolveNilThemeUsesDefaults(t *testing.T) {
	p := Resolve(nil)
	assert.Equal(t, Palette{
		Primary:       menu.ColorRed,
		Accent:        menu.ColorGray,
		SeparatorChar: "═",
	}, p)
}

func TestResolveKeepsSetValues(t *testing.T) {
	p := Resolve(&menu.Theme{
		PrimaryColor:  menu.ColorBlue,
		AccentColor:   menu.ColorCyan,
		SeparatorChar: "=",
		UseIcons:      true,
	})
	assert.Equal(t, menu.ColorBlue, p.Primary)
	assert.Equal(t, menu.ColorCyan, p.Accent)
	assert.Equal(t, "=", p.SeparatorChar)
	assert.True(t, p.UseIcons)
}

func TestResolveUnknownColorFallsBack(t *testing.T) {
	p := Resolve(&menu.Theme{PrimaryColor: menu.Color(200), AccentColor: menu.ColorUnset})
	assert.Equal(t, DefaultPrimary, p.Primary)
	assert.Equal(t, DefaultAccent, p.Accent)
	assert.Equal(t, DefaultSeparatorChar, p.SeparatorChar)
}

func TestStylesPlainOnASCIIProfile(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)

	s := Resolve(nil).Styles(r)
	for name, fn := range map[string]func(string) string{
		"title": s.Title, "heading": s.Heading, "item": s.Item, "index": s.Index,
		"description": s.Description, "separator": s.Separator, "hint": s.Hint,
	} {
		assert.Equal(t, "text", fn("text"), name)
	}
}

func TestStylesEmitEscapesOnANSIProfile(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI)

	s := Resolve(&menu.Theme{PrimaryColor: menu.ColorBlue}).Styles(r)
	out := s.Title("Menu")
	assert.True(t, strings.Contains(out, "\x1b["), "expected ANSI escape in %q", out)
	assert.Contains(t, out, "Menu")
	assert.Equal(t, "", s.Item(""))
}

func TestAnsiColorDefaultArm(t *testing.T) {
	assert.Equal(t, ansiColor(DefaultPrimary), ansiColor(menu.Color(99)))
	assert.Equal(t, lipgloss.Color("8"), ansiColor(menu.ColorGray))
}
