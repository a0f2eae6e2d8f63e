package skin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moasq/menuforge/internal/layout"
	"github.com/moasq/menuforge/internal/menu"
)

func TestBuiltinSkinsDecode(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)
	assert.Equal(t, []string{"phoenix", "qms"}, cat.Skins())

	phoenix, ok := cat.Skin("phoenix")
	require.True(t, ok)
	assert.Equal(t, []string{"advanced", "config", "generate", "help", "main", "templates"}, phoenix.MenuIDs())

	main, ok := cat.Menu("phoenix", "main")
	require.True(t, ok)
	require.NotNil(t, main.Theme)
	assert.Equal(t, menu.ColorRed, main.Theme.PrimaryColor)
	assert.Equal(t, menu.ColorCyan, main.Theme.AccentColor)
	assert.True(t, main.Theme.UseIcons)
	assert.Equal(t, menu.KindSubmenu, main.Items[0].Kind)
}

func TestBuiltinSubmenusResolve(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)
	for _, skinID := range cat.Skins() {
		s, _ := cat.Skin(skinID)
		for menuID, def := range s.Menus {
			for _, it := range def.Items {
				if it.Kind != menu.KindSubmenu {
					continue
				}
				_, ok := cat.Menu(skinID, it.Command)
				assert.True(t, ok, "%s:%s item %s points at missing menu %q", skinID, menuID, it.ID, it.Command)
			}
		}
	}
}

func TestBuiltinLayoutPreferences(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	prefs := cat.LayoutPreferences("qms")
	require.NotNil(t, prefs.Strategy)
	assert.Equal(t, layout.StrategyFixedHeight, *prefs.Strategy)
	require.NotNil(t, prefs.FixedHeight)
	assert.Equal(t, 20, *prefs.FixedHeight)

	assert.Equal(t, Preferences{}, cat.LayoutPreferences("missing"))
}

func TestPreferencesApply(t *testing.T) {
	base := layout.Constraints{MinHeight: 25, MinWidth: 40, MaxWidth: 100, TextboxLines: 3, PaddingLines: 2}
	assert.Equal(t, base, Preferences{}.Apply(base))

	fixed := layout.StrategyFixedHeight
	h, w, on := 18, 60, true
	got := Preferences{Strategy: &fixed, FixedHeight: &h, MaxWidth: &w, EnforceConsistentHeight: &on}.Apply(base)

	want := base
	want.Strategy = layout.StrategyFixedHeight
	want.FixedHeight = 18
	want.MaxWidth = 60
	want.EnforceConsistentHeight = true
	assert.Equal(t, want, got)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"no name", "menus:\n  main:\n    title: x\n", "missing name"},
		{"no menus", "name: empty\n", "has no menus"},
		{"unknown field", "name: x\nlayuot: {}\nmenus:\n  main:\n    title: x\n", "layuot"},
		{"bad strategy", "name: x\nlayout:\n  strategy: sideways\nmenus:\n  main:\n    title: x\n", "sideways"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseUnknownColorFallsBack(t *testing.T) {
	s, err := Parse([]byte("name: x\nmenus:\n  main:\n    title: X\n    theme:\n      primary_color: chartreuse\n"))
	require.NoError(t, err)
	assert.Equal(t, menu.ColorUnset, s.Menus["main"].Theme.PrimaryColor)
}
