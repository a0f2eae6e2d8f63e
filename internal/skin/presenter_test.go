package skin

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moasq/menuforge/internal/layout"
	"github.com/moasq/menuforge/internal/legacy"
	"github.com/moasq/menuforge/internal/logging"
	"github.com/moasq/menuforge/internal/metrics"
	"github.com/moasq/menuforge/internal/render"
)

func baseConstraints() layout.Constraints {
	return layout.Constraints{
		Strategy:     layout.StrategyMinHeight,
		MinHeight:    25,
		MinWidth:     40,
		MaxWidth:     100,
		TextboxLines: 3,
		PaddingLines: 2,
	}
}

func newTestPresenter(t *testing.T, out *bytes.Buffer, logs *bytes.Buffer) *Presenter {
	t.Helper()
	cat, err := Builtin()
	require.NoError(t, err)

	lr := lipgloss.NewRenderer(out)
	lr.SetColorProfile(termenv.Ascii)
	opts := Options{
		Loader:        cat,
		Constraints:   baseConstraints(),
		Out:           out,
		Metrics:       metrics.NewStore(),
		RenderOptions: []render.Option{render.WithStyleRenderer(lr)},
	}
	if logs != nil {
		opts.Logger = logging.New(logs, slog.LevelDebug)
	}
	return NewPresenter(opts)
}

func outputLines(out *bytes.Buffer) []string {
	s := strings.TrimPrefix(out.String(), "\x1b[2J\x1b[H")
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestRenderMenuSuccess(t *testing.T) {
	var out bytes.Buffer
	p := newTestPresenter(t, &out, nil)

	res := p.RenderMenu("phoenix", "main", render.Context{})
	require.True(t, res.Success, res.Errors)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "🔥 Phoenix Code Lite", res.Definition.Title)
	assert.Equal(t, render.Context{SkinID: "phoenix", Level: "main"}, res.Context)
	assert.Equal(t, 25, res.Layout.TotalLines)

	lines := outputLines(&out)
	assert.Len(t, lines, res.Layout.TotalLines)
	assert.Equal(t, "🔥 Phoenix Code Lite", lines[0])
	assert.NotContains(t, out.String(), `"back" to return`)

	r, ok := p.Metrics().Get("phoenix:main")
	require.True(t, ok)
	assert.Equal(t, 1, r.Count)
}

func TestRenderMenuAppliesSkinPreferences(t *testing.T) {
	var out bytes.Buffer
	p := newTestPresenter(t, &out, nil)

	res := p.RenderMenu("qms", "main", render.Context{})
	require.True(t, res.Success)
	assert.Equal(t, 20, res.Layout.TotalLines)
	assert.True(t, res.Layout.EnforceConsistentHeight)
	assert.True(t, strings.HasPrefix(out.String(), "\x1b[2J\x1b[H"))
	assert.Len(t, outputLines(&out), 20)
}

func TestRenderMenuNotFound(t *testing.T) {
	var out, logs bytes.Buffer
	p := newTestPresenter(t, &out, &logs)

	assert.NotPanics(t, func() {
		res := p.RenderMenu("phoenix", "nowhere", render.Context{})
		assert.False(t, res.Success)
		assert.Equal(t, []string{"menu definition not found for phoenix:nowhere"}, res.Errors)
	})
	res := p.RenderMenu("ghost", "main", render.Context{})
	assert.Equal(t, []string{"menu definition not found for ghost:main"}, res.Errors)

	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "menu lookup failed")
	assert.Empty(t, p.Metrics().Snapshot())
}

func TestRenderMenuReportsWriteErrors(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)
	w := failingWriter{}
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(termenv.Ascii)
	p := NewPresenter(Options{
		Loader:        cat,
		Constraints:   baseConstraints(),
		Out:           w,
		RenderOptions: []render.Option{render.WithStyleRenderer(lr)},
	})

	res := p.RenderMenu("phoenix", "config", render.Context{})
	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "closed")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderLegacy(t *testing.T) {
	var out, logs bytes.Buffer
	p := newTestPresenter(t, &out, &logs)

	content := legacy.Content{
		Title:    "Configuration",
		Subtitle: "Settings",
		Sections: []legacy.Section{
			{Heading: "Commands", Items: []legacy.Item{{Label: "show", Commands: []string{"show"}}}},
			{Heading: "Profiles", Items: []legacy.Item{{Label: "reset", Kind: legacy.KindAction}}},
		},
	}
	res := p.RenderLegacy(content, &legacy.DisplayContext{Level: "config", Breadcrumb: []string{"main", "config"}}, legacy.Options{})
	require.True(t, res.Success, res.Errors)
	assert.Equal(t, "legacy", res.Context.SkinID)
	assert.Equal(t, []string{"main", "config"}, res.Context.Breadcrumb)
	assert.Len(t, res.Definition.Items, 4)
	assert.Contains(t, out.String(), `"back" to return`)
	assert.NotContains(t, logs.String(), "legacy conversion issue")

	_, ok := p.Metrics().Get("legacy:config")
	assert.True(t, ok)

	assert.Equal(t, legacy.DefaultFixedHeight, res.Layout.TotalLines)
	assert.True(t, res.Layout.EnforceConsistentHeight)
	assert.True(t, strings.HasPrefix(out.String(), "\x1b[2J\x1b[H"))
	assert.Len(t, outputLines(&out), legacy.DefaultFixedHeight)
}

func TestRenderLegacyUsesLegacyOptions(t *testing.T) {
	var out bytes.Buffer
	p := newTestPresenter(t, &out, nil)

	content := legacy.Content{Title: "Help", Sections: []legacy.Section{{Heading: "Commands", Items: []legacy.Item{{Label: "quit"}}}}}
	res := p.RenderLegacy(content, &legacy.DisplayContext{Level: "help"}, legacy.Options{
		FixedHeight:        18,
		MinSeparatorLength: 30,
		MaxSeparatorLength: 60,
	})
	require.True(t, res.Success, res.Errors)
	assert.Equal(t, 18, res.Layout.TotalLines)
	assert.Equal(t, 30, res.Layout.SeparatorLength)
	assert.Len(t, outputLines(&out), 18)
}

func TestRenderMany(t *testing.T) {
	var out bytes.Buffer
	p := newTestPresenter(t, &out, nil)

	results := p.RenderMany([]Request{
		{SkinID: "phoenix", MenuID: "main"},
		{SkinID: "qms", MenuID: "missing"},
		{SkinID: "qms", MenuID: "main"},
	})
	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.True(t, results[2].Success)
}

func TestPreview(t *testing.T) {
	var out bytes.Buffer
	p := newTestPresenter(t, &out, nil)

	l, err := p.Preview("qms", "main", nil)
	require.NoError(t, err)
	assert.Equal(t, 20, l.TotalLines)

	h := 30
	l, err = p.Preview("qms", "main", &Preferences{FixedHeight: &h})
	require.NoError(t, err)
	assert.Equal(t, 30, l.TotalLines)

	_, err = p.Preview("qms", "nope", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMenuNotFound))

	assert.Empty(t, out.String())
}

func TestNewPresenterZeroOptions(t *testing.T) {
	p := NewPresenter(Options{})
	res := p.RenderMenu("any", "menu", render.Context{})
	assert.False(t, res.Success)
}
