package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moasq/menuforge/internal/layout"
	"github.com/moasq/menuforge/internal/logging"
	"github.com/moasq/menuforge/internal/menu"
	"github.com/moasq/menuforge/internal/metrics"
	"github.com/moasq/menuforge/internal/render"
	"github.com/moasq/menuforge/internal/skin"
	"github.com/moasq/menuforge/internal/storage"
	"github.com/moasq/menuforge/internal/terminal"
)

func sampleMenu() menu.Definition {
	return menu.Definition{Title: "Config", Items: []menu.Item{
		{ID: "section-general", Label: "General", Kind: menu.KindAction, Heading: true},
		{ID: "show", Label: "show", Kind: menu.KindCommand, Command: "show"},
		{ID: "templates", Label: "Templates", Kind: menu.KindSubmenu, Command: "templates"},
		{ID: "leave", Label: "Leave", Kind: menu.KindAction, Command: "quit"},
		{ID: "advanced", Label: "Advanced", Kind: menu.KindSubmenu},
	}}
}

func TestResolve(t *testing.T) {
	def := sampleMenu()

	tests := []struct {
		input  string
		kind   actionKind
		target string
		msg    string
	}{
		{input: "", kind: actionNone},
		{input: "   ", kind: actionNone},
		{input: "quit", kind: actionQuit},
		{input: "Q", kind: actionQuit},
		{input: "back", kind: actionBack},
		{input: "..", kind: actionBack},
		{input: "home", kind: actionHome},
		{input: "?", kind: actionHelp},
		{input: "2", kind: actionRun},
		{input: "show", kind: actionRun},
		{input: "3", kind: actionOpen, target: "templates"},
		{input: "TEMPLATES", kind: actionOpen, target: "templates"},
		{input: "5", kind: actionOpen, target: "advanced"},
		{input: "4", kind: actionQuit},
		{input: "1", kind: actionInvalid, msg: `"General" is a section heading.`},
		{input: "0", kind: actionInvalid, msg: "No option 0. Choose 1-5."},
		{input: "9", kind: actionInvalid, msg: "No option 9. Choose 1-5."},
		{input: "General", kind: actionInvalid, msg: `Unknown command "General". Type "help" for commands.`},
		{input: "deploy", kind: actionInvalid, msg: `Unknown command "deploy". Type "help" for commands.`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			act := resolve(def, tt.input)
			assert.Equal(t, tt.kind, act.kind)
			assert.Equal(t, tt.target, act.target)
			assert.Equal(t, tt.msg, act.message)
		})
	}
}

func newTestBrowser(t *testing.T, input string) (*browser, *bytes.Buffer, *metrics.Store) {
	t.Helper()
	catalog, err := skin.Builtin()
	require.NoError(t, err)

	var out bytes.Buffer
	lr := lipgloss.NewRenderer(&out)
	lr.SetColorProfile(termenv.Ascii)

	store := metrics.NewStore()
	p := skin.NewPresenter(skin.Options{
		Loader:        catalog,
		Constraints: layout.Constraints{
			Strategy:     layout.StrategyMinHeight,
			MinHeight:    25,
			MinWidth:     40,
			MaxWidth:     100,
			TextboxLines: 3,
			PaddingLines: 2,
		},
		Out:           &out,
		Metrics:       store,
		RenderOptions: []render.Option{render.WithStyleRenderer(lr)},
	})
	b := &browser{
		presenter: p,
		loader:    catalog,
		skinID:    "phoenix",
		stack:     []string{"main"},
		in:        terminal.NewScanReader(strings.NewReader(input), &out),
		out:       &out,
		log:       logging.Discard(),
	}
	return b, &out, store
}

func renderCount(store *metrics.Store, key string) int {
	r, ok := store.Get(key)
	if !ok {
		return 0
	}
	return r.Count
}

func TestBrowserNavigatesAndQuits(t *testing.T) {
	b, out, store := newTestBrowser(t, "1\nback\nquit\n")
	require.NoError(t, b.run(context.Background()))

	assert.Equal(t, 2, renderCount(store, "phoenix:main"))
	assert.Equal(t, 1, renderCount(store, "phoenix:config"))
	assert.Contains(t, out.String(), "Goodbye!")
	assert.Equal(t, []string{"main"}, b.stack)
}

func TestBrowserStopsAtEndOfInput(t *testing.T) {
	b, _, store := newTestBrowser(t, "config\n")
	require.NoError(t, b.run(context.Background()))

	assert.Equal(t, []string{"main", "config"}, b.stack)
	assert.Equal(t, 1, renderCount(store, "phoenix:config"))
}

func TestBrowserRecordsCommandsAndStatus(t *testing.T) {
	b, out, _ := newTestBrowser(t, "config\nshow\n42\nback\nback\n")
	require.NoError(t, b.run(context.Background()))

	assert.Equal(t, []string{"show"}, b.executed)
	s := out.String()
	assert.Contains(t, s, "Selected show (show).")
	assert.Contains(t, s, "No option 42.")
	assert.Contains(t, s, "Already at the top menu.")
}

// frames splits browser output at each prompt. Every element but the last
// is one rendered menu.
func frames(out string) []string {
	parts := strings.Split(out, promptText)
	return parts[:len(parts)-1]
}

func TestBrowserStatusKeepsPromptRow(t *testing.T) {
	b, out, _ := newTestBrowser(t, "config\nshow\n42\n")
	require.NoError(t, b.run(context.Background()))

	got := frames(out.String())
	require.Len(t, got, 4)
	plain, selected, invalid := got[1], got[2], got[3]

	assert.NotContains(t, plain, "Selected")
	assert.Contains(t, selected, "✓ Selected show (show).")
	assert.Contains(t, invalid, "✗ No option 42.")

	rows := strings.Count(plain, "\n")
	assert.Equal(t, rows, strings.Count(selected, "\n"))
	assert.Equal(t, rows, strings.Count(invalid, "\n"))

	lines := strings.Split(selected, "\n")
	assert.Equal(t, "✓ Selected show (show).", lines[len(lines)-2])
	assert.Equal(t, "", strings.Split(plain, "\n")[rows-1])
}

func TestBrowserWritesHistory(t *testing.T) {
	b, _, _ := newTestBrowser(t, "config\nshow\n5\nquit\n")
	b.history = storage.NewHistoryStore(t.TempDir())
	require.NoError(t, b.run(context.Background()))

	entries, err := b.history.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "phoenix", entries[0].Skin)
	assert.Equal(t, "config", entries[0].Menu)
	assert.Equal(t, "show", entries[0].Command)
	assert.Equal(t, "quality", entries[1].Command)
}

func TestBrowserHelpOpensHelpMenu(t *testing.T) {
	b, _, store := newTestBrowser(t, "config\nhelp\nhome\n")
	require.NoError(t, b.run(context.Background()))

	assert.Equal(t, 1, renderCount(store, "phoenix:help"))
	assert.Equal(t, []string{"main"}, b.stack)
}

func TestBrowserStopsWhenContextCancelled(t *testing.T) {
	b, _, store := newTestBrowser(t, "1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, b.run(ctx))
	assert.Empty(t, store.Snapshot())
}

func TestBrowserFailsOnMissingMenu(t *testing.T) {
	b, _, _ := newTestBrowser(t, "")
	b.stack = []string{"nowhere"}

	err := b.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phoenix:nowhere")
}

func TestBrowserCompletions(t *testing.T) {
	b, _, _ := newTestBrowser(t, "")
	words := b.completions()

	assert.Subset(t, words, []string{"back", "help", "home", "quit", "config", "templates"})
}
