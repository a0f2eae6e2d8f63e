package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moasq/menuforge/internal/logging"
	"github.com/moasq/menuforge/internal/menu"
	"github.com/moasq/menuforge/internal/metrics"
	"github.com/moasq/menuforge/internal/render"
	"github.com/moasq/menuforge/internal/skin"
	"github.com/moasq/menuforge/internal/storage"
	"github.com/moasq/menuforge/internal/terminal"
)

const (
	promptText = "> "
	helpMenuID = "help"
)

func runInteractive(cmd *cobra.Command) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	b := &browser{
		presenter: a.presenter(out),
		loader:    a.catalog,
		skinID:    a.cfg.Skin,
		stack:     []string{a.cfg.Menu},
		out:       out,
		log:       a.log,
		history:   a.history,
	}
	b.in = terminal.NewLineReader(cmd.InOrStdin(), out, b.completions)

	if err := b.run(cmd.Context()); err != nil {
		return err
	}
	if a.cfg.LogLevel <= slog.LevelDebug {
		printRenderStats(a.metrics)
	}
	return nil
}

// actionKind is what one line of input asks the browser to do.
type actionKind int

const (
	actionNone actionKind = iota
	actionQuit
	actionBack
	actionHome
	actionHelp
	actionOpen
	actionRun
	actionInvalid
)

type action struct {
	kind    actionKind
	item    menu.Item
	target  string
	message string
}

// keywords are navigation words accepted in every menu. They are checked
// before item commands, so a menu cannot shadow "back" or "quit".
var keywords = map[string]actionKind{
	"quit": actionQuit,
	"exit": actionQuit,
	"q":    actionQuit,
	"back": actionBack,
	"b":    actionBack,
	"..":   actionBack,
	"home": actionHome,
	"main": actionHome,
	"help": actionHelp,
	"?":    actionHelp,
}

// resolve maps raw user text to an action against def. Numbers select by
// display position; anything else is matched against navigation keywords
// and then item commands, ids and labels.
func resolve(def menu.Definition, input string) action {
	input = strings.TrimSpace(input)
	if input == "" {
		return action{kind: actionNone}
	}
	if k, ok := keywords[strings.ToLower(input)]; ok {
		return action{kind: k}
	}

	if n, err := strconv.Atoi(input); err == nil {
		it, ok := def.ItemAt(n)
		if !ok {
			return action{kind: actionInvalid, message: fmt.Sprintf("No option %d. Choose 1-%d.", n, len(def.Items))}
		}
		if !it.Interactive() {
			return action{kind: actionInvalid, message: fmt.Sprintf("%q is a section heading.", it.Label)}
		}
		return selectItem(it)
	}

	it, _, ok := def.FindCommand(input)
	if !ok {
		return action{kind: actionInvalid, message: fmt.Sprintf("Unknown command %q. Type \"help\" for commands.", input)}
	}
	return selectItem(it)
}

func selectItem(it menu.Item) action {
	if k, ok := keywords[strings.ToLower(it.Command)]; ok && it.Kind == menu.KindAction {
		return action{kind: k, item: it}
	}
	if it.Kind == menu.KindSubmenu {
		target := it.Command
		if target == "" {
			target = it.ID
		}
		return action{kind: actionOpen, item: it, target: target}
	}
	return action{kind: actionRun, item: it}
}

// browser walks one skin's menus. stack holds menu ids, current last.
type browser struct {
	presenter *skin.Presenter
	loader    skin.Loader
	skinID    string
	stack     []string
	in        terminal.LineReader
	out       io.Writer
	log       *slog.Logger
	// history may be nil.
	history *storage.HistoryStore

	// status is shown once, inside the textbox area of the next render.
	status notice
	// executed records run commands in order.
	executed []string
}

func (b *browser) current() string {
	return b.stack[len(b.stack)-1]
}

func (b *browser) renderContext() render.Context {
	level := b.current()
	if len(b.stack) == 1 {
		level = render.TopLevel
	}
	return render.Context{
		SkinID:     b.skinID,
		Level:      level,
		Breadcrumb: append([]string(nil), b.stack...),
		Status:     b.status.String(),
	}
}

// run renders, reads a line and dispatches it until the user quits or the
// input closes.
func (b *browser) run(ctx context.Context) error {
	lctx := logging.AppendCtx(logging.PackageCtx("commands"), slog.String("skin", b.skinID))
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		res := b.presenter.RenderMenu(b.skinID, b.current(), b.renderContext())
		if !res.Success {
			return fmt.Errorf("render %s: %s", metrics.Key(b.skinID, b.current()), strings.Join(res.Errors, "; "))
		}
		b.status = notice{}

		line, err := b.in.ReadLine(promptText)
		if errors.Is(err, io.EOF) || errors.Is(err, terminal.ErrInterrupted) {
			fmt.Fprintln(b.out)
			return nil
		}
		if err != nil {
			return err
		}

		act := resolve(res.Definition, line)
		b.log.DebugContext(lctx, "input resolved", slog.String("menu", b.current()), slog.String("input", line), slog.Int("action", int(act.kind)))
		if done := b.apply(act); done {
			return nil
		}
	}
}

// apply performs act and reports whether the session is over.
func (b *browser) apply(act action) bool {
	switch act.kind {
	case actionQuit:
		fmt.Fprintln(b.out, "Goodbye!")
		return true
	case actionBack:
		if len(b.stack) == 1 {
			b.status = info("Already at the top menu.")
			return false
		}
		b.stack = b.stack[:len(b.stack)-1]
	case actionHome:
		b.stack = b.stack[:1]
	case actionHelp:
		if b.current() == helpMenuID {
			return false
		}
		if _, ok := b.loader.Menu(b.skinID, helpMenuID); ok {
			b.stack = append(b.stack, helpMenuID)
			return false
		}
		b.status = info(render.Hint(b.renderContext()))
	case actionOpen:
		if _, ok := b.loader.Menu(b.skinID, act.target); !ok {
			b.status = failure(fmt.Sprintf("Menu %q is not available in skin %q.", act.target, b.skinID))
			return false
		}
		b.stack = append(b.stack, act.target)
	case actionRun:
		cmd := act.item.Command
		if cmd == "" {
			cmd = act.item.ID
		}
		b.executed = append(b.executed, cmd)
		b.status = success(fmt.Sprintf("Selected %s (%s).", act.item.Label, cmd))
		b.record(cmd, act.item.Label)
	case actionInvalid:
		b.status = failure(act.message)
	}
	return false
}

// notice is a one-shot status line shown inside the textbox area of the
// next render.
type notice struct {
	mark string
	text string
}

func info(text string) notice    { return notice{mark: "i", text: text} }
func success(text string) notice { return notice{mark: "✓", text: text} }
func failure(text string) notice { return notice{mark: "✗", text: text} }

func (n notice) String() string {
	if n.text == "" {
		return ""
	}
	return n.mark + " " + n.text
}

func (b *browser) record(cmd, label string) {
	if b.history == nil {
		return
	}
	err := b.history.Append(storage.Entry{Skin: b.skinID, Menu: b.current(), Command: cmd, Label: label})
	if err != nil {
		b.log.WarnContext(logging.PackageCtx("commands"), "history not saved", slog.Any("error", err))
	}
}

// completions offers the current menu's commands plus navigation keywords.
func (b *browser) completions() []string {
	words := []string{"back", "help", "home", "quit"}
	def, ok := b.loader.Menu(b.skinID, b.current())
	if !ok {
		return words
	}
	for _, it := range def.Items {
		if it.Interactive() && it.Command != "" {
			words = append(words, it.Command)
		}
	}
	return words
}

func printRenderStats(store *metrics.Store) {
	snap := store.Snapshot()
	if len(snap) == 0 {
		return
	}
	prev := terminal.SetOutput(os.Stderr)
	defer terminal.SetOutput(prev)

	terminal.Header("Render times")
	for _, r := range snap {
		terminal.Detail(r.Key, fmt.Sprintf("%d renders, last %s, avg %s",
			r.Count, metrics.FormatDuration(r.Last), metrics.FormatDuration(r.Average())))
	}
}
