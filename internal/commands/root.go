package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moasq/menuforge/internal/config"
	"github.com/moasq/menuforge/internal/logging"
	"github.com/moasq/menuforge/internal/metrics"
	"github.com/moasq/menuforge/internal/render"
	"github.com/moasq/menuforge/internal/skin"
	"github.com/moasq/menuforge/internal/storage"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	cfgFile string
	v       *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:   "menuforge",
	Short: "Terminal menus with a fixed input line",
	Long: `Menuforge renders skin menus in the terminal. Separator width follows the
content, and the input area lands on the same line for every menu rendered
with the same constraints.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// Execute runs the root command. SIGTERM cancels the command context;
// Ctrl-C is left to the line editor.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.menuforge.yaml)")
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcpCmd)
}

func initConfig() {
	v = config.New(cfgFile)
}

// app is everything a command needs once configuration is resolved.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	catalog *skin.Catalog
	metrics *metrics.Store
	// history is nil when disabled.
	history *storage.HistoryStore
}

// loadApp reads the config file, binds cmd's flags and loads the built-in
// skins. Logs go to stderr so they never mix with rendered menus.
func loadApp(cmd *cobra.Command) (*app, error) {
	if v == nil {
		initConfig()
	}
	if err := config.ReadFile(v); err != nil {
		return nil, err
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	log := logging.New(os.Stderr, cfg.LogLevel)
	if cfg.File != "" {
		log.DebugContext(logging.PackageCtx("commands"), "config loaded", slog.String("file", cfg.File))
	}

	catalog, err := skin.Builtin()
	if err != nil {
		return nil, fmt.Errorf("load skins: %w", err)
	}
	if _, ok := catalog.Skin(cfg.Skin); !ok {
		return nil, fmt.Errorf("unknown skin %q (available: %v)", cfg.Skin, catalog.Skins())
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		catalog: catalog,
		metrics: metrics.NewStore(),
	}
	if cfg.HistoryDir != "" {
		a.history = storage.NewHistoryStore(cfg.HistoryDir)
	}
	return a, nil
}

// presenter renders to w with the configured constraints.
func (a *app) presenter(w io.Writer) *skin.Presenter {
	return skin.NewPresenter(skin.Options{
		Loader:        a.catalog,
		Constraints:   a.cfg.Constraints(),
		Out:           w,
		Metrics:       a.metrics,
		Logger:        a.log,
		RenderOptions: []render.Option{render.WithClearScreen(a.cfg.Clear)},
	})
}
