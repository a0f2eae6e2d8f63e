// Package menuserver exposes the layout pipeline as MCP tools over stdio.
package menuserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/moasq/menuforge/internal/layout"
	"github.com/moasq/menuforge/internal/logging"
	"github.com/moasq/menuforge/internal/metrics"
	"github.com/moasq/menuforge/internal/skin"
)

// Server holds what the tool handlers share.
type Server struct {
	catalog     *skin.Catalog
	constraints layout.Constraints
	metrics     *metrics.Store
	log         *slog.Logger
	version     string
}

// New builds a Server. A nil logger discards logs.
func New(catalog *skin.Catalog, constraints layout.Constraints, store *metrics.Store, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		catalog:     catalog,
		constraints: constraints,
		metrics:     store,
		log:         logger,
		version:     version,
	}
}

// MCP returns an mcp.Server with every tool registered.
func (s *Server) MCP() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "menuforge",
			Version: "v" + s.version,
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_skins",
		Description: "List the available skins with their display names and menu ids.",
	}, s.handleListSkins)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview_layout",
		Description: "Compute the layout of a skin menu without rendering it. Returns separator width, line budget, padding and whether items are truncated. Optional fields override the configured constraints. Example: preview_layout(skin: \"qms\", menu: \"main\", strategy: \"fixed\", fixed_height: 16)",
	}, s.handlePreviewLayout)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_menu",
		Description: "Render a skin menu as plain text exactly as it would appear in the terminal, including padding and the input area.",
	}, s.handleRenderMenu)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_legacy",
		Description: "Convert a sectioned legacy menu into a flat menu definition and report anything the conversion lost.",
	}, s.handleConvertLegacy)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_metrics",
		Description: "Report render counts and timings per skin:menu for this server session.",
	}, s.handleRenderMetrics)

	return server
}

// Run starts the menuforge MCP server over stdio.
// It blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.log.InfoContext(logging.PackageCtx("menuserver"), "mcp server starting", slog.Int("skins", len(s.catalog.Skins())))
	return s.MCP().Run(ctx, &mcp.StdioTransport{})
}
