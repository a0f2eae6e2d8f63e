package commands

import (
	"github.com/spf13/cobra"

	"github.com/moasq/menuforge/internal/menuserver"
)

var mcpCmd = &cobra.Command{
	Use:    "mcp",
	Short:  "Run the menuforge MCP server over stdio",
	Long:   "Starts the menuforge MCP server over stdio. Agents use it to list skins, preview layouts, render menus as text and convert legacy menus.",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return menuserver.New(a.catalog, a.cfg.Constraints(), a.metrics, a.log, Version).Run(cmd.Context())
	},
}
