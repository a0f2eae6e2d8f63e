package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moasq/menuforge/internal/terminal"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List built-in skins and their menus",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		prev := terminal.SetOutput(cmd.OutOrStdout())
		defer terminal.SetOutput(prev)

		for _, id := range a.catalog.Skins() {
			s, _ := a.catalog.Skin(id)
			name := s.DisplayName
			if id == a.cfg.Skin {
				name += " (active)"
			}
			terminal.Header(name)
			terminal.Detail("ID", s.Name)
			if s.Version != "" {
				terminal.Detail("Version", s.Version)
			}
			terminal.Detail("Menus", strings.Join(s.MenuIDs(), ", "))
			c := a.presenter(nil).Constraints(id)
			terminal.Detail("Layout", fmt.Sprintf("%s height, width %d-%d", c.Strategy, c.MinWidth, c.MaxWidth))
		}
		return nil
	},
}
