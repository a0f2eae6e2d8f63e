package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/menuforge/internal/terminal"
	"github.com/moasq/menuforge/internal/update"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prev := terminal.SetOutput(cmd.OutOrStdout())
		defer terminal.SetOutput(prev)

		terminal.Banner(Version)
		if !versionCheck {
			return nil
		}

		res, err := update.NewChecker().Latest(cmd.Context(), update.Owner, update.Repo, Version)
		if err != nil {
			terminal.Error(err.Error())
			return nil
		}
		if res.Available() {
			terminal.Warning(fmt.Sprintf("menuforge %s is available: %s", res.Latest, res.URL))
		} else {
			terminal.Success("Up to date")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
}
