package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/menuforge/internal/terminal"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show commands chosen in interactive sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		if a.history == nil {
			return errors.New("history is disabled (set history: true to enable)")
		}

		prev := terminal.SetOutput(cmd.OutOrStdout())
		defer terminal.SetOutput(prev)

		if historyClear {
			if err := a.history.Clear(); err != nil {
				return err
			}
			terminal.Success("History cleared")
			return nil
		}

		entries, err := a.history.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			terminal.Info("No history yet")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %s\n",
				e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Skin+":"+e.Menu, e.Command)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded history")
}
