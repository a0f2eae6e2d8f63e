package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/moasq/menuforge/internal/layout"
)

var layoutFormat string

var layoutCmd = &cobra.Command{
	Use:   "layout [skin] [menu]",
	Short: "Print the calculated layout of a menu",
	Long:  "Compute a menu's layout without rendering it and print it as YAML or JSON.",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		skinID, menuID := selection(a, args)

		l, err := a.presenter(nil).Preview(skinID, menuID, nil)
		if err != nil {
			return err
		}
		return writeLayout(cmd.OutOrStdout(), l, layoutFormat)
	},
}

func init() {
	layoutCmd.Flags().StringVarP(&layoutFormat, "output", "o", "yaml", "output format (yaml or json)")
}

func writeLayout(w io.Writer, l layout.Calculated, format string) error {
	switch format {
	case "yaml", "yml":
		return writeYAML(w, l)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(l); err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}
