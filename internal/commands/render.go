package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moasq/menuforge/internal/render"
	"github.com/moasq/menuforge/internal/skin"
)

var renderLevel string

var renderCmd = &cobra.Command{
	Use:   "render [skin] [menu...]",
	Short: "Render menus and exit",
	Long: `Render skin menus to stdout, one after another. Skin and menu default to
the configured ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		var errs []error
		for _, res := range a.presenter(cmd.OutOrStdout()).RenderMany(renderRequests(a, args)) {
			if !res.Success {
				errs = append(errs, errors.New(strings.Join(res.Errors, "; ")))
			}
		}
		return errors.Join(errs...)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderLevel, "level", "", "navigation level; \"main\" hides the back hint (default: the menu id)")
}

func renderRequests(a *app, args []string) []skin.Request {
	skinID, menuID := selection(a, args)
	menus := []string{menuID}
	if len(args) > 2 {
		menus = args[1:]
	}
	reqs := make([]skin.Request, 0, len(menus))
	for _, m := range menus {
		reqs = append(reqs, skin.Request{SkinID: skinID, MenuID: m, Context: render.Context{Level: renderLevel}})
	}
	return reqs
}

// selection fills missing positional skin and menu arguments from config.
func selection(a *app, args []string) (skinID, menuID string) {
	skinID, menuID = a.cfg.Skin, a.cfg.Menu
	if len(args) > 0 {
		skinID = args[0]
	}
	if len(args) > 1 {
		menuID = args[1]
	}
	return skinID, menuID
}
