package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/moasq/menuforge/internal/legacy"
	"github.com/moasq/menuforge/internal/terminal"
)

var (
	convertLevel  string
	convertRender bool
	convertOpts   legacy.Options
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert sectioned legacy menus",
	Long: `Convert a legacy menu file (title, subtitle, sections of items, optional
options block) into flat menu definitions and print them as YAML. A file may
hold several menus separated by "---"; they are printed keyed by id. Use "-"
to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		docs, err := readLegacy(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		named := make([]legacy.Named, 0, len(docs))
		for i, d := range docs {
			named = append(named, applyConvertFlags(d.Named(i)))
		}

		if convertRender {
			p := a.presenter(cmd.OutOrStdout())
			for _, n := range named {
				res := p.RenderLegacy(n.Content, n.Context, n.Options)
				if !res.Success {
					return fmt.Errorf("render %s: %s", n.ID, strings.Join(res.Errors, "; "))
				}
			}
			return nil
		}

		defs := legacy.ConvertAll(named)
		prev := terminal.SetOutput(cmd.ErrOrStderr())
		for _, n := range named {
			for _, issue := range legacy.Validate(n.Content, defs[n.ID]).Issues {
				terminal.Warning(n.ID + ": " + issue)
			}
		}
		terminal.SetOutput(prev)

		if len(named) == 1 {
			return writeYAML(cmd.OutOrStdout(), defs[named[0].ID])
		}
		return writeYAML(cmd.OutOrStdout(), defs)
	},
}

func init() {
	f := convertCmd.Flags()
	f.StringVar(&convertLevel, "level", "", "menu level used to pick the default color (main, config, templates, ...)")
	f.BoolVar(&convertRender, "render", false, "render the converted menus instead of printing them")
	f.IntVar(&convertOpts.FixedHeight, "fixed-height", 0, "legacy fixed height, overrides the file's options")
	f.IntVar(&convertOpts.MinSeparatorLength, "min-separator-length", 0, "legacy minimum separator length, overrides the file's options")
	f.IntVar(&convertOpts.MaxSeparatorLength, "max-separator-length", 0, "legacy maximum separator length, overrides the file's options")
}

// applyConvertFlags lets explicit flags win over a document's level and
// options.
func applyConvertFlags(n legacy.Named) legacy.Named {
	if convertLevel != "" {
		n.Context = &legacy.DisplayContext{Level: convertLevel}
	}
	if convertOpts.FixedHeight > 0 {
		n.Options.FixedHeight = convertOpts.FixedHeight
	}
	if convertOpts.MinSeparatorLength > 0 {
		n.Options.MinSeparatorLength = convertOpts.MinSeparatorLength
	}
	if convertOpts.MaxSeparatorLength > 0 {
		n.Options.MaxSeparatorLength = convertOpts.MaxSeparatorLength
	}
	return n
}

func readLegacy(stdin io.Reader, path string) ([]legacy.Document, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read legacy menu: %w", err)
		}
		defer f.Close()
		r = f
	}

	docs, err := legacy.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("parse legacy menu %s: %w", path, err)
	}
	return docs, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
