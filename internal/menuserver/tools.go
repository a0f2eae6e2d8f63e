package menuserver

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/muesli/termenv"

	"github.com/moasq/menuforge/internal/layout"
	"github.com/moasq/menuforge/internal/legacy"
	"github.com/moasq/menuforge/internal/menu"
	"github.com/moasq/menuforge/internal/metrics"
	"github.com/moasq/menuforge/internal/render"
	"github.com/moasq/menuforge/internal/skin"
)

type listSkinsInput struct{}

type skinSummary struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Version     string   `json:"version"`
	Menus       []string `json:"menus"`
}

type listSkinsOutput struct {
	Skins []skinSummary `json:"skins"`
}

func (s *Server) handleListSkins(ctx context.Context, req *mcp.CallToolRequest, _ listSkinsInput) (*mcp.CallToolResult, listSkinsOutput, error) {
	out := listSkinsOutput{Skins: []skinSummary{}}
	for _, id := range s.catalog.Skins() {
		sk, _ := s.catalog.Skin(id)
		out.Skins = append(out.Skins, skinSummary{
			Name:        sk.Name,
			DisplayName: sk.DisplayName,
			Version:     sk.Version,
			Menus:       sk.MenuIDs(),
		})
	}
	return nil, out, nil
}

// layoutInput selects a menu and optionally overrides constraints. Zero
// values leave the configured constraint alone.
type layoutInput struct {
	Skin        string `json:"skin" jsonschema:"Skin id, e.g. phoenix or qms"`
	Menu        string `json:"menu" jsonschema:"Menu id within the skin, e.g. main"`
	Strategy    string `json:"strategy,omitempty" jsonschema:"Height strategy: min or fixed"`
	MinHeight   int    `json:"min_height,omitempty" jsonschema:"Minimum total height in lines for the min strategy"`
	FixedHeight int    `json:"fixed_height,omitempty" jsonschema:"Total height in lines for the fixed strategy"`
	MinWidth    int    `json:"min_width,omitempty" jsonschema:"Lower bound for the separator width"`
	MaxWidth    int    `json:"max_width,omitempty" jsonschema:"Upper bound for the separator width"`
}

func (in layoutInput) overrides() (*skin.Preferences, error) {
	var p skin.Preferences
	if in.Strategy != "" {
		st, err := layout.ParseStrategy(in.Strategy)
		if err != nil {
			return nil, err
		}
		p.Strategy = &st
	}
	p.MinHeight = positive(in.MinHeight)
	p.FixedHeight = positive(in.FixedHeight)
	p.MinWidth = positive(in.MinWidth)
	p.MaxWidth = positive(in.MaxWidth)
	return &p, nil
}

func positive(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

// layoutOutput is layout.Calculated with colors spelled out as tokens.
type layoutOutput struct {
	SeparatorLength         int    `json:"separator_length"`
	MenuWidth               int    `json:"menu_width"`
	TotalLines              int    `json:"total_lines"`
	ContentLines            int    `json:"content_lines"`
	TextboxAreaLines        int    `json:"textbox_area_lines"`
	TextboxRow              int    `json:"textbox_row"`
	PaddingLinesNeeded      int    `json:"padding_lines_needed"`
	BreathingLines          int    `json:"breathing_lines"`
	NeedsTruncation         bool   `json:"needs_truncation"`
	EnforceConsistentHeight bool   `json:"enforce_consistent_height"`
	PrimaryColor            string `json:"primary_color"`
	AccentColor             string `json:"accent_color"`
	SeparatorChar           string `json:"separator_char"`
}

func toLayoutOutput(l layout.Calculated) layoutOutput {
	return layoutOutput{
		SeparatorLength:         l.SeparatorLength,
		MenuWidth:               l.MenuWidth,
		TotalLines:              l.TotalLines,
		ContentLines:            l.ContentLines,
		TextboxAreaLines:        l.TextboxAreaLines,
		TextboxRow:              l.TextboxRow(),
		PaddingLinesNeeded:      l.PaddingLinesNeeded,
		BreathingLines:          l.BreathingLines,
		NeedsTruncation:         l.NeedsTruncation,
		EnforceConsistentHeight: l.EnforceConsistentHeight,
		PrimaryColor:            l.Theme.Primary.String(),
		AccentColor:             l.Theme.Accent.String(),
		SeparatorChar:           l.SeparatorChar,
	}
}

func (s *Server) handlePreviewLayout(ctx context.Context, req *mcp.CallToolRequest, input layoutInput) (*mcp.CallToolResult, layoutOutput, error) {
	overrides, err := input.overrides()
	if err != nil {
		return nil, layoutOutput{}, err
	}
	l, err := s.presenter(nil).Preview(input.Skin, input.Menu, overrides)
	if err != nil {
		return nil, layoutOutput{}, err
	}
	return nil, toLayoutOutput(l), nil
}

type renderInput struct {
	Skin  string `json:"skin" jsonschema:"Skin id, e.g. phoenix"`
	Menu  string `json:"menu" jsonschema:"Menu id within the skin, e.g. main"`
	Level string `json:"level,omitempty" jsonschema:"Navigation level; main hides the back hint. Defaults to the menu id"`
}

type renderOutput struct {
	Success  bool     `json:"success"`
	Lines    int      `json:"lines"`
	Errors   []string `json:"errors"`
	Duration string   `json:"duration"`
}

func (s *Server) handleRenderMenu(ctx context.Context, req *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, renderOutput, error) {
	var buf bytes.Buffer
	res := s.presenter(&buf).RenderMenu(input.Skin, input.Menu, render.Context{Level: input.Level})
	if !res.Success {
		return nil, renderOutput{}, fmt.Errorf("render %s: %s", metrics.Key(input.Skin, input.Menu), strings.Join(res.Errors, "; "))
	}

	text := ansi.Strip(buf.String())
	out := renderOutput{
		Success:  true,
		Lines:    strings.Count(text, "\n"),
		Errors:   []string{},
		Duration: metrics.FormatDuration(res.Duration),
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, out, nil
}

type convertInput struct {
	Content legacy.Content `json:"content" jsonschema:"The sectioned legacy menu"`
	Level   string         `json:"level,omitempty" jsonschema:"Menu level used to pick the primary color, e.g. config"`
	Options legacy.Options `json:"options,omitempty" jsonschema:"Legacy layout options: fixed_height, min_separator_length, max_separator_length"`
}

type itemOutput struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Kind        string `json:"type"`
	Command     string `json:"command,omitempty"`
	Heading     bool   `json:"heading,omitempty"`
}

type definitionOutput struct {
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle,omitempty"`
	Items         []itemOutput `json:"items"`
	PrimaryColor  string       `json:"primary_color"`
	AccentColor   string       `json:"accent_color"`
	SeparatorChar string       `json:"separator_char"`
	UseIcons      bool         `json:"use_icons"`
}

type convertOutput struct {
	Definition definitionOutput `json:"definition"`
	Layout     layoutOutput     `json:"layout"`
	Valid      bool             `json:"valid"`
	Issues     []string         `json:"issues"`
}

func toDefinitionOutput(def menu.Definition) definitionOutput {
	out := definitionOutput{Title: def.Title, Subtitle: def.Subtitle, Items: []itemOutput{}}
	for _, it := range def.Items {
		out.Items = append(out.Items, itemOutput{
			ID:          it.ID,
			Label:       it.Label,
			Description: it.Description,
			Kind:        string(it.Kind),
			Command:     it.Command,
			Heading:     it.Heading,
		})
	}
	if def.Theme != nil {
		out.PrimaryColor = def.Theme.PrimaryColor.String()
		out.AccentColor = def.Theme.AccentColor.String()
		out.SeparatorChar = def.Theme.SeparatorChar
		out.UseIcons = def.Theme.UseIcons
	}
	return out
}

func (s *Server) handleConvertLegacy(ctx context.Context, req *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	var dctx *legacy.DisplayContext
	if input.Level != "" {
		dctx = &legacy.DisplayContext{Level: input.Level}
	}
	def, c := legacy.ConvertWithConstraints(input.Content, dctx, input.Options)
	v := legacy.Validate(input.Content, def)
	l := layout.CalculateForLevel(def, input.Level, c)

	issues := v.Issues
	if issues == nil {
		issues = []string{}
	}
	return nil, convertOutput{
		Definition: toDefinitionOutput(def),
		Layout:     toLayoutOutput(l),
		Valid:      v.IsValid,
		Issues:     issues,
	}, nil
}

type metricsInput struct{}

type renderTiming struct {
	Key     string `json:"key"`
	Count   int    `json:"count"`
	Last    string `json:"last"`
	Average string `json:"average"`
}

type metricsOutput struct {
	Renders []renderTiming `json:"renders"`
}

func (s *Server) handleRenderMetrics(ctx context.Context, req *mcp.CallToolRequest, _ metricsInput) (*mcp.CallToolResult, metricsOutput, error) {
	out := metricsOutput{Renders: []renderTiming{}}
	for _, r := range s.metrics.Snapshot() {
		out.Renders = append(out.Renders, renderTiming{
			Key:     r.Key,
			Count:   r.Count,
			Last:    metrics.FormatDuration(r.Last),
			Average: metrics.FormatDuration(r.Average()),
		})
	}
	return nil, out, nil
}

// presenter builds a Presenter writing plain text to w. w may be nil for
// layout-only calls.
func (s *Server) presenter(w *bytes.Buffer) *skin.Presenter {
	opts := skin.Options{
		Loader:      s.catalog,
		Constraints: s.constraints,
		Metrics:     s.metrics,
		Logger:      s.log,
	}
	if w != nil {
		lr := lipgloss.NewRenderer(w)
		lr.SetColorProfile(termenv.Ascii)
		opts.Out = w
		opts.RenderOptions = []render.Option{render.WithStyleRenderer(lr)}
	}
	return skin.NewPresenter(opts)
}
