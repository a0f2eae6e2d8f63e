package skin

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/moasq/menuforge/internal/layout"
	"github.com/moasq/menuforge/internal/legacy"
	"github.com/moasq/menuforge/internal/logging"
	"github.com/moasq/menuforge/internal/menu"
	"github.com/moasq/menuforge/internal/metrics"
	"github.com/moasq/menuforge/internal/render"
)

// ErrMenuNotFound is returned when a skin has no menu with the requested id.
var ErrMenuNotFound = fmt.Errorf("menu definition not found")

// legacySkin keys metrics for menus rendered from legacy content.
const legacySkin = "legacy"

// Result is the outcome of one render call. Failures are reported here
// rather than as an error so batch callers can keep going.
type Result struct {
	Layout     layout.Calculated `yaml:"layout" json:"layout"`
	Definition menu.Definition   `yaml:"definition" json:"definition"`
	Context    render.Context    `yaml:"context" json:"context"`
	Duration   time.Duration     `yaml:"duration" json:"duration"`
	Success    bool              `yaml:"success" json:"success"`
	Errors     []string          `yaml:"errors,omitempty" json:"errors,omitempty"`
}

// Request names one menu in a RenderMany batch.
type Request struct {
	SkinID  string
	MenuID  string
	Context render.Context
}

// Options configures a Presenter.
type Options struct {
	Loader Loader
	// Constraints is the base every skin's preferences are applied over.
	Constraints layout.Constraints
	Out         io.Writer
	Metrics     *metrics.Store
	Logger      *slog.Logger
	// RenderOptions are passed to every render.New call.
	RenderOptions []render.Option
}

// Presenter renders skin menus and legacy content to one writer.
type Presenter struct {
	loader      Loader
	constraints layout.Constraints
	out         io.Writer
	metrics     *metrics.Store
	log         *slog.Logger
	renderOpts  []render.Option
}

// NewPresenter builds a Presenter. A nil Logger discards logs and a nil
// Out discards output.
func NewPresenter(opts Options) *Presenter {
	p := &Presenter{
		loader:      opts.Loader,
		constraints: opts.Constraints,
		out:         opts.Out,
		metrics:     opts.Metrics,
		log:         opts.Logger,
		renderOpts:  opts.RenderOptions,
	}
	if p.log == nil {
		p.log = logging.Discard()
	}
	if p.out == nil {
		p.out = io.Discard
	}
	if p.loader == nil {
		p.loader = NewCatalog()
	}
	return p
}

// Constraints returns the constraints the presenter would use for skinID.
func (p *Presenter) Constraints(skinID string) layout.Constraints {
	return p.loader.LayoutPreferences(skinID).Apply(p.constraints)
}

// RenderMenu looks up skinID:menuID and renders it. Empty SkinID and Level
// on ctx default to skinID and menuID.
func (p *Presenter) RenderMenu(skinID, menuID string, ctx render.Context) Result {
	start := time.Now()
	key := metrics.Key(skinID, menuID)
	lctx := logging.AppendCtx(logging.PackageCtx("skin"), slog.String("menu", key))

	if ctx.SkinID == "" {
		ctx.SkinID = skinID
	}
	if ctx.Level == "" {
		ctx.Level = menuID
	}

	def, ok := p.loader.Menu(skinID, menuID)
	if !ok {
		msg := fmt.Sprintf("%s for %s", ErrMenuNotFound, key)
		p.log.WarnContext(lctx, "menu lookup failed")
		return Result{Context: ctx, Duration: time.Since(start), Errors: []string{msg}}
	}

	l := layout.Calculate(def, p.Constraints(skinID))
	res := p.render(def, l, ctx, start)
	p.metrics.Record(key, res.Duration)
	p.log.DebugContext(lctx, "menu rendered",
		slog.Bool("success", res.Success),
		slog.Int("total_lines", l.TotalLines),
		slog.Int("separator", l.SeparatorLength),
		slog.Duration("took", res.Duration))
	return res
}

// RenderLegacy converts content and renders it with the level-aware width
// under the fixed-height constraints opts maps to. Conversion issues are
// logged and never stop the render.
func (p *Presenter) RenderLegacy(content legacy.Content, dctx *legacy.DisplayContext, opts legacy.Options) Result {
	start := time.Now()
	var ctx render.Context
	if dctx != nil {
		ctx.Level = dctx.Level
		ctx.Breadcrumb = dctx.Breadcrumb
	}
	ctx.SkinID = legacySkin
	key := metrics.Key(legacySkin, ctx.Level)
	lctx := logging.AppendCtx(logging.PackageCtx("skin"), slog.String("menu", key))

	def, c := legacy.ConvertWithConstraints(content, dctx, opts)
	if v := legacy.Validate(content, def); !v.IsValid {
		for _, issue := range v.Issues {
			p.log.WarnContext(lctx, "legacy conversion issue", slog.String("issue", issue))
		}
	}

	l := layout.CalculateForLevel(def, ctx.Level, c)
	res := p.render(def, l, ctx, start)
	p.metrics.Record(key, res.Duration)
	p.log.DebugContext(lctx, "legacy menu rendered", slog.Bool("success", res.Success))
	return res
}

// RenderMany renders each request in order. Results line up with reqs.
func (p *Presenter) RenderMany(reqs []Request) []Result {
	results := make([]Result, 0, len(reqs))
	for _, r := range reqs {
		results = append(results, p.RenderMenu(r.SkinID, r.MenuID, r.Context))
	}
	return results
}

// Preview computes the layout for skinID:menuID without writing anything.
// overrides, when non-nil, are applied after the skin's own preferences.
func (p *Presenter) Preview(skinID, menuID string, overrides *Preferences) (layout.Calculated, error) {
	def, ok := p.loader.Menu(skinID, menuID)
	if !ok {
		return layout.Calculated{}, fmt.Errorf("preview %s: %w", metrics.Key(skinID, menuID), ErrMenuNotFound)
	}
	c := p.Constraints(skinID)
	if overrides != nil {
		c = overrides.Apply(c)
	}
	return layout.Calculate(def, c), nil
}

// Metrics returns the store render timings are recorded in. It may be nil.
func (p *Presenter) Metrics() *metrics.Store {
	return p.metrics
}

func (p *Presenter) render(def menu.Definition, l layout.Calculated, ctx render.Context, start time.Time) Result {
	res := Result{Layout: l, Definition: def, Context: ctx, Success: true}
	if err := render.New(p.out, p.renderOpts...).Render(def, l, ctx); err != nil {
		res.Success = false
		res.Errors = append(res.Errors, err.Error())
	}
	res.Duration = time.Since(start)
	return res
}
