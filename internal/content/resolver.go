package content

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/internal/sections"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// ResolvedSection is one section ready for the rendering surface.
type ResolvedSection struct {
	AnchorID      string        `json:"anchorId"`
	Type          sections.Kind `json:"type"`
	InstanceIndex int           `json:"instanceIndex"`
	Props         Props         `json:"props"`
}

// Chrome is the page furniture rendered outside the section list.
type Chrome struct {
	Navbar NavbarProps `json:"navbar"`
	Footer FooterProps `json:"footer"`
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

func WithLogger(logger interfaces.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logging.Ensure(logger)
	}
}

// WithConcurrency bounds how many sections resolve at once. Values below
// one resolve sequentially.
func WithConcurrency(n int) ResolverOption {
	return func(r *Resolver) {
		r.concurrency = n
	}
}

// WithRichText enables markdown rendering of the long about page texts.
func WithRichText(rt *RichText) ResolverOption {
	return func(r *Resolver) {
		r.richText = rt
	}
}

// Resolver resolves whole pages against the content store.
type Resolver struct {
	loader      *loader
	logger      interfaces.Logger
	concurrency int
	richText    *RichText
}

func NewResolver(source Source, opts ...ResolverOption) *Resolver {
	r := &Resolver{logger: logging.NoOp(), concurrency: 1}
	for _, opt := range opts {
		opt(r)
	}
	r.loader = &loader{source: source, logger: r.logger}
	return r
}

// Render is the state of one page render. Documents read through it are
// fetched at most once.
type Render struct {
	resolver *Resolver
	cache    *renderCache
}

// Begin starts a render.
func (r *Resolver) Begin() *Render {
	return &Render{resolver: r, cache: newRenderCache(r.loader)}
}

// ResolveSections resolves list in one render.
func (r *Resolver) ResolveSections(ctx context.Context, list []sections.CanonicalSection) []ResolvedSection {
	return r.Begin().Sections(ctx, list)
}

// Sections resolves every section of list keeping its order. Content
// failures degrade to fallbacks and are never returned.
func (rd *Render) Sections(ctx context.Context, list []sections.CanonicalSection) []ResolvedSection {
	out := make([]ResolvedSection, len(list))
	limit := rd.resolver.concurrency
	if limit < 1 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, section := range list {
		g.Go(func() error {
			out[i] = rd.Section(gctx, section)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Section resolves a single section.
func (rd *Render) Section(ctx context.Context, section sections.CanonicalSection) ResolvedSection {
	r := rd.resolver
	if unknown := UnknownOverrides(section); len(unknown) > 0 {
		r.logger.Warn("content.override.unknown_fields", "anchor", section.AnchorID, "type", section.Type, "fields", unknown)
	}
	props := Resolve(section, rd.cache.shared(ctx, section.Type))
	r.enrich(section, props)
	return ResolvedSection{
		AnchorID:      section.AnchorID,
		Type:          section.Type,
		InstanceIndex: section.InstanceIndex,
		Props:         props,
	}
}

// Chrome resolves the navbar and footer.
func (rd *Render) Chrome(ctx context.Context) Chrome {
	return Chrome{
		Navbar: ResolveNavbar(rd.cache.chrome(ctx, KeyNavbar)),
		Footer: ResolveFooter(rd.cache.chrome(ctx, KeyFooter)),
	}
}

func (r *Resolver) enrich(section sections.CanonicalSection, props Props) {
	if r.richText == nil {
		return
	}
	var target *string
	var src string
	switch p := props.(type) {
	case *AboutMissionProps:
		target, src = &p.TextHTML, p.Text
	case *AboutStartedProps:
		target, src = &p.TextHTML, p.Text
	default:
		return
	}
	html, err := r.richText.Render(src)
	if err != nil {
		r.logger.Warn("content.richtext.render_failed", "anchor", section.AnchorID, "error", err)
		return
	}
	*target = html
}
