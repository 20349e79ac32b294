package site

import (
	"context"
	"strings"

	"github.com/goliatone/go-sitecms/internal/content"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/internal/sections"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// RenderedPage is everything the rendering surface needs for one route.
type RenderedPage struct {
	Slug     string                    `json:"slug"`
	Title    string                    `json:"title"`
	Sections []content.ResolvedSection `json:"sections"`
	Navbar   content.NavbarProps       `json:"navbar"`
	Footer   content.FooterProps       `json:"footer"`
}

// AnchorIDs lists the anchors of the page in order.
func (p RenderedPage) AnchorIDs() []string {
	out := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		out[i] = s.AnchorID
	}
	return out
}

// Renderer composes pages from the registry and the content resolver.
type Renderer struct {
	pages   *pages.Registry
	content *content.Resolver
	logger  interfaces.Logger
}

// NewRenderer wires a renderer. A nil logger discards output.
func NewRenderer(registry *pages.Registry, resolver *content.Resolver, logger interfaces.Logger) *Renderer {
	return &Renderer{pages: registry, content: resolver, logger: logging.Ensure(logger)}
}

// RenderPage resolves slug into its final section list. It never fails;
// missing content degrades to defaults.
func (r *Renderer) RenderPage(ctx context.Context, slug string) RenderedPage {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		slug = "home"
	}
	def := r.pages.ResolvePage(ctx, slug)
	canonical := sections.Normalize(def)

	render := r.content.Begin()
	chrome := render.Chrome(ctx)
	page := RenderedPage{
		Slug:     slug,
		Title:    r.title(ctx, slug, def),
		Sections: render.Sections(ctx, canonical),
		Navbar:   chrome.Navbar,
		Footer:   chrome.Footer,
	}
	r.logger.Debug("site.page.rendered", "slug", slug, "sections", len(page.Sections))
	return page
}

func (r *Renderer) title(ctx context.Context, slug string, def sections.PageDefinition) string {
	if t := strings.TrimSpace(def.Title); t != "" {
		return t
	}
	if entry, ok := r.pages.LookupPage(ctx, slug); ok {
		return entry.Name
	}
	return slug
}
