// Package sitecms is the public entry point of the marketing site backend.
// A Module owns the content store, the page registry, the renderer and the
// optional enquiry and image services, and exposes them together with an
// HTTP handler.
package sitecms

import (
	"context"
	"net/http"

	"github.com/goliatone/go-sitecms/internal/auth"
	"github.com/goliatone/go-sitecms/internal/content"
	"github.com/goliatone/go-sitecms/internal/contentstore"
	"github.com/goliatone/go-sitecms/internal/di"
	"github.com/goliatone/go-sitecms/internal/enquiries"
	"github.com/goliatone/go-sitecms/internal/media"
	"github.com/goliatone/go-sitecms/internal/navigation"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/internal/sections"
	"github.com/goliatone/go-sitecms/internal/site"
)

// ContentStore exports the key/value document store contract.
type ContentStore = contentstore.Service

// Document exports a stored content document.
type Document = contentstore.Document

// ChangeEvent exports the change notification published on writes.
type ChangeEvent = contentstore.ChangeEvent

// PageRegistry exports the page registry.
type PageRegistry = pages.Registry

// PageEntry exports a page registry row.
type PageEntry = pages.Entry

// PageDefinition exports a stored page layout.
type PageDefinition = sections.PageDefinition

// RenderedPage exports a fully resolved page.
type RenderedPage = site.RenderedPage

// NavigationIntent exports a resolved navigation target.
type NavigationIntent = navigation.Intent

// EnquiryService exports the enquiries contract.
type EnquiryService = enquiries.Service

// ImageService exports the image library contract.
type ImageService = media.Service

// TokenVerifier exports the admin token verification contract.
type TokenVerifier = auth.TokenVerifier

// Module represents the top level site runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(ctx context.Context, cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Content returns the content store.
func (m *Module) Content() ContentStore {
	return m.container.ContentStore()
}

// Pages returns the page registry.
func (m *Module) Pages() *PageRegistry {
	return m.container.Pages()
}

// Resolver returns the section content resolver.
func (m *Module) Resolver() *content.Resolver {
	return m.container.Resolver()
}

// Render resolves every section of slug.
func (m *Module) Render(ctx context.Context, slug string) RenderedPage {
	return m.container.Renderer().RenderPage(ctx, slug)
}

// Routes returns the public URL builder.
func (m *Module) Routes() *navigation.Routes {
	return m.container.Routes()
}

// Enquiries returns nil when the feature is disabled.
func (m *Module) Enquiries() EnquiryService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Enquiries()
}

// Images returns nil when the feature is disabled.
func (m *Module) Images() ImageService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Images()
}

// Handler returns the HTTP API with its middleware stack.
func (m *Module) Handler() http.Handler {
	return m.container.API().Handler()
}

// Close releases database and storage clients owned by the module.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}
