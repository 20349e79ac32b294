package site

import (
	"context"
	"sync"

	"github.com/goliatone/go-sitecms/internal/navigation"
)

// MountFunc lays out a rendered page on the surface and registers its
// anchors.
type MountFunc func(page RenderedPage, anchors *navigation.MemoryAnchors)

// Session follows one visitor through the site. Each visit supersedes the
// previous one: a render that finishes after a newer visit started is
// discarded and its scroll retries stop.
type Session struct {
	renderer *Renderer
	tracker  *navigation.Tracker
	anchors  *navigation.MemoryAnchors
	scroller *navigation.Scroller
	viewport navigation.Viewport
	mount    MountFunc

	mu      sync.Mutex
	current *RenderedPage
}

// NewSession returns a session drawing on viewport.
func NewSession(renderer *Renderer, viewport navigation.Viewport, mount MountFunc, opts ...navigation.ScrollerOption) *Session {
	anchors := navigation.NewMemoryAnchors()
	return &Session{
		renderer: renderer,
		tracker:  navigation.NewTracker(),
		anchors:  anchors,
		scroller: navigation.NewScroller(anchors, viewport, opts...),
		viewport: viewport,
		mount:    mount,
	}
}

// Visit renders the page of intent, commits it if still current and
// scrolls to the intent anchor.
func (s *Session) Visit(ctx context.Context, intent navigation.Intent) (navigation.ScrollResult, error) {
	tok := s.tracker.Begin(ctx)
	s.viewport.Navigate(intent.Path)

	page := s.renderer.RenderPage(tok.Context(), intent.Slug)
	if !s.commit(tok, page) {
		return navigation.ScrollResult{}, navigation.ErrSuperseded
	}
	if !intent.HasAnchor() {
		return s.scroller.ScrollToTop(tok, page.Slug)
	}
	return s.scroller.ScrollToAnchor(tok, page.Slug, intent.AnchorID)
}

// Click follows a navbar item.
func (s *Session) Click(ctx context.Context, item navigation.MenuItem) (navigation.ScrollResult, error) {
	return s.Visit(ctx, navigation.ResolveMenuItem(item))
}

// Current returns the committed page, if any.
func (s *Session) Current() (RenderedPage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return RenderedPage{}, false
	}
	return *s.current, true
}

// Close abandons the active visit.
func (s *Session) Close() {
	s.tracker.Close()
}

// Anchors exposes the registry the surface mounts sections into.
func (s *Session) Anchors() *navigation.MemoryAnchors { return s.anchors }

func (s *Session) commit(tok *navigation.Token, page RenderedPage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !tok.Current() {
		return false
	}
	s.current = &page
	s.anchors.Reset()
	if s.mount != nil {
		s.mount(page, s.anchors)
	}
	return true
}
