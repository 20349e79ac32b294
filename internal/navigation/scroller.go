package navigation

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

const (
	DefaultMaxAttempts   = 40
	DefaultFrameInterval = 16 * time.Millisecond
)

// ErrSuperseded is returned when a newer navigation took over.
var ErrSuperseded = errors.New("navigation: superseded by a newer navigation")

// Anchor is a mounted section and its document offset.
type Anchor struct {
	ID  string
	Top float64
}

// AnchorRegistry is filled by the rendering surface as sections mount.
type AnchorRegistry interface {
	Lookup(id string) (Anchor, bool)
	Anchors() []Anchor
}

// Viewport is the scrollable window of the rendering surface.
type Viewport interface {
	HeaderHeight() float64
	ScrollTo(y float64)
	Navigate(path string)
}

// FrameScheduler waits for the next paint.
type FrameScheduler interface {
	NextFrame(ctx context.Context) error
}

// TickerFrames approximates paint frames with a fixed interval.
type TickerFrames struct {
	Interval time.Duration
}

func (f TickerFrames) NextFrame(ctx context.Context) error {
	interval := f.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryPolicy bounds the anchor lookup loop.
type RetryPolicy struct {
	MaxAttempts int
	Frames      FrameScheduler
}

// DefaultRetryPolicy tries once per frame for 40 frames.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: DefaultMaxAttempts, Frames: TickerFrames{Interval: DefaultFrameInterval}}
}

// MemoryAnchors is an in-process AnchorRegistry.
type MemoryAnchors struct {
	mu      sync.RWMutex
	anchors map[string]Anchor
}

func NewMemoryAnchors() *MemoryAnchors {
	return &MemoryAnchors{anchors: make(map[string]Anchor)}
}

func (m *MemoryAnchors) Register(id string, top float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.anchors[id] = Anchor{ID: id, Top: top}
}

func (m *MemoryAnchors) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.anchors, id)
}

func (m *MemoryAnchors) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.anchors = make(map[string]Anchor)
}

func (m *MemoryAnchors) Lookup(id string) (Anchor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.anchors[id]
	return a, ok
}

// Anchors returns the mounted anchors ordered by offset.
func (m *MemoryAnchors) Anchors() []Anchor {
	m.mu.RLock()
	out := make([]Anchor, 0, len(m.anchors))
	for _, a := range m.anchors {
		out = append(out, a)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Top == out[j].Top {
			return out[i].ID < out[j].ID
		}
		return out[i].Top < out[j].Top
	})
	return out
}

// ScrollResult reports what a scroll request did.
type ScrollResult struct {
	AnchorID string  `json:"anchorId,omitempty"`
	Found    bool    `json:"found"`
	Attempts int     `json:"attempts"`
	Y        float64 `json:"y"`
	// FallbackPath is set when the anchor never mounted and the viewport
	// was sent to the base route instead.
	FallbackPath string `json:"fallbackPath,omitempty"`
}

// Scroller moves the viewport to anchors.
type Scroller struct {
	anchors  AnchorRegistry
	viewport Viewport
	policy   RetryPolicy
	logger   interfaces.Logger
}

// ScrollerOption configures a Scroller.
type ScrollerOption func(*Scroller)

func WithRetryPolicy(p RetryPolicy) ScrollerOption {
	return func(s *Scroller) {
		if p.MaxAttempts > 0 {
			s.policy.MaxAttempts = p.MaxAttempts
		}
		if p.Frames != nil {
			s.policy.Frames = p.Frames
		}
	}
}

func WithScrollLogger(logger interfaces.Logger) ScrollerOption {
	return func(s *Scroller) {
		s.logger = logging.Ensure(logger)
	}
}

func NewScroller(anchors AnchorRegistry, viewport Viewport, opts ...ScrollerOption) *Scroller {
	s := &Scroller{
		anchors:  anchors,
		viewport: viewport,
		policy:   DefaultRetryPolicy(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScrollToAnchor scrolls to anchorID on the page slug, retrying once per
// frame while the section has not mounted. When the attempts run out the
// viewport navigates to the base route of the page. The loop stops as soon
// as tok is superseded.
func (s *Scroller) ScrollToAnchor(tok *Token, slug, anchorID string) (ScrollResult, error) {
	result := ScrollResult{AnchorID: anchorID}
	if anchorID == "" {
		return s.ScrollToTop(tok, slug)
	}
	homeLike := IsHomeLike(slug)

	for attempt := 1; attempt <= s.policy.MaxAttempts; attempt++ {
		if !tok.Current() {
			return result, ErrSuperseded
		}
		result.Attempts = attempt
		if anchor, ok := s.find(anchorID, homeLike); ok {
			result.Found = true
			result.Y = s.offset(anchor.Top)
			s.viewport.ScrollTo(result.Y)
			return result, nil
		}
		if attempt == s.policy.MaxAttempts {
			break
		}
		if err := s.policy.Frames.NextFrame(tok.Context()); err != nil {
			return result, ErrSuperseded
		}
	}

	if !tok.Current() {
		return result, ErrSuperseded
	}
	result.FallbackPath = "/" + strings.Trim(slug, "/")
	if homeLike {
		result.FallbackPath = "/" + HomeSlug
	}
	s.logger.Warn("navigation.scroll.fallback", "slug", slug, "anchor", anchorID, "attempts", result.Attempts)
	s.viewport.Navigate(result.FallbackPath)
	return result, nil
}

// ScrollToTop handles navigation without a section. Home-like routes put
// the first section just below the header; other pages go to the top.
func (s *Scroller) ScrollToTop(tok *Token, slug string) (ScrollResult, error) {
	if !tok.Current() {
		return ScrollResult{}, ErrSuperseded
	}
	result := ScrollResult{Found: true}
	if IsHomeLike(slug) {
		if anchors := s.anchors.Anchors(); len(anchors) > 0 {
			result.AnchorID = anchors[0].ID
			result.Y = s.offset(anchors[0].Top)
		}
	}
	s.viewport.ScrollTo(result.Y)
	return result, nil
}

func (s *Scroller) find(anchorID string, homeLike bool) (Anchor, bool) {
	if anchor, ok := s.anchors.Lookup(anchorID); ok {
		return anchor, true
	}
	candidates := anchorCandidates(anchorID, homeLike)
	for _, anchor := range s.anchors.Anchors() {
		for _, candidate := range candidates {
			if strings.EqualFold(anchor.ID, candidate) {
				return anchor, true
			}
		}
	}
	return Anchor{}, false
}

func (s *Scroller) offset(top float64) float64 {
	y := top - s.viewport.HeaderHeight()
	if y < 0 {
		return 0
	}
	return y
}
