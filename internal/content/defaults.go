package content

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/goliatone/go-sitecms/internal/sections"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// Shared default document keys.
const (
	KeyHero       = "hero"
	KeyAbout      = "about"
	KeyProducts   = "products"
	KeySolutions  = "solutions"
	KeyImageGrid  = "imageGrid"
	KeyContact    = "contact"
	KeyNavbar     = "navbar"
	KeyFooter     = "footer"
	KeyAboutPage  = "aboutPage"
	legacySuccess = "success"
)

// Source reads content documents. contentstore.Service satisfies it.
type Source interface {
	Lookup(ctx context.Context, key string, target any) (bool, error)
}

type sharedSpec struct {
	keys []string
	// listField receives the document when it is stored as a bare array.
	listField string
	// sub selects a member of an aggregate document.
	sub string
}

var sharedSpecs = map[sections.Kind]sharedSpec{
	sections.KindHero:          {keys: []string{KeyHero}},
	sections.KindAbout:         {keys: []string{KeyAbout}, listField: "cards"},
	sections.KindProducts:      {keys: []string{KeyProducts}, listField: "cards"},
	sections.KindSolutions:     {keys: []string{KeySolutions, legacySuccess}, listField: "slides"},
	sections.KindImageGrid:     {keys: []string{KeyImageGrid}},
	sections.KindContact:       {keys: []string{KeyContact}},
	sections.KindAboutHero:     {keys: []string{KeyAboutPage}, sub: "hero"},
	sections.KindAboutOverview: {keys: []string{KeyAboutPage}, sub: "about"},
	sections.KindAboutMission:  {keys: []string{KeyAboutPage}, sub: "mission"},
	sections.KindAboutStarted:  {keys: []string{KeyAboutPage}, sub: "started"},
}

// SharedKeys lists the content keys read for kind, in lookup order.
func SharedKeys(kind sections.Kind) []string {
	spec := sharedSpecs[kind]
	out := make([]string, len(spec.keys))
	copy(out, spec.keys)
	return out
}

type fetchResult struct {
	value any
	found bool
}

// loader collapses concurrent reads of the same document across renders.
type loader struct {
	source Source
	logger interfaces.Logger
	group  singleflight.Group
}

// fetch joins an in-flight read of key when one exists. The shared read is
// detached from the caller's cancellation; each caller only stops waiting
// when its own ctx ends.
func (l *loader) fetch(ctx context.Context, key string) (fetchResult, error) {
	shared := context.WithoutCancel(ctx)
	ch := l.group.DoChan(key, func() (any, error) {
		var value any
		found, err := l.source.Lookup(shared, key, &value)
		if err != nil {
			return fetchResult{}, err
		}
		return fetchResult{value: value, found: found}, nil
	})
	select {
	case <-ctx.Done():
		return fetchResult{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return fetchResult{}, res.Err
		}
		return res.Val.(fetchResult), nil
	}
}

// renderCache holds the documents read during one page render so each is
// fetched at most once regardless of how many sections use it.
type renderCache struct {
	loader *loader
	mu     sync.Mutex
	docs   map[string]*cachedDoc
}

type cachedDoc struct {
	once   sync.Once
	result fetchResult
}

func newRenderCache(l *loader) *renderCache {
	return &renderCache{loader: l, docs: make(map[string]*cachedDoc)}
}

func (c *renderCache) document(ctx context.Context, key string) fetchResult {
	c.mu.Lock()
	entry, ok := c.docs[key]
	if !ok {
		entry = &cachedDoc{}
		c.docs[key] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		result, err := c.loader.fetch(ctx, key)
		if err != nil {
			c.loader.logger.Warn("content.defaults.fetch_failed", "key", key, "error", err)
			return
		}
		entry.result = result
	})
	return entry.result
}

// shared returns the shared default fields for kind. Failures and missing
// documents both read as empty.
func (c *renderCache) shared(ctx context.Context, kind sections.Kind) fields {
	spec, ok := sharedSpecs[kind]
	if !ok {
		return nil
	}
	for _, key := range spec.keys {
		doc := c.document(ctx, key)
		if !doc.found {
			continue
		}
		if items, isList := doc.value.([]any); isList {
			if spec.listField == "" {
				continue
			}
			return fields{spec.listField: items}
		}
		obj := asFields(doc.value)
		if obj == nil {
			continue
		}
		if spec.sub != "" {
			return obj.object(spec.sub)
		}
		return obj
	}
	return nil
}

// chrome returns a structural document (navbar or footer).
func (c *renderCache) chrome(ctx context.Context, key string) fields {
	doc := c.document(ctx, key)
	if !doc.found {
		return nil
	}
	return asFields(doc.value)
}
