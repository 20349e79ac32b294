package pages

import (
	"context"
	"strings"
	"sync"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-sitecms/internal/contentstore"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/internal/sections"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(logger interfaces.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logging.Ensure(logger)
	}
}

// WithSlugNormalizer replaces the go-slug normaliser used by CreatePage.
func WithSlugNormalizer(fn func(string) (string, error)) RegistryOption {
	return func(r *Registry) {
		if fn != nil {
			r.normalizeSlug = fn
		}
	}
}

// Registry resolves page definitions and maintains the page list.
type Registry struct {
	store         contentstore.Service
	logger        interfaces.Logger
	normalizeSlug func(string) (string, error)

	// writes to the registry and navbar documents are read-merge-write
	mu sync.Mutex
}

// NewRegistry returns a registry over store.
func NewRegistry(store contentstore.Service, opts ...RegistryOption) *Registry {
	r := &Registry{
		store:         store,
		logger:        logging.NoOp(),
		normalizeSlug: slug.Normalize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolvePage returns the definition stored for slug. Missing definitions and
// definitions with no renderable sections fall back to the built-in section
// list for home and about. Store failures count as a missing document.
func (r *Registry) ResolvePage(ctx context.Context, slug string) sections.PageDefinition {
	slug = strings.TrimSpace(slug)
	var def sections.PageDefinition
	found, err := r.store.Lookup(ctx, Key(slug), &def)
	if err != nil {
		r.logger.Warn("pages.resolve.lookup_failed", "slug", slug, "error", err)
		def, found = sections.PageDefinition{}, false
	}
	if !found || len(sections.Normalize(def)) == 0 {
		if defaults := DefaultSections(slug); defaults != nil {
			def.Sections = defaults
		} else if len(def.Sections) == 0 {
			def.Sections = sections.EntryList{}
		}
	}
	return def
}

// Sections resolves slug and normalises it in one step.
func (r *Registry) Sections(ctx context.Context, slug string) []sections.CanonicalSection {
	return sections.Normalize(r.ResolvePage(ctx, slug))
}

// ListPages returns the registry with the built-in pages first. Entries are
// de-duplicated by slug keeping the first occurrence.
func (r *Registry) ListPages(ctx context.Context) []Entry {
	stored, err := r.storedEntries(ctx)
	if err != nil {
		r.logger.Warn("pages.list.lookup_failed", "error", err)
		stored = nil
	}
	return mergeEntries(builtinPages, stored)
}

// LookupPage returns the registry entry for slug.
func (r *Registry) LookupPage(ctx context.Context, slug string) (Entry, bool) {
	for _, entry := range r.ListPages(ctx) {
		if entry.Slug == slug {
			return entry, true
		}
	}
	return Entry{}, false
}

// CreatePage registers a page and writes its definition. A blank slug is
// derived from the name.
func (r *Registry) CreatePage(ctx context.Context, req CreateRequest) (Entry, error) {
	name := strings.TrimSpace(req.Name)
	raw := strings.TrimSpace(req.Slug)
	if raw == "" {
		raw = name
	}
	if raw == "" {
		return Entry{}, ErrNameRequired
	}
	normalized, err := r.normalizeSlug(raw)
	if err != nil {
		return Entry{}, err
	}
	if normalized == "" {
		return Entry{}, ErrSlugRequired
	}
	if err := validateEntries(req.Sections); err != nil {
		return Entry{}, err
	}
	if name == "" {
		name = normalized
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.storedEntries(ctx)
	if err != nil {
		return Entry{}, err
	}
	for _, existing := range mergeEntries(builtinPages, stored) {
		if existing.Slug == normalized {
			return Entry{}, &SlugConflictError{Slug: normalized}
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = name
	}
	list := req.Sections
	if list == nil {
		list = sections.EntryList{}
	}
	if _, err := r.store.PutValue(ctx, Key(normalized), sections.PageDefinition{Title: title, Sections: list}); err != nil {
		return Entry{}, err
	}

	entry := Entry{ID: normalized, Name: name, Slug: normalized}
	if _, err := r.store.PutValue(ctx, RegistryKey, append(stored, entry)); err != nil {
		return Entry{}, err
	}
	r.logger.Info("pages.created", "slug", normalized, "sections", len(list))

	if req.AddToNavbar {
		if _, err := r.addToNavbarLocked(ctx, normalized, name); err != nil {
			return entry, err
		}
	}
	return entry, nil
}

// SavePage writes def under slug. Every section type must be recognised.
func (r *Registry) SavePage(ctx context.Context, slug string, def sections.PageDefinition) (sections.PageDefinition, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return sections.PageDefinition{}, ErrSlugRequired
	}
	if err := validateEntries(def.Sections); err != nil {
		return sections.PageDefinition{}, err
	}
	if def.Sections == nil {
		def.Sections = sections.EntryList{}
	}
	if _, err := r.store.PutValue(ctx, Key(slug), def); err != nil {
		return sections.PageDefinition{}, err
	}
	r.logger.Info("pages.saved", "slug", slug, "sections", len(def.Sections))
	return def, nil
}

// RemovePage drops slug from the registry. The stored definition is kept.
func (r *Registry) RemovePage(ctx context.Context, slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ErrSlugRequired
	}
	if IsBuiltin(slug) {
		return ErrBuiltinPage
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.storedEntries(ctx)
	if err != nil {
		return err
	}
	kept := make([]Entry, 0, len(stored))
	for _, entry := range stored {
		if entry.Slug != slug {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(stored) {
		return ErrPageNotRegistered
	}
	if _, err := r.store.PutValue(ctx, RegistryKey, kept); err != nil {
		return err
	}
	r.logger.Info("pages.removed", "slug", slug)
	return nil
}

func (r *Registry) storedEntries(ctx context.Context) ([]Entry, error) {
	var stored []Entry
	if _, err := r.store.Lookup(ctx, RegistryKey, &stored); err != nil {
		return nil, err
	}
	out := stored[:0]
	for _, entry := range stored {
		if strings.TrimSpace(entry.Slug) == "" {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func mergeEntries(groups ...[]Entry) []Entry {
	seen := make(map[string]struct{})
	var out []Entry
	for _, group := range groups {
		for _, entry := range group {
			if entry.Slug == "" {
				continue
			}
			if _, ok := seen[entry.Slug]; ok {
				continue
			}
			seen[entry.Slug] = struct{}{}
			if entry.ID == "" {
				entry.ID = entry.Slug
			}
			if entry.Name == "" {
				entry.Name = entry.Slug
			}
			out = append(out, entry)
		}
	}
	return out
}

func validateEntries(list sections.EntryList) error {
	for _, entry := range list {
		if entry.Malformed {
			return ErrUnknownSection
		}
		if _, ok := sections.ParseKind(entry.Type); !ok {
			return &UnknownSectionError{Type: entry.Type}
		}
	}
	return nil
}

// UnknownSectionError names the rejected section type.
type UnknownSectionError struct {
	Type string
}

func (e *UnknownSectionError) Error() string {
	return ErrUnknownSection.Error() + ": " + e.Type
}

func (e *UnknownSectionError) Unwrap() error { return ErrUnknownSection }
