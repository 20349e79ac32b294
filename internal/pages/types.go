package pages

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-sitecms/internal/sections"
)

const (
	// RegistryKey holds the list of pages.
	RegistryKey = "pages"
	// NavbarKey holds the navbar document updated by AddToNavbar.
	NavbarKey = "navbar"

	pageKeyPrefix = "page-"
)

var (
	ErrSlugRequired      = errors.New("pages: slug is required")
	ErrNameRequired      = errors.New("pages: name or slug is required")
	ErrBuiltinPage       = errors.New("pages: built-in pages cannot be removed")
	ErrPageNotRegistered = errors.New("pages: page is not registered")
	ErrUnknownSection    = errors.New("pages: unknown section type")
)

// SlugConflictError is returned when a new page reuses a registered slug.
type SlugConflictError struct {
	Slug string
}

func (e *SlugConflictError) Error() string {
	return fmt.Sprintf("pages: slug %q already exists", e.Slug)
}

// IsSlugConflict reports whether err is a SlugConflictError.
func IsSlugConflict(err error) bool {
	var target *SlugConflictError
	return errors.As(err, &target)
}

// Entry is one row of the page registry.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreateRequest describes a page to add to the registry.
type CreateRequest struct {
	Name        string
	Slug        string
	Title       string
	Sections    sections.EntryList
	AddToNavbar bool
}

// Key returns the content key of the definition for slug.
func Key(slug string) string {
	return pageKeyPrefix + slug
}

var builtinPages = []Entry{
	{ID: "home", Name: "Home", Slug: "home"},
	{ID: "about", Name: "About", Slug: "about"},
}

var builtinSections = map[string][]sections.Kind{
	"home": {
		sections.KindHero,
		sections.KindAbout,
		sections.KindProducts,
		sections.KindSolutions,
		sections.KindImageGrid,
	},
	"about": {
		sections.KindAboutHero,
		sections.KindAboutOverview,
		sections.KindAboutMission,
		sections.KindAboutStarted,
	},
}

// BuiltinPages returns the pages that always exist.
func BuiltinPages() []Entry {
	out := make([]Entry, len(builtinPages))
	copy(out, builtinPages)
	return out
}

// IsBuiltin reports whether slug names a built-in page.
func IsBuiltin(slug string) bool {
	_, ok := builtinSections[slug]
	return ok
}

// DefaultSections returns the built-in section list for slug, or nil.
func DefaultSections(slug string) sections.EntryList {
	kinds, ok := builtinSections[slug]
	if !ok {
		return nil
	}
	out := make(sections.EntryList, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, sections.Bare(kind))
	}
	return out
}
