package pages_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sitecms/internal/contentstore"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/internal/sections"
)

type failingRepository struct {
	err error
}

func (f failingRepository) Get(context.Context, string) (*contentstore.Document, error) {
	return nil, f.err
}

func (f failingRepository) List(context.Context) ([]*contentstore.Document, error) {
	return nil, f.err
}

func (f failingRepository) Put(context.Context, string, json.RawMessage) (*contentstore.Document, bool, error) {
	return nil, false, f.err
}

func (f failingRepository) Delete(context.Context, string) error {
	return f.err
}

func newRegistry(t *testing.T) (*pages.Registry, contentstore.Service) {
	t.Helper()
	store := contentstore.NewService(contentstore.NewMemoryRepository())
	return pages.NewRegistry(store), store
}

func put(t *testing.T, store contentstore.Service, key, value string) {
	t.Helper()
	if _, err := store.Put(context.Background(), key, json.RawMessage(value)); err != nil {
		t.Fatalf("put %s: %v", key, err)
	}
}

func TestResolvePageDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, store := newRegistry(t)
	put(t, store, "page-about", `{"title":"About","sections":[]}`)

	cases := []struct {
		slug string
		want []string
	}{
		{"home", []string{"hero", "about", "products", "solutions", "imageGrid"}},
		{"about", []string{"aboutHero", "aboutOverview", "aboutMission", "aboutStarted"}},
		{"landing", []string{}},
	}
	for _, tc := range cases {
		got := registry.ResolvePage(ctx, tc.slug).Types()
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s sections mismatch (-want +got):\n%s", tc.slug, diff)
		}
	}

	anchors := sections.AnchorIDs(registry.Sections(ctx, "home"))
	if diff := cmp.Diff([]string{"hero", "about", "products", "solutions", "imageGrid"}, anchors); diff != "" {
		t.Fatalf("home anchors mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePageWithoutRenderableSectionsUsesDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, store := newRegistry(t)
	put(t, store, "page-home", `{"sections":["navbar","footer","  ",{"type":"carousel"}]}`)
	put(t, store, "page-landing", `{"sections":["navbar"]}`)

	anchors := sections.AnchorIDs(registry.Sections(ctx, "home"))
	if diff := cmp.Diff([]string{"hero", "about", "products", "solutions", "imageGrid"}, anchors); diff != "" {
		t.Fatalf("home anchors mismatch (-want +got):\n%s", diff)
	}
	if got := registry.Sections(ctx, "landing"); len(got) != 0 {
		t.Fatalf("expected no sections for landing, got %v", sections.AnchorIDs(got))
	}
}

func TestResolvePageStoreFailureDegrades(t *testing.T) {
	t.Parallel()
	store := contentstore.NewService(failingRepository{err: errors.New("connection refused")})
	registry := pages.NewRegistry(store)

	got := registry.ResolvePage(context.Background(), "home").Types()
	if len(got) != 5 || got[0] != "hero" {
		t.Fatalf("expected home defaults, got %v", got)
	}
	if entries := registry.ListPages(context.Background()); len(entries) != 2 {
		t.Fatalf("expected built-ins only, got %v", entries)
	}
}

func TestListPages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, store := newRegistry(t)

	want := []pages.Entry{
		{ID: "home", Name: "Home", Slug: "home"},
		{ID: "about", Name: "About", Slug: "about"},
	}
	if diff := cmp.Diff(want, registry.ListPages(ctx)); diff != "" {
		t.Fatalf("empty store mismatch (-want +got):\n%s", diff)
	}

	put(t, store, "pages", `[{"id":"h","name":"Start","slug":"home"},{"slug":"landing"},{"slug":"landing","name":"Dup"},{"name":"no slug"}]`)
	want = append(want, pages.Entry{ID: "landing", Name: "landing", Slug: "landing"})
	if diff := cmp.Diff(want, registry.ListPages(ctx)); diff != "" {
		t.Fatalf("stored registry mismatch (-want +got):\n%s", diff)
	}
}

func TestCreatePage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, store := newRegistry(t)

	entry, err := registry.CreatePage(ctx, pages.CreateRequest{
		Name:        "Landing Page",
		Sections:    sections.EntryList{sections.Bare(sections.KindHero), sections.Bare(sections.KindContact)},
		AddToNavbar: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if entry.Slug != "landing-page" || entry.Name != "Landing Page" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	def := registry.ResolvePage(ctx, "landing-page")
	if def.Title != "Landing Page" {
		t.Fatalf("expected title from name, got %q", def.Title)
	}
	if diff := cmp.Diff([]string{"hero", "contact"}, def.Types()); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}

	var navbar struct {
		MenuItems []struct{ Text, Link string } `json:"menuItems"`
	}
	if found, err := store.Lookup(ctx, "navbar", &navbar); err != nil || !found {
		t.Fatalf("navbar lookup: found=%v err=%v", found, err)
	}
	if len(navbar.MenuItems) != 1 || navbar.MenuItems[0].Link != "/landing-page" {
		t.Fatalf("unexpected navbar %+v", navbar)
	}

	_, err = registry.CreatePage(ctx, pages.CreateRequest{Name: "Other", Slug: "landing-page"})
	if !pages.IsSlugConflict(err) {
		t.Fatalf("expected slug conflict, got %v", err)
	}
	_, err = registry.CreatePage(ctx, pages.CreateRequest{Name: "Home"})
	if !pages.IsSlugConflict(err) {
		t.Fatalf("expected built-in conflict, got %v", err)
	}
	_, err = registry.CreatePage(ctx, pages.CreateRequest{})
	if !errors.Is(err, pages.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	_, err = registry.CreatePage(ctx, pages.CreateRequest{Name: "Bad", Sections: sections.EntryList{{Type: "banner"}}})
	if !errors.Is(err, pages.ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestSavePageRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, _ := newRegistry(t)

	def := sections.PageDefinition{
		Title: "Campaign",
		Sections: sections.EntryList{
			sections.Bare(sections.KindHero),
			sections.Instance(sections.KindHero, sections.Overrides{"title": "Second"}),
			sections.Bare(sections.KindProducts),
		},
		Overrides: map[string]sections.Overrides{"hero": {"subtitle": "Shared"}},
	}
	if _, err := registry.SavePage(ctx, "campaign", def); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := registry.ResolvePage(ctx, "campaign")
	if diff := cmp.Diff(sections.Normalize(def), sections.Normalize(got)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"hero1", "hero2", "products"}, sections.AnchorIDs(sections.Normalize(got))); diff != "" {
		t.Fatalf("anchor mismatch (-want +got):\n%s", diff)
	}
}

func TestRemovePage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, store := newRegistry(t)

	if _, err := registry.CreatePage(ctx, pages.CreateRequest{Name: "promo"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := registry.RemovePage(ctx, "home"); !errors.Is(err, pages.ErrBuiltinPage) {
		t.Fatalf("expected ErrBuiltinPage, got %v", err)
	}
	if err := registry.RemovePage(ctx, "promo"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := registry.LookupPage(ctx, "promo"); ok {
		t.Fatal("expected promo to leave the registry")
	}
	if _, err := store.Get(ctx, "page-promo"); err != nil {
		t.Fatalf("definition must survive removal: %v", err)
	}
	if err := registry.RemovePage(ctx, "promo"); !errors.Is(err, pages.ErrPageNotRegistered) {
		t.Fatalf("expected ErrPageNotRegistered, got %v", err)
	}
}

func TestAddToNavbarSkipsDuplicates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, store := newRegistry(t)
	put(t, store, "navbar", `{"logo":"logo.png","menuItems":[{"text":"Careers","link":"#careers"}]}`)

	changed, err := registry.AddToNavbar(ctx, "jobs", "careers")
	if err != nil || changed {
		t.Fatalf("expected text match to skip, changed=%v err=%v", changed, err)
	}
	changed, err = registry.AddToNavbar(ctx, "jobs", "Jobs")
	if err != nil || !changed {
		t.Fatalf("expected append, changed=%v err=%v", changed, err)
	}
	changed, _ = registry.AddToNavbar(ctx, "jobs", "Openings")
	if changed {
		t.Fatal("expected link match to skip")
	}

	var navbar map[string]any
	if _, err := store.Lookup(ctx, "navbar", &navbar); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if navbar["logo"] != "logo.png" {
		t.Fatal("unrelated navbar fields must survive")
	}
}

func TestSuggestLinks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, store := newRegistry(t)
	put(t, store, "pages", `[{"slug":"promo"}]`)
	put(t, store, "page-promo", `{"sections":["hero","hero","contact"]}`)

	cases := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"promo", nil},
		{"/", []string{"/home", "/about", "/promo"}},
		{"/A", []string{"/about"}},
		{"/promo/", []string{"/promo/hero1", "/promo/hero2", "/promo/contact"}},
		{"/promo/he", []string{"/promo/hero1", "/promo/hero2"}},
		{"/home/IMAGE", []string{"/home/imageGrid"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, registry.SuggestLinks(ctx, tc.input)); diff != "" {
			t.Fatalf("%q mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}
