package pagescmd_test

import (
	"context"
	"testing"

	pagescmd "github.com/goliatone/go-sitecms/internal/commands/pages"
	"github.com/goliatone/go-sitecms/internal/contentstore"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/internal/sections"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/go-cmp/cmp"
)

func newRegistry() *pages.Registry {
	return pages.NewRegistry(contentstore.NewService(contentstore.NewMemoryRepository()))
}

func TestCreatePageHandler(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry := newRegistry()

	var created pages.Entry
	handler := pagescmd.NewCreatePageHandler(registry, nil, func(e pages.Entry) { created = e })

	err := handler.Execute(ctx, pagescmd.CreatePageCommand{
		Name:        "Case Studies",
		Sections:    []string{"hero", "contact"},
		AddToNavbar: true,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if created.Slug != "case-studies" {
		t.Fatalf("expected normalised slug, got %q", created.Slug)
	}

	got := registry.ResolvePage(ctx, "case-studies")
	if diff := cmp.Diff([]string{"hero", "contact"}, got.Types()); diff != "" {
		t.Fatalf("unexpected sections (-want +got):\n%s", diff)
	}

	err = handler.Execute(ctx, pagescmd.CreatePageCommand{Name: "Case Studies"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command error for duplicate slug, got %v", err)
	}
}

func TestCreatePageValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		msg  pagescmd.CreatePageCommand
	}{
		{name: "no name or slug", msg: pagescmd.CreatePageCommand{}},
		{name: "unknown section", msg: pagescmd.CreatePageCommand{Name: "x", Sections: []string{"carousel"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			handler := pagescmd.NewCreatePageHandler(newRegistry(), nil, nil)
			err := handler.Execute(context.Background(), tc.msg)
			if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
				t.Fatalf("expected validation category, got %v", err)
			}
		})
	}
}

func TestSaveAndRemovePageHandlers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry := newRegistry()

	if _, err := registry.CreatePage(ctx, pages.CreateRequest{Name: "Careers"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	save := pagescmd.NewSavePageHandler(registry, nil)
	def := sections.PageDefinition{
		Title:    "Careers",
		Sections: sections.EntryList{sections.Bare(sections.KindImageGrid)},
	}
	if err := save.Execute(ctx, pagescmd.SavePageCommand{Slug: "careers", Page: def}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := registry.ResolvePage(ctx, "careers").Types(); len(got) != 1 || got[0] != "imageGrid" {
		t.Fatalf("expected saved definition, got %v", got)
	}

	remove := pagescmd.NewRemovePageHandler(registry, nil)
	if err := remove.Execute(ctx, pagescmd.RemovePageCommand{Slug: "home"}); !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected built-in removal rejected, got %v", err)
	}
	if err := remove.Execute(ctx, pagescmd.RemovePageCommand{Slug: "careers"}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := registry.LookupPage(ctx, "careers"); ok {
		t.Fatal("expected careers unregistered")
	}
}
