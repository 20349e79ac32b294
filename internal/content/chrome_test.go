package content_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sitecms/internal/content"
)

func TestResolveNavbarFallbackMenu(t *testing.T) {
	t.Parallel()

	props := content.ResolveNavbar(nil)
	if props.Logo == "" {
		t.Fatal("expected fallback logo")
	}
	var texts, hrefs []string
	for _, item := range props.MenuItems {
		texts = append(texts, item.Text)
		hrefs = append(hrefs, item.Href)
	}
	wantTexts := []string{"Home", "About", "Products", "Solutions", "Careers", "Contact", "Sales Enquire"}
	if diff := cmp.Diff(wantTexts, texts); diff != "" {
		t.Fatalf("menu mismatch (-want +got):\n%s", diff)
	}
	if hrefs[4] != "/home/imageGrid" || !props.MenuItems[6].IsPrimary {
		t.Fatalf("unexpected careers/sales entries %+v", props.MenuItems)
	}
}

func TestResolveNavbarSubmenus(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"logo": "/logo.svg",
		"menuItems": []any{
			map[string]any{
				"text": "Promo",
				"link": "/promo",
				"submenu": []any{
					map[string]any{"target": "hero2", "label": "Second hero"},
					map[string]any{"sectionId": "contact", "text": "Reach us"},
					map[string]any{"id": "orphan"},
				},
			},
			map[string]any{"text": "Careers", "isPrimary": true},
		},
	}
	props := content.ResolveNavbar(doc)

	want := content.NavbarProps{
		Logo: "/logo.svg",
		MenuItems: []content.MenuItem{
			{
				Text: "Promo",
				Link: "/promo",
				Href: "/promo",
				Submenu: []content.SubmenuItem{
					{ID: "hero2", Label: "Second hero", Href: "/promo/hero2"},
					{ID: "contact", Label: "Reach us", Href: "/promo/contact"},
				},
			},
			{Text: "Careers", IsPrimary: true, Href: "/home/imageGrid"},
		},
	}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Fatalf("navbar mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFooter(t *testing.T) {
	t.Parallel()

	props := content.ResolveFooter(map[string]any{
		"products": []any{map[string]any{"text": "Only product"}},
	})
	if diff := cmp.Diff([]content.Link{{Text: "Only product", Link: "#"}}, props.Products); diff != "" {
		t.Fatalf("products mismatch (-want +got):\n%s", diff)
	}
	if len(props.Solutions) != 4 || len(props.Company) != 8 {
		t.Fatalf("expected fallback lists, got %d and %d", len(props.Solutions), len(props.Company))
	}
}

func TestRenderChrome(t *testing.T) {
	t.Parallel()

	source := newCountingSource(map[string]string{"footer": `{"company":[{"text":"Team","link":"/team"}]}`})
	chrome := content.NewResolver(source).Begin().Chrome(context.Background())
	if chrome.Footer.Company[0].Link != "/team" || len(chrome.Navbar.MenuItems) != 7 {
		t.Fatalf("unexpected chrome %+v", chrome)
	}
}
