package content_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sitecms/internal/content"
	"github.com/goliatone/go-sitecms/internal/sections"
)

func section(kind sections.Kind, overrides sections.Overrides) sections.CanonicalSection {
	return sections.CanonicalSection{Type: kind, Overrides: overrides, AnchorID: string(kind), InstanceIndex: 1}
}

func TestResolveFieldLevelFallthrough(t *testing.T) {
	t.Parallel()

	shared := map[string]any{"title": "Shared title", "subtitle": "Shared subtitle"}
	props := content.Resolve(section(sections.KindHero, sections.Overrides{"title": "Instance title"}), shared).(*content.HeroProps)

	if props.Title != "Instance title" {
		t.Fatalf("override must win, got %q", props.Title)
	}
	if props.Subtitle != "Shared subtitle" {
		t.Fatalf("untouched field must come from shared default, got %q", props.Subtitle)
	}
	if props.ButtonText != "Learn More" || props.ButtonLink != "#" {
		t.Fatalf("missing fields must fall back, got %q %q", props.ButtonText, props.ButtonLink)
	}
}

func TestResolveEmptyValuesFallThrough(t *testing.T) {
	t.Parallel()

	shared := map[string]any{"heading": "  ", "subheading": "Shared"}
	props := content.Resolve(section(sections.KindProducts, sections.Overrides{"heading": "", "subheading": nil}), shared).(*content.ProductsProps)
	if props.Heading != "Our Products" {
		t.Fatalf("blank values must not win, got %q", props.Heading)
	}
	if props.Subheading != "Shared" {
		t.Fatalf("expected shared subheading, got %q", props.Subheading)
	}
}

func TestResolveListsWholeAndCompleted(t *testing.T) {
	t.Parallel()

	shared := map[string]any{
		"cards": []any{
			map[string]any{"title": "S1", "description": "D1"},
			map[string]any{"title": "S2", "description": "D2"},
		},
	}

	override := sections.Overrides{"cards": []any{
		map[string]any{"title": "Only title"},
		map[string]any{},
		map[string]any{"description": "x"},
		map[string]any{},
		map[string]any{},
	}}
	props := content.Resolve(section(sections.KindAbout, override), shared).(*content.AboutProps)
	if len(props.Cards) != 5 {
		t.Fatalf("override list must replace whole list, got %d cards", len(props.Cards))
	}
	if props.Cards[0].Title != "Only title" || props.Cards[0].Description == "" {
		t.Fatalf("element must be completed from fallback, got %+v", props.Cards[0])
	}
	if props.Cards[1].Title != "Custom Software Development" {
		t.Fatalf("expected fallback index 1, got %+v", props.Cards[1])
	}
	if props.Cards[4].Title != "Artificial Intelligence" {
		t.Fatalf("expected fallback index to wrap, got %+v", props.Cards[4])
	}

	props = content.Resolve(section(sections.KindAbout, sections.Overrides{"cards": []any{}}), shared).(*content.AboutProps)
	want := []content.Card{{Title: "S1", Description: "D1"}, {Title: "S2", Description: "D2"}}
	if diff := cmp.Diff(want, props.Cards); diff != "" {
		t.Fatalf("empty override list must defer to shared (-want +got):\n%s", diff)
	}

	props = content.Resolve(section(sections.KindAbout, nil), nil).(*content.AboutProps)
	if len(props.Cards) != 4 || props.Heading != "Our Areas of Expertise" {
		t.Fatalf("expected fallback about, got %+v", props)
	}
}

func TestResolveOverrideAliases(t *testing.T) {
	t.Parallel()

	about := content.Resolve(section(sections.KindAbout, sections.Overrides{"title": "T", "subtitle": "S"}), map[string]any{"heading": "H"}).(*content.AboutProps)
	if about.Heading != "T" || about.Subheading != "S" {
		t.Fatalf("title/subtitle must alias heading/subheading, got %+v", about)
	}

	hero := content.Resolve(section(sections.KindHero, sections.Overrides{"image": "/x.png"}), nil).(*content.HeroProps)
	if hero.Main1 != "/x.png" {
		t.Fatalf("image must alias main1, got %q", hero.Main1)
	}

	aboutHero := content.Resolve(section(sections.KindAboutHero, sections.Overrides{"title": "L1"}), map[string]any{"line2": "Shared L2"}).(*content.AboutHeroProps)
	if aboutHero.Line1 != "L1" || aboutHero.Line2 != "Shared L2" {
		t.Fatalf("unexpected about hero %+v", aboutHero)
	}

	started := content.Resolve(section(sections.KindAboutStarted, sections.Overrides{"subtitle": "Lead", "body": "Body"}), nil).(*content.AboutStartedProps)
	if started.Lead != "Lead" || started.Text != "Body" || started.Title != "How we Started" {
		t.Fatalf("unexpected started %+v", started)
	}
}

func TestResolveImageGridTiles(t *testing.T) {
	t.Parallel()

	shared := map[string]any{"insight": map[string]any{"label": "Shared insight", "link": "/insight"}}
	override := sections.Overrides{"insight": map[string]any{"label": "Mine"}}
	props := content.Resolve(section(sections.KindImageGrid, override), shared).(*content.ImageGridProps)

	if props.Insight.Label != "Mine" || props.Insight.Link != "/insight" || props.Insight.Image == "" {
		t.Fatalf("unexpected insight tile %+v", props.Insight)
	}
	if props.Assure.Label != "Assure" || props.Assure.Link != "#" {
		t.Fatalf("unexpected assure tile %+v", props.Assure)
	}
}

func TestResolveContact(t *testing.T) {
	t.Parallel()

	shared := map[string]any{
		"email":   "hello@example.com",
		"offices": []any{map[string]any{"address": "1 Main St"}},
		"emailjs": map[string]any{"serviceId": "svc"},
	}
	props := content.Resolve(section(sections.KindContact, sections.Overrides{"phone": "+1 555"}), shared).(*content.ContactProps)

	want := &content.ContactProps{
		Heading:          "Contact us",
		Offices:          []content.Office{{Label: "Corporate Office", Address: "1 Main St"}},
		Phone:            "+1 555",
		Email:            "hello@example.com",
		ToEmail:          "hello@example.com",
		ContactInfoTitle: "Contact Information",
		GetInTouchTitle:  "Get in touch with us",
		EmailJS:          content.EmailJS{ServiceID: "svc"},
	}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Fatalf("contact mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownOverrides(t *testing.T) {
	t.Parallel()

	got := content.UnknownOverrides(section(sections.KindHero, sections.Overrides{"title": "x", "tilte": "y", "color": "z"}))
	if diff := cmp.Diff([]string{"color", "tilte"}, got); diff != "" {
		t.Fatalf("unknown fields mismatch (-want +got):\n%s", diff)
	}
}
