package sections_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sitecms/internal/sections"
)

func decodeDefinition(t *testing.T, raw string) sections.PageDefinition {
	t.Helper()
	var def sections.PageDefinition
	if err := json.Unmarshal([]byte(raw), &def); err != nil {
		t.Fatalf("decode definition: %v", err)
	}
	return def
}

func TestNormalizeAnchorIDs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "home defaults",
			raw:  `{"sections":["hero","about","products","solutions","imageGrid"]}`,
			want: []string{"hero", "about", "products", "solutions", "imageGrid"},
		},
		{
			name: "repeated hero numbers from one",
			raw:  `{"sections":["hero","hero","products"]}`,
			want: []string{"hero1", "hero2", "products"},
		},
		{
			name: "three of a kind interleaved",
			raw:  `{"sections":["about",{"type":"about"},"contact","about"]}`,
			want: []string{"about1", "about2", "contact", "about3"},
		},
		{
			name: "structural and unknown entries dropped",
			raw:  `{"sections":["navbar","hero"," ","banner",{"type":"footer"},42,{"overrides":{}},"contact"]}`,
			want: []string{"hero", "contact"},
		},
		{
			name: "structural entries do not count",
			raw:  `{"sections":["footer","footer","hero"]}`,
			want: []string{"hero"},
		},
		{
			name: "sections not a list",
			raw:  `{"sections":"hero"}`,
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := sections.AnchorIDs(sections.Normalize(decodeDefinition(t, tc.raw)))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("anchor ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeOverridesSource(t *testing.T) {
	t.Parallel()

	def := decodeDefinition(t, `{
		"title": "Landing",
		"sections": [
			"hero",
			{"type": "hero", "overrides": {"title": "Second"}},
			{"type": "products"}
		],
		"overrides": {
			"hero": {"title": "Page level"},
			"products": {"heading": "ignored for object form"}
		}
	}`)

	got := sections.Normalize(def)
	want := []sections.CanonicalSection{
		{Type: sections.KindHero, Overrides: sections.Overrides{"title": "Page level"}, AnchorID: "hero1", InstanceIndex: 1},
		{Type: sections.KindHero, Overrides: sections.Overrides{"title": "Second"}, AnchorID: "hero2", InstanceIndex: 2},
		{Type: sections.KindProducts, AnchorID: "products", InstanceIndex: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeDoesNotAliasOverrides(t *testing.T) {
	t.Parallel()

	def := sections.PageDefinition{
		Sections:  sections.EntryList{sections.Bare(sections.KindHero)},
		Overrides: map[string]sections.Overrides{"hero": {"title": "A"}},
	}
	got := sections.Normalize(def)
	got[0].Overrides["title"] = "B"
	if def.Overrides["hero"]["title"] != "A" {
		t.Fatal("normalize must copy override maps")
	}
}

func TestEntryRoundTripKeepsForm(t *testing.T) {
	t.Parallel()

	raw := `{"title":"x","sections":["hero",{"type":"hero","overrides":{"title":"T"}},{"type":"about"}]}`
	def := decodeDefinition(t, raw)
	encoded, err := json.Marshal(def)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != raw {
		t.Fatalf("unexpected encoding:\n got %s\nwant %s", encoded, raw)
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	if _, ok := sections.ParseKind("imagegrid"); ok {
		t.Fatal("kinds are case sensitive")
	}
	if k, ok := sections.ParseKind(" imageGrid "); !ok || k != sections.KindImageGrid {
		t.Fatalf("expected imageGrid, got %q %v", k, ok)
	}
	if !sections.KindNavbar.Structural() || sections.KindHero.Structural() {
		t.Fatal("structural classification wrong")
	}
}
