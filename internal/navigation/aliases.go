package navigation

import "strings"

// HomeSlug is the slug of the landing page.
const HomeSlug = "home"

const (
	anchorHome      = "home"
	anchorImageGrid = "imageGrid"
	anchorContact   = "contact"
)

// "careers" and "sales/enquire" both land on the image grid.
var sectionAliases = map[string]string{
	"hero":      anchorHome,
	"imagegrid": anchorImageGrid,
	"career":    anchorImageGrid,
	"careers":   anchorImageGrid,
	"sales":     anchorImageGrid,
	"enquire":   anchorImageGrid,
	"contact":   anchorContact,
	"footer":    anchorContact,
}

// AliasSection maps a section name through the alias table. Matching
// ignores case; unknown names are returned unchanged.
func AliasSection(section string) string {
	if alias, ok := sectionAliases[strings.ToLower(strings.TrimSpace(section))]; ok {
		return alias
	}
	return section
}

// homeAnchorAliases are the alternate ids tried on home-like routes.
var homeAnchorAliases = map[string][]string{
	"home":      {"hero"},
	"hero":      {"home"},
	"careers":   {"imageGrid"},
	"imagegrid": {"careers"},
}

// anchorCandidates lists the ids to try for anchorID, most specific first.
func anchorCandidates(anchorID string, homeLike bool) []string {
	out := []string{anchorID}
	if !homeLike {
		return out
	}
	lower := strings.ToLower(anchorID)
	if aliased := AliasSection(anchorID); aliased != anchorID {
		out = append(out, aliased)
	}
	out = append(out, homeAnchorAliases[lower]...)
	return out
}

// IsHomeLike reports whether slug renders the landing page.
func IsHomeLike(slug string) bool {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	return slug == "" || strings.EqualFold(slug, HomeSlug)
}
