package sections

import "strings"

// Kind names a section type.
type Kind string

const (
	KindHero          Kind = "hero"
	KindAbout         Kind = "about"
	KindProducts      Kind = "products"
	KindSolutions     Kind = "solutions"
	KindImageGrid     Kind = "imageGrid"
	KindContact       Kind = "contact"
	KindAboutHero     Kind = "aboutHero"
	KindAboutOverview Kind = "aboutOverview"
	KindAboutMission  Kind = "aboutMission"
	KindAboutStarted  Kind = "aboutStarted"

	KindNavbar Kind = "navbar"
	KindFooter Kind = "footer"
)

var renderable = []Kind{
	KindHero,
	KindAbout,
	KindProducts,
	KindSolutions,
	KindImageGrid,
	KindContact,
	KindAboutHero,
	KindAboutOverview,
	KindAboutMission,
	KindAboutStarted,
}

// Kinds returns the section kinds that can appear in a page body.
func Kinds() []Kind {
	out := make([]Kind, len(renderable))
	copy(out, renderable)
	return out
}

// Recognized reports whether k is a known kind, structural ones included.
func (k Kind) Recognized() bool {
	if k.Structural() {
		return true
	}
	for _, candidate := range renderable {
		if candidate == k {
			return true
		}
	}
	return false
}

// Structural kinds are rendered as page chrome, outside the section list.
func (k Kind) Structural() bool {
	return k == KindNavbar || k == KindFooter
}

func (k Kind) String() string { return string(k) }

// ParseKind trims s and returns the matching kind. Matching is exact;
// "imagegrid" is not a kind, only an alias handled by navigation.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.TrimSpace(s))
	if k == "" || !k.Recognized() {
		return "", false
	}
	return k, true
}
