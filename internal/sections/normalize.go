package sections

import "strconv"

// CanonicalSection is a section ready for content resolution.
type CanonicalSection struct {
	Type          Kind      `json:"type"`
	Overrides     Overrides `json:"overrides,omitempty"`
	AnchorID      string    `json:"anchorId"`
	InstanceIndex int       `json:"instanceIndex"`
}

// Normalize collapses the stored section list of def into canonical form.
// Entries with a blank or unknown type are dropped, as are the structural
// navbar and footer. A type that occurs once keeps its name as anchor id;
// repeated types are numbered from 1 in list order.
func Normalize(def PageDefinition) []CanonicalSection {
	shaped := make([]CanonicalSection, 0, len(def.Sections))
	for _, entry := range def.Sections {
		if entry.Malformed {
			continue
		}
		kind, ok := ParseKind(entry.Type)
		if !ok || kind.Structural() {
			continue
		}
		overrides := entry.Overrides
		if !entry.Inline {
			overrides = def.Overrides[string(kind)]
		}
		shaped = append(shaped, CanonicalSection{
			Type:      kind,
			Overrides: overrides.Clone(),
		})
	}

	totals := make(map[Kind]int, len(shaped))
	for _, section := range shaped {
		totals[section.Type]++
	}

	seen := make(map[Kind]int, len(totals))
	for i := range shaped {
		kind := shaped[i].Type
		seen[kind]++
		shaped[i].InstanceIndex = seen[kind]
		shaped[i].AnchorID = AnchorID(kind, seen[kind], totals[kind])
	}
	return shaped
}

// AnchorID returns the anchor of the occurrence-th instance of kind on a page
// holding total instances.
func AnchorID(kind Kind, occurrence, total int) string {
	if total <= 1 {
		return string(kind)
	}
	return string(kind) + strconv.Itoa(occurrence)
}

// AnchorIDs lists the anchors of sections in order.
func AnchorIDs(sections []CanonicalSection) []string {
	out := make([]string, len(sections))
	for i, section := range sections {
		out[i] = section.AnchorID
	}
	return out
}
