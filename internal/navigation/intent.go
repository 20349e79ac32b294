package navigation

import (
	"regexp"
	"strings"
)

// MenuItem is the part of a navbar entry that drives navigation.
type MenuItem struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// Intent is a resolved navigation target.
type Intent struct {
	Slug     string `json:"slug"`
	AnchorID string `json:"anchorId,omitempty"`
	Path     string `json:"path"`
	// Absolute marks links that named a path and skipped text matching.
	Absolute bool `json:"absolute,omitempty"`
}

// HasAnchor reports whether the intent targets a section.
func (i Intent) HasAnchor() bool { return i.AnchorID != "" }

func homeIntent(section string) Intent {
	section = strings.TrimSpace(section)
	if section == "" {
		return Intent{Slug: HomeSlug, Path: "/" + HomeSlug}
	}
	id := AliasSection(section)
	return Intent{Slug: HomeSlug, AnchorID: id, Path: "/" + HomeSlug + "/" + id}
}

func pageIntent(slug string) Intent {
	return Intent{Slug: slug, Path: "/" + slug}
}

func imageGridIntent() Intent {
	return homeIntent(anchorImageGrid)
}

// ResolveMenuItem turns a navbar click into an intent. A link starting with
// "/" always wins; otherwise hash links, well known labels and finally the
// target slug are tried in that order.
func ResolveMenuItem(item MenuItem) Intent {
	text := strings.ToLower(strings.TrimSpace(item.Text))
	raw := strings.TrimSpace(item.Link)
	link := strings.ToLower(raw)

	switch {
	case strings.HasPrefix(link, "/"):
		return absoluteIntent(raw)
	case strings.Contains(link, "#"):
		section := link[strings.Index(link, "#")+1:]
		if section == "careers" {
			return imageGridIntent()
		}
		return homeIntent(section)
	case text == "home":
		return homeIntent("")
	case text == "about":
		return pageIntent("about")
	case text == "products":
		return homeIntent("products")
	case text == "solutions":
		return homeIntent("solutions")
	case text == "careers":
		return imageGridIntent()
	case strings.Contains(text, "sales") || strings.Contains(text, "enquire"):
		return imageGridIntent()
	}

	switch slug := GetTargetSlug(item); slug {
	case HomeSlug:
		return homeIntent("")
	default:
		return pageIntent(slug)
	}
}

// ResolveSubmenu resolves a submenu entry target under basePath.
func ResolveSubmenu(basePath, target string) Intent {
	target = strings.TrimSpace(target)
	if strings.HasPrefix(target, "/") {
		return absoluteIntent(target)
	}
	base := strings.TrimSpace(basePath)
	if base == "" || base == "/" || strings.EqualFold(base, "/"+HomeSlug) {
		if target == anchorHome {
			return homeIntent("")
		}
		return homeIntent(target)
	}
	path := strings.TrimSuffix(base, "/") + "/" + AliasSection(target)
	return ResolveRoute(path)
}

// ResolveHash resolves a "#section" fragment on the page slug. Aliases only
// apply on the landing page.
func ResolveHash(slug, hash string) Intent {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	section := strings.TrimPrefix(strings.TrimSpace(hash), "#")
	if IsHomeLike(slug) {
		return homeIntent(section)
	}
	if section == "" {
		return pageIntent(slug)
	}
	return Intent{Slug: slug, AnchorID: section, Path: "/" + slug + "/" + section}
}

// ResolveRoute resolves "/<slug>", "/<slug>/<section>" or "/<slug>#section".
func ResolveRoute(path string) Intent {
	path = strings.TrimSpace(path)
	hash := ""
	if idx := strings.Index(path, "#"); idx >= 0 {
		path, hash = path[:idx], path[idx+1:]
	}
	parts := splitSegments(path)
	slug := HomeSlug
	if len(parts) > 0 {
		slug = parts[0]
	}
	section := hash
	if len(parts) > 1 {
		section = parts[1]
	}
	return ResolveHash(slug, section)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// GetTargetSlug derives the page slug a menu item points at.
func GetTargetSlug(item MenuItem) string {
	link := strings.TrimSpace(item.Link)
	text := strings.ToLower(strings.TrimSpace(item.Text))
	if strings.HasPrefix(link, "/") {
		if link == "/" {
			return HomeSlug
		}
		trimmed := strings.TrimPrefix(link, "/")
		if idx := strings.Index(trimmed, "#"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		return trimmed
	}
	if text == "" || text == HomeSlug {
		return HomeSlug
	}
	return whitespaceRun.ReplaceAllString(text, "-")
}

// BasePath is the path submenu entries of item are resolved against.
func BasePath(item MenuItem) string {
	link := strings.TrimSpace(item.Link)
	if strings.HasPrefix(link, "/") {
		return link
	}
	if slug := GetTargetSlug(item); slug != HomeSlug {
		return "/" + slug
	}
	return "/"
}

// NormalizePath applies alias substitution to the section segment of a
// landing page path, so "/home/careers" becomes "/home/imageGrid". Other
// paths are returned unchanged.
func NormalizePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "/" {
		return trimmed
	}
	parts := splitSegments(trimmed)
	if len(parts) == 2 && strings.EqualFold(parts[0], HomeSlug) && !strings.Contains(trimmed, "#") {
		return "/" + parts[0] + "/" + AliasSection(parts[1])
	}
	return trimmed
}

func absoluteIntent(raw string) Intent {
	path := NormalizePath(raw)
	intent := ResolveRoute(path)
	if path == "/" {
		intent = homeIntent("")
	}
	intent.Path = path
	intent.Absolute = true
	return intent
}

func splitSegments(path string) []string {
	var out []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
