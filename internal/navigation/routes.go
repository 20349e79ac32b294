package navigation

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	// SiteGroup is the route group the site pages are registered under.
	SiteGroup    = "site"
	routePage    = "page"
	routeSection = "section"
)

// DefaultRouteConfig returns the page and section routes rooted at baseURL.
func DefaultRouteConfig(baseURL string) *urlkit.Config {
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    SiteGroup,
				BaseURL: strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
				Paths: map[string]string{
					routePage:    "/:slug",
					routeSection: "/:slug/:section",
				},
			},
		},
	}
}

// Routes builds public URLs for intents.
type Routes struct {
	manager *urlkit.RouteManager
}

// NewRoutes returns a builder over cfg. A nil cfg uses DefaultRouteConfig
// with no base URL.
func NewRoutes(cfg *urlkit.Config) *Routes {
	if cfg == nil {
		cfg = DefaultRouteConfig("")
	}
	return &Routes{manager: urlkit.NewRouteManager(cfg)}
}

// URL returns the public URL of intent. Absolute intents keep their path
// and are only prefixed by the group base URL.
func (r *Routes) URL(intent Intent) (string, error) {
	if intent.Absolute {
		base, err := r.baseURL()
		if err != nil {
			return "", err
		}
		return base + intent.Path, nil
	}
	if intent.Slug == "" {
		return "", fmt.Errorf("navigation: intent has no slug")
	}
	if intent.AnchorID == "" {
		return r.build(routePage, map[string]any{"slug": intent.Slug})
	}
	return r.build(routeSection, map[string]any{"slug": intent.Slug, "section": intent.AnchorID})
}

// PageURL is a shorthand for the page route of slug.
func (r *Routes) PageURL(slug string) (string, error) {
	return r.build(routePage, map[string]any{"slug": slug})
}

func (r *Routes) build(route string, params map[string]any) (url string, err error) {
	group, err := r.group()
	if err != nil {
		return "", err
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("navigation: urlkit builder panic: %v", rec)
		}
	}()
	builder := group.Builder(route)
	for key, val := range params {
		builder.WithParam(key, val)
	}
	return builder.Build()
}

func (r *Routes) group() (group *urlkit.Group, err error) {
	if r == nil || r.manager == nil {
		return nil, fmt.Errorf("navigation: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("navigation: route group %q not found", SiteGroup)
		}
	}()
	return r.manager.Group(SiteGroup), nil
}

func (r *Routes) baseURL() (string, error) {
	url, err := r.PageURL("x")
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(url, "/x"), nil
}
