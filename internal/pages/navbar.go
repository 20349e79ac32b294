package pages

import (
	"context"
	"strings"
)

// AddToNavbar appends a menu item linking to slug unless one with the same
// text or link is already present. It reports whether the navbar changed.
func (r *Registry) AddToNavbar(ctx context.Context, slug, title string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addToNavbarLocked(ctx, slug, title)
}

func (r *Registry) addToNavbarLocked(ctx context.Context, slug, title string) (bool, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return false, ErrSlugRequired
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = slug
	}
	link := "/" + slug

	doc := map[string]any{}
	if _, err := r.store.Lookup(ctx, NavbarKey, &doc); err != nil {
		return false, err
	}
	if doc == nil {
		doc = map[string]any{}
	}

	items, _ := doc["menuItems"].([]any)
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		text, _ := item["text"].(string)
		existing, _ := item["link"].(string)
		if strings.EqualFold(strings.TrimSpace(text), title) || strings.TrimSpace(existing) == link {
			return false, nil
		}
	}

	doc["menuItems"] = append(items, map[string]any{"text": title, "link": link})
	if _, err := r.store.PutValue(ctx, NavbarKey, doc); err != nil {
		return false, err
	}
	r.logger.Info("pages.navbar.added", "slug", slug, "text", title)
	return true, nil
}
