package pages

import (
	"context"
	"strings"

	"github.com/goliatone/go-sitecms/internal/sections"
)

// SuggestLinks completes an internal link typed in an editor. Input that
// does not start with "/" yields nothing. "/" and "/pre" list page paths by
// slug prefix; "/page/" and "/page/sec" list anchor paths of that page.
// Prefix matching ignores case.
func (r *Registry) SuggestLinks(ctx context.Context, input string) []string {
	if !strings.HasPrefix(input, "/") {
		return nil
	}
	trailing := strings.HasSuffix(input, "/")
	parts := splitPath(input)

	if len(parts) == 0 || (len(parts) == 1 && !trailing) {
		prefix := ""
		if len(parts) == 1 {
			prefix = strings.ToLower(parts[0])
		}
		var out []string
		for _, entry := range r.ListPages(ctx) {
			if strings.HasPrefix(strings.ToLower(entry.Slug), prefix) {
				out = append(out, "/"+entry.Slug)
			}
		}
		return out
	}

	page := parts[0]
	prefix := ""
	if len(parts) > 1 {
		prefix = strings.ToLower(parts[1])
	}
	var out []string
	for _, anchor := range sections.AnchorIDs(r.Sections(ctx, page)) {
		if strings.HasPrefix(strings.ToLower(anchor), prefix) {
			out = append(out, "/"+page+"/"+anchor)
		}
	}
	return out
}

func splitPath(p string) []string {
	var out []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
