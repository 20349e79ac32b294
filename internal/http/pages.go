package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-sitecms/internal/navigation"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/internal/sections"
)

type createPageRequest struct {
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Sections    sections.EntryList `json:"sections"`
	AddToNavbar bool               `json:"addToNavbar"`
}

type navbarRequest struct {
	Title string `json:"title"`
}

type pageResponse struct {
	Entry    *pages.Entry                `json:"entry,omitempty"`
	Page     sections.PageDefinition     `json:"page"`
	Sections []sections.CanonicalSection `json:"sections"`
}

type intentResponse struct {
	navigation.Intent
	URL string `json:"url,omitempty"`
}

func (api *API) registerPages(r chi.Router) {
	r.Get("/pages", api.listPages)
	r.Get("/pages/{slug}", api.getPage)
	r.Get("/links", api.suggestLinks)

	admin := api.admin(r)
	admin.Post("/pages", api.createPage)
	admin.Put("/pages/{slug}", api.savePage)
	admin.Delete("/pages/{slug}", api.removePage)
	admin.Post("/pages/{slug}/navbar", api.addToNavbar)
}

func (api *API) listPages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.pages.ListPages(r.Context()))
}

func (api *API) getPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	resp := pageResponse{
		Page:     api.pages.ResolvePage(r.Context(), slug),
		Sections: api.pages.Sections(r.Context(), slug),
	}
	if entry, ok := api.pages.LookupPage(r.Context(), slug); ok {
		resp.Entry = &entry
	}
	writeJSON(w, http.StatusOK, resp)
}

func (api *API) createPage(w http.ResponseWriter, r *http.Request) {
	var req createPageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	entry, err := api.pages.CreatePage(r.Context(), pages.CreateRequest{
		Name:        req.Name,
		Slug:        req.Slug,
		Title:       req.Title,
		Sections:    req.Sections,
		AddToNavbar: req.AddToNavbar,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (api *API) savePage(w http.ResponseWriter, r *http.Request) {
	var def sections.PageDefinition
	if err := decodeJSON(r, &def); err != nil {
		writeError(w, err)
		return
	}
	saved, err := api.pages.SavePage(r.Context(), chi.URLParam(r, "slug"), def)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (api *API) removePage(w http.ResponseWriter, r *http.Request) {
	if err := api.pages.RemovePage(r.Context(), chi.URLParam(r, "slug")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (api *API) addToNavbar(w http.ResponseWriter, r *http.Request) {
	var req navbarRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	slug := chi.URLParam(r, "slug")
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = slug
	}
	added, err := api.pages.AddToNavbar(r.Context(), slug, title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"added": added})
}

func (api *API) suggestLinks(w http.ResponseWriter, r *http.Request) {
	links := api.pages.SuggestLinks(r.Context(), r.URL.Query().Get("q"))
	if links == nil {
		links = []string{}
	}
	writeJSON(w, http.StatusOK, links)
}

func (api *API) renderPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "*")
	writeJSON(w, http.StatusOK, api.renderer.RenderPage(r.Context(), slug))
}

// resolveNavigation resolves one of: link/text (menu item), base/target
// (submenu entry), hash with optional slug, or path.
func (api *API) resolveNavigation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var intent navigation.Intent
	switch {
	case q.Has("target"):
		intent = navigation.ResolveSubmenu(q.Get("base"), q.Get("target"))
	case q.Has("link") || q.Has("text"):
		intent = navigation.ResolveMenuItem(navigation.MenuItem{Text: q.Get("text"), Link: q.Get("link")})
	case q.Has("hash"):
		intent = navigation.ResolveHash(q.Get("slug"), q.Get("hash"))
	case q.Has("path"):
		intent = navigation.ResolveRoute(navigation.NormalizePath(q.Get("path")))
	default:
		writeError(w, badRequest("one of link, text, target, hash or path is required"))
		return
	}

	resp := intentResponse{Intent: intent}
	if api.routes != nil {
		url, err := api.routes.URL(intent)
		if err != nil {
			api.logger.Warn("http.navigation.url_failed", "path", intent.Path, "error", err)
		} else {
			resp.URL = url
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
