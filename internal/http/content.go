package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-sitecms/internal/contentstore"
)

type putContentRequest struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func (api *API) registerContent(r chi.Router) {
	r.Get("/content", api.listContent)
	r.Get("/content/{key}", api.getContent)
	api.admin(r).Put("/content", api.putContent)
	api.admin(r).Delete("/content/{key}", api.deleteContent)
}

func (api *API) listContent(w http.ResponseWriter, r *http.Request) {
	docs, err := api.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if docs == nil {
		docs = []*contentstore.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// getContent answers null for a missing key so clients can fall back.
func (api *API) getContent(w http.ResponseWriter, r *http.Request) {
	doc, err := api.store.Get(r.Context(), chi.URLParam(r, "key"))
	if contentstore.IsNotFound(err) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (api *API) putContent(w http.ResponseWriter, r *http.Request) {
	var req putContentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		writeError(w, contentstore.ErrKeyRequired)
		return
	}
	doc, err := api.store.Put(r.Context(), req.Key, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (api *API) deleteContent(w http.ResponseWriter, r *http.Request) {
	if err := api.store.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
