package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-sitecms/internal/media"
)

const imageField = "image"

func (api *API) registerImages(r chi.Router) {
	r.Get("/images", api.listImages)
	r.Get("/images/{id}", api.getImage)

	admin := api.admin(r)
	admin.Post("/images", api.createImage)
	admin.Put("/images/{id}", api.replaceImage)
	admin.Delete("/images/{id}", api.deleteImage)
}

func (api *API) listImages(w http.ResponseWriter, r *http.Request) {
	images, err := api.images.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if images == nil {
		images = []*media.Image{}
	}
	writeJSON(w, http.StatusOK, images)
}

func (api *API) getImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	img, err := api.images.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, img)
}

func (api *API) createImage(w http.ResponseWriter, r *http.Request) {
	file, closeFn, err := api.readUpload(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	defer closeFn()

	img, err := api.images.Create(r.Context(), file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

func (api *API) replaceImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	file, closeFn, err := api.readUpload(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	defer closeFn()

	img, err := api.images.Replace(r.Context(), id, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, img)
}

func (api *API) deleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := api.images.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

// readUpload pulls the "image" part out of a multipart form.
func (api *API) readUpload(w http.ResponseWriter, r *http.Request) (media.File, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, api.maxUploadBytes)
	if err := r.ParseMultipartForm(api.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return media.File{}, nil, badRequest("upload exceeds %d bytes", api.maxUploadBytes)
		}
		return media.File{}, nil, media.ErrFileRequired
	}
	part, header, err := r.FormFile(imageField)
	if err != nil {
		return media.File{}, nil, media.ErrFileRequired
	}
	closeFn := func() {
		_ = part.Close()
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}
	return media.File{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        part,
	}, closeFn, nil
}
