package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-sitecms/internal/enquiries"
)

type updateEnquiryRequest struct {
	Checked *bool `json:"checked"`
}

func (api *API) registerEnquiries(r chi.Router) {
	r.Post("/enquiries", api.createEnquiry)

	admin := api.admin(r)
	admin.Get("/enquiries", api.listEnquiries)
	admin.Get("/enquiries/export", api.exportEnquiries)
	admin.Put("/enquiries/{id}", api.updateEnquiry)
	admin.Delete("/enquiries/{id}", api.deleteEnquiry)
}

func (api *API) createEnquiry(w http.ResponseWriter, r *http.Request) {
	var input enquiries.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	rec, err := api.enquiries.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (api *API) listEnquiries(w http.ResponseWriter, r *http.Request) {
	filter, err := enquiryFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}
	records, err := api.enquiries.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []*enquiries.Enquiry{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *API) exportEnquiries(w http.ResponseWriter, r *http.Request) {
	filter, err := enquiryFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="enquiries.csv"`)
	if _, err := api.enquiries.ExportCSV(r.Context(), w, filter); err != nil {
		api.logger.Error("http.enquiries.export_failed", "error", err)
	}
}

func (api *API) updateEnquiry(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateEnquiryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Checked == nil {
		writeError(w, badRequest("checked is required"))
		return
	}
	rec, err := api.enquiries.SetChecked(r.Context(), id, *req.Checked)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (api *API) deleteEnquiry(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := api.enquiries.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func enquiryFilter(r *http.Request) (enquiries.Filter, error) {
	q := r.URL.Query()
	filter := enquiries.Filter{Name: q.Get("name"), Email: q.Get("email")}
	var err error
	if filter.Checked, err = parseBoolQuery(q.Get("checked")); err != nil {
		return filter, err
	}
	if filter.From, err = parseTimeQuery(q.Get("from")); err != nil {
		return filter, err
	}
	if filter.To, err = parseTimeQuery(q.Get("to")); err != nil {
		return filter, err
	}
	return filter, nil
}
