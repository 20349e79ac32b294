package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-sitecms/internal/contentstore"
	"github.com/goliatone/go-sitecms/internal/enquiries"
	"github.com/goliatone/go-sitecms/internal/media"
	"github.com/goliatone/go-sitecms/internal/pages"
	sitevalidation "github.com/goliatone/go-sitecms/internal/validation"
	"github.com/google/uuid"
)

type errorResponse struct {
	Error   string                           `json:"error"`
	Message string                           `json:"message,omitempty"`
	Issues  []sitevalidation.ValidationIssue `json:"issues,omitempty"`
}

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errBadRequest}, args...)...)
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.Trim(strings.TrimSpace(base), "/")
	trimmedSuffix := strings.Trim(strings.TrimSpace(suffix), "/")
	switch {
	case trimmedBase == "" && trimmedSuffix == "":
		return "/"
	case trimmedBase == "":
		return "/" + trimmedSuffix
	case trimmedSuffix == "":
		return "/" + trimmedBase
	}
	return "/" + trimmedBase + "/" + trimmedSuffix
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return badRequest("request body required")
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return badRequest("request body required")
		}
		return badRequest("invalid json: %v", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	if contentstore.IsNotFound(err) || enquiries.IsNotFound(err) || media.IsNotFound(err) ||
		errors.Is(err, pages.ErrPageNotRegistered) {
		return http.StatusNotFound, errorResponse{Error: "not_found", Message: err.Error()}
	}

	if pages.IsSlugConflict(err) {
		return http.StatusConflict, errorResponse{Error: "conflict", Message: err.Error()}
	}

	if errors.Is(err, sitevalidation.ErrSchemaInvalid) || errors.Is(err, sitevalidation.ErrSchemaValidation) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
			Issues:  sitevalidation.Issues(err),
		}
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
			Issues:  fieldIssues(fieldErrs),
		}
	}

	if errors.Is(err, errBadRequest) ||
		errors.Is(err, contentstore.ErrKeyRequired) ||
		errors.Is(err, contentstore.ErrInvalidValue) ||
		errors.Is(err, pages.ErrSlugRequired) ||
		errors.Is(err, pages.ErrNameRequired) ||
		errors.Is(err, pages.ErrBuiltinPage) ||
		errors.Is(err, pages.ErrUnknownSection) ||
		errors.Is(err, enquiries.ErrEnquiryIDRequired) ||
		errors.Is(err, media.ErrFileRequired) ||
		errors.Is(err, media.ErrImageIDRequired) ||
		errors.Is(err, media.ErrUnsupportedType) {
		return http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()}
	}

	return http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error()}
}

func fieldIssues(errs validation.Errors) []sitevalidation.ValidationIssue {
	out := make([]sitevalidation.ValidationIssue, 0, len(errs))
	for field, err := range errs {
		out = append(out, sitevalidation.ValidationIssue{Location: field, Message: err.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}

func parseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, badRequest("id required")
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, badRequest("invalid id %q", trimmed)
	}
	return parsed, nil
}

// parseBoolQuery returns nil for an absent value.
func parseBoolQuery(value string) (*bool, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return nil, badRequest("invalid boolean %q", trimmed)
	}
	return &parsed, nil
}

// parseTimeQuery accepts RFC 3339 timestamps or plain dates.
func parseTimeQuery(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return &t, nil
		}
	}
	return nil, badRequest("invalid time %q", trimmed)
}
