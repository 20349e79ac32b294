package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// Middleware guards admin routes with a bearer token check.
type Middleware struct {
	verifier TokenVerifier
	logger   interfaces.Logger
}

func NewMiddleware(verifier TokenVerifier, logger interfaces.Logger) *Middleware {
	return &Middleware{verifier: verifier, logger: logging.Ensure(logger)}
}

// Require rejects requests without a valid token and stores the Principal
// on the request context otherwise.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, open := m.verifier.(AllowAll); open {
			p, _ := m.verifier.Verify(r.Context(), "")
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
			return
		}

		token, ok := BearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeUnauthorized(w, ErrTokenMissing)
			return
		}
		p, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			m.logger.Warn("auth.verify_failed", "path", r.URL.Path, "error", err)
			if !errors.Is(err, ErrTokenInvalid) {
				err = ErrTokenInvalid
			}
			writeUnauthorized(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[7:])
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   "unauthorized",
		"message": err.Error(),
	})
}
