package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-sitecms/internal/auth"
	"github.com/goliatone/go-sitecms/internal/contentstore"
	"github.com/goliatone/go-sitecms/internal/enquiries"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/internal/media"
	"github.com/goliatone/go-sitecms/internal/navigation"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/internal/site"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

const defaultMaxUploadBytes = 10 << 20

// API registers the site endpoints on a chi router.
type API struct {
	basePath       string
	store          contentstore.Service
	pages          *pages.Registry
	renderer       *site.Renderer
	routes         *navigation.Routes
	enquiries      enquiries.Service
	images         media.Service
	auth           *auth.Middleware
	logger         interfaces.Logger
	maxUploadBytes int64
	events         bool
}

// Option mutates the API configuration.
type Option func(*API)

// NewAPI constructs an API. Services left unset disable their routes.
func NewAPI(opts ...Option) *API {
	api := &API{
		basePath:       "/api",
		logger:         logging.NoOp(),
		maxUploadBytes: defaultMaxUploadBytes,
		events:         true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	if api.auth == nil {
		api.logger.Warn("auth.allow_all", "detail", "no auth middleware configured")
		api.auth = auth.NewMiddleware(auth.AllowAll{}, api.logger)
	}
	return api
}

// WithBasePath overrides the mount path (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *API) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

func WithContentStore(store contentstore.Service) Option {
	return func(api *API) { api.store = store }
}

func WithPages(registry *pages.Registry) Option {
	return func(api *API) { api.pages = registry }
}

func WithRenderer(renderer *site.Renderer) Option {
	return func(api *API) { api.renderer = renderer }
}

// WithRoutes enables absolute URLs in navigation responses.
func WithRoutes(routes *navigation.Routes) Option {
	return func(api *API) { api.routes = routes }
}

func WithEnquiries(service enquiries.Service) Option {
	return func(api *API) { api.enquiries = service }
}

func WithImages(service media.Service) Option {
	return func(api *API) { api.images = service }
}

// WithAuth guards admin routes with verifier.
func WithAuth(mw *auth.Middleware) Option {
	return func(api *API) { api.auth = mw }
}

func WithLogger(logger interfaces.Logger) Option {
	return func(api *API) { api.logger = logging.Ensure(logger) }
}

func WithMaxUploadBytes(n int64) Option {
	return func(api *API) {
		if n > 0 {
			api.maxUploadBytes = n
		}
	}
}

// WithEvents toggles the websocket change stream.
func WithEvents(enabled bool) Option {
	return func(api *API) { api.events = enabled }
}

// Handler returns a router with the standard middleware stack.
func (api *API) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)
	router.Use(api.requestLogger)
	api.Register(router)
	return router
}

// Register mounts every enabled route group under the base path.
func (api *API) Register(router chi.Router) {
	router.Route(joinPath(api.basePath, ""), func(r chi.Router) {
		if api.store != nil {
			api.registerContent(r)
			if api.events {
				r.Get("/events", api.streamEvents)
			}
		}
		if api.pages != nil {
			api.registerPages(r)
		}
		if api.renderer != nil {
			r.Get("/render", api.renderPage)
			r.Get("/render/*", api.renderPage)
		}
		r.Get("/navigation/resolve", api.resolveNavigation)
		if api.enquiries != nil {
			api.registerEnquiries(r)
		}
		if api.images != nil {
			api.registerImages(r)
		}
	})
}

func (api *API) admin(r chi.Router) chi.Router {
	return r.With(api.auth.Require, chimw.NoCache)
}

func (api *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		api.logger.Debug("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(started).Milliseconds(),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
