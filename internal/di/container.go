package di

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitecms/internal/auth"
	enquiriescmd "github.com/goliatone/go-sitecms/internal/commands/enquiries"
	pagescmd "github.com/goliatone/go-sitecms/internal/commands/pages"
	"github.com/goliatone/go-sitecms/internal/content"
	"github.com/goliatone/go-sitecms/internal/contentstore"
	"github.com/goliatone/go-sitecms/internal/enquiries"
	sitehttp "github.com/goliatone/go-sitecms/internal/http"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/internal/logging/gologger"
	"github.com/goliatone/go-sitecms/internal/media"
	"github.com/goliatone/go-sitecms/internal/navigation"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/internal/runtimeconfig"
	"github.com/goliatone/go-sitecms/internal/site"
	"github.com/goliatone/go-sitecms/internal/storage"
	"github.com/goliatone/go-sitecms/internal/validation"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// CommandRegistry receives every command handler built by the container.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandSubscription is released when the container closes.
type CommandSubscription interface {
	Unsubscribe()
}

// Commands groups the command handlers built by the container.
type Commands struct {
	Pages           *pagescmd.HandlerSet
	ExportEnquiries *enquiriescmd.ExportEnquiriesHandler
}

// Container wires module dependencies from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger

	bunDB         *bun.DB
	ownsDB        bool
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	blobs     interfaces.BlobStore
	gcsClient *gcs.Client
	verifier  auth.TokenVerifier
	registry  CommandRegistry

	store     contentstore.Service
	pages     *pages.Registry
	resolver  *content.Resolver
	renderer  *site.Renderer
	routes    *navigation.Routes
	enquiries enquiries.Service
	images    media.Service
	api       *sitehttp.API
	commands  Commands

	subscriptions []CommandSubscription
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBunDB supplies an open database; the container will not close it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default cache provider.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithBlobStore overrides the store selected by Config.Media.
func WithBlobStore(store interfaces.BlobStore) Option {
	return func(c *Container) {
		c.blobs = store
	}
}

// WithTokenVerifier overrides the verifier selected by Config.Auth.
func WithTokenVerifier(verifier auth.TokenVerifier) Option {
	return func(c *Container) {
		c.verifier = verifier
	}
}

// WithCommandRegistry registers every command handler with reg.
func WithCommandRegistry(reg CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// NewContainer validates cfg and builds every service it enables.
func NewContainer(ctx context.Context, cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	c := &Container{Config: cfg, cacheTTL: cacheTTL}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureStorage(ctx); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureContent()
	c.configureNavigation()
	c.configureEnquiries()
	if err := c.configureMedia(ctx); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.configureAuth(ctx); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.configureCommands(); err != nil {
		c.Close()
		return nil, err
	}
	c.configureAPI()

	c.logger.Info("container.ready",
		"storage", normalize(cfg.Storage.Provider),
		"media", c.mediaProvider(),
		"auth", normalize(cfg.Auth.Provider),
		"enquiries", c.enquiries != nil,
	)
	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider == nil && c.Config.Features.Logger && normalize(c.Config.Logging.Provider) == "gologger" {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
			Fields:    map[string]any{"site": c.Config.SiteName},
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	}
	c.logger = logging.ModuleLogger(c.loggerProvider, logging.RootModule)
	return nil
}

func (c *Container) configureStorage(ctx context.Context) error {
	if normalize(c.Config.Storage.Provider) != "bun" && c.bunDB == nil {
		return nil
	}
	if c.bunDB == nil {
		db, err := storage.Open(c.Config.Storage)
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
	}
	if !c.Config.Storage.AutoMigrate {
		return nil
	}
	models := []any{(*contentstore.DocumentRecord)(nil)}
	if c.Config.Features.Enquiries {
		models = append(models, (*enquiries.Enquiry)(nil))
	}
	if c.Config.Features.Media {
		models = append(models, (*media.Image)(nil))
	}
	if err := storage.EnsureSchema(ctx, c.bunDB, models...); err != nil {
		c.Close()
		return err
	}
	c.logger.Debug("storage.migrated", "tables", len(models))
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err != nil {
			c.logger.Warn("cache.init_failed", "error", err)
		} else {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureContent() {
	var repo contentstore.Repository = contentstore.NewMemoryRepository()
	if c.bunDB != nil {
		repo = contentstore.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	}
	c.store = contentstore.NewService(repo,
		contentstore.WithValidator(validation.NewDocumentValidator().Validate),
		contentstore.WithLogger(c.moduleLogger(logging.ContentModule)),
	)
	c.pages = pages.NewRegistry(c.store, pages.WithLogger(c.moduleLogger(logging.PagesModule)))

	resolverOpts := []content.ResolverOption{
		content.WithConcurrency(c.Config.Rendering.Concurrency),
		content.WithLogger(c.moduleLogger(logging.ContentModule)),
	}
	if c.Config.Rendering.RichText {
		resolverOpts = append(resolverOpts, content.WithRichText(content.NewRichText()))
	}
	c.resolver = content.NewResolver(c.store, resolverOpts...)
	c.renderer = site.NewRenderer(c.pages, c.resolver, c.moduleLogger(logging.PagesModule))
}

func (c *Container) configureNavigation() {
	routeCfg := c.Config.Navigation.RouteConfig
	if routeCfg == nil {
		routeCfg = navigation.DefaultRouteConfig(c.Config.Navigation.BaseURL)
	}
	c.routes = navigation.NewRoutes(routeCfg)
}

func (c *Container) configureEnquiries() {
	if !c.Config.Features.Enquiries {
		return
	}
	var repo enquiries.Repository = enquiries.NewMemoryRepository()
	if c.bunDB != nil {
		repo = enquiries.NewBunRepository(c.bunDB)
	}
	c.enquiries = enquiries.NewService(repo, enquiries.WithLogger(c.moduleLogger(logging.EnquiriesModule)))
}

func (c *Container) configureMedia(ctx context.Context) error {
	if !c.Config.Features.Media {
		return nil
	}
	if c.blobs == nil {
		switch c.mediaProvider() {
		case "gcs":
			client, err := gcs.NewClient(ctx)
			if err != nil {
				return fmt.Errorf("media: gcs client: %w", err)
			}
			store, err := media.NewGCSBlobStore(client, c.Config.Media.Bucket, c.Config.Media.PublicBaseURL)
			if err != nil {
				_ = client.Close()
				return err
			}
			c.gcsClient = client
			c.blobs = store
		default:
			c.blobs = media.NewMemoryBlobStore(c.Config.Media.PublicBaseURL)
		}
	}

	var repo media.Repository = media.NewMemoryRepository()
	if c.bunDB != nil {
		repo = media.NewBunRepository(c.bunDB)
	}
	c.images = media.NewService(repo, c.blobs,
		media.WithLogger(c.moduleLogger(logging.MediaModule)),
		media.WithFolder(c.Config.Media.Folder),
	)
	return nil
}

func (c *Container) configureAuth(ctx context.Context) error {
	if c.verifier != nil {
		return nil
	}
	switch normalize(c.Config.Auth.Provider) {
	case "firebase":
		verifier, err := auth.NewFirebaseVerifier(ctx,
			c.Config.Auth.ProjectID,
			c.Config.Auth.CredentialsFile,
			auth.WithFirebaseTimeout(c.Config.Auth.VerifyTimeout),
		)
		if err != nil {
			return err
		}
		c.verifier = verifier
	case "static":
		c.verifier = auth.NewStaticVerifier(c.Config.Auth.StaticTokens...)
	default:
		c.verifier = auth.AllowAll{}
	}
	if _, open := c.verifier.(auth.AllowAll); open {
		c.moduleLogger(logging.AuthModule).Warn("auth.allow_all",
			"provider", c.Config.Auth.Provider,
			"detail", "admin routes accept unauthenticated requests",
		)
	}
	return nil
}

func (c *Container) configureCommands() error {
	set, err := pagescmd.RegisterPageCommands(c.registry, c.pages, c.loggerProvider, nil)
	if err != nil {
		return err
	}
	c.commands.Pages = set
	if c.enquiries != nil {
		handler, err := enquiriescmd.RegisterEnquiryCommands(c.registry, c.enquiries, c.loggerProvider)
		if err != nil {
			return err
		}
		c.commands.ExportEnquiries = handler
	}
	return nil
}

func (c *Container) configureAPI() {
	httpCfg := c.Config.HTTP
	opts := []sitehttp.Option{
		sitehttp.WithBasePath(httpCfg.BasePath),
		sitehttp.WithContentStore(c.store),
		sitehttp.WithPages(c.pages),
		sitehttp.WithRenderer(c.renderer),
		sitehttp.WithRoutes(c.routes),
		sitehttp.WithAuth(auth.NewMiddleware(c.verifier, c.moduleLogger(logging.AuthModule))),
		sitehttp.WithLogger(c.moduleLogger(logging.HTTPModule)),
		sitehttp.WithMaxUploadBytes(httpCfg.MaxUploadBytes),
		sitehttp.WithEvents(c.Config.Features.Events),
	}
	if c.enquiries != nil {
		opts = append(opts, sitehttp.WithEnquiries(c.enquiries))
	}
	if c.images != nil {
		opts = append(opts, sitehttp.WithImages(c.images))
	}
	c.api = sitehttp.NewAPI(opts...)
}

// SubscribeCommands registers the command handlers with the go-command
// dispatcher. Subscriptions are released by Close.
func (c *Container) SubscribeCommands(maxRetries int) {
	opt := runner.WithMaxRetries(maxRetries)
	if set := c.commands.Pages; set != nil {
		c.subscriptions = append(c.subscriptions,
			dispatcher.SubscribeCommand(set.Create, opt),
			dispatcher.SubscribeCommand(set.Save, opt),
			dispatcher.SubscribeCommand(set.Remove, opt),
		)
	}
	if c.commands.ExportEnquiries != nil {
		c.subscriptions = append(c.subscriptions, dispatcher.SubscribeCommand(c.commands.ExportEnquiries, opt))
	}
	c.logger.Debug("commands.subscribed", "count", len(c.subscriptions))
}

// Close releases subscriptions and any clients the container opened.
func (c *Container) Close() error {
	for _, sub := range c.subscriptions {
		sub.Unsubscribe()
	}
	c.subscriptions = nil

	var errs []error
	if c.gcsClient != nil {
		errs = append(errs, c.gcsClient.Close())
		c.gcsClient = nil
	}
	if c.ownsDB && c.bunDB != nil {
		errs = append(errs, c.bunDB.Close())
		c.bunDB = nil
	}
	return errors.Join(errs...)
}

// Logger returns a logger scoped to module.
func (c *Container) Logger(module string) interfaces.Logger {
	return c.moduleLogger(module)
}

func (c *Container) moduleLogger(module string) interfaces.Logger {
	return logging.ModuleLogger(c.loggerProvider, module)
}

func (c *Container) mediaProvider() string {
	return normalize(c.Config.Media.Provider)
}

func (c *Container) BunDB() *bun.DB { return c.bunDB }

func (c *Container) ContentStore() contentstore.Service { return c.store }

func (c *Container) Pages() *pages.Registry { return c.pages }

func (c *Container) Resolver() *content.Resolver { return c.resolver }

func (c *Container) Renderer() *site.Renderer { return c.renderer }

func (c *Container) Routes() *navigation.Routes { return c.routes }

// Enquiries returns nil when the feature is disabled.
func (c *Container) Enquiries() enquiries.Service { return c.enquiries }

// Images returns nil when the feature is disabled.
func (c *Container) Images() media.Service { return c.images }

func (c *Container) Verifier() auth.TokenVerifier { return c.verifier }

func (c *Container) API() *sitehttp.API { return c.api }

func (c *Container) Commands() Commands { return c.commands }

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
