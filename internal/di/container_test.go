package di_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-sitecms/internal/auth"
	pagescmd "github.com/goliatone/go-sitecms/internal/commands/pages"
	"github.com/goliatone/go-sitecms/internal/di"
	"github.com/goliatone/go-sitecms/internal/enquiries"
	"github.com/goliatone/go-sitecms/internal/runtimeconfig"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

func newContainer(t *testing.T, cfg runtimeconfig.Config, opts ...di.Option) *di.Container {
	t.Helper()
	container, err := di.NewContainer(context.Background(), cfg, opts...)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	t.Cleanup(func() { _ = container.Close() })
	return container
}

func TestContainerDefaultsToMemoryServices(t *testing.T) {
	t.Parallel()
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = false

	container := newContainer(t, cfg)
	if container.BunDB() != nil {
		t.Fatal("expected no database for the memory provider")
	}
	if container.Enquiries() == nil || container.Images() == nil {
		t.Fatal("expected enquiries and media services")
	}
	if _, ok := container.Verifier().(auth.AllowAll); !ok {
		t.Fatalf("expected AllowAll verifier, got %T", container.Verifier())
	}

	ctx := context.Background()
	if err := container.Commands().Pages.Create.Execute(ctx, pagescmd.CreatePageCommand{Name: "Careers", Sections: []string{"imageGrid"}}); err != nil {
		t.Fatalf("create page: %v", err)
	}
	if _, ok := container.Pages().LookupPage(ctx, "careers"); !ok {
		t.Fatal("expected careers page to be registered")
	}

	page := container.Renderer().RenderPage(ctx, "careers")
	if got := page.AnchorIDs(); len(got) != 1 || got[0] != "imageGrid" {
		t.Fatalf("unexpected anchors %v", got)
	}

	srv := httptest.NewServer(container.API().Handler())
	t.Cleanup(srv.Close)
	resp, err := http.Get(srv.URL + "/api/render/careers")
	if err != nil {
		t.Fatalf("get render: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestContainerHonoursFeatureToggles(t *testing.T) {
	t.Parallel()
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features = runtimeconfig.Features{}

	container := newContainer(t, cfg)
	if container.Enquiries() != nil || container.Images() != nil {
		t.Fatal("expected optional services to be disabled")
	}
	if container.Commands().ExportEnquiries != nil {
		t.Fatal("expected no export handler without enquiries")
	}

	srv := httptest.NewServer(container.API().Handler())
	t.Cleanup(srv.Close)
	resp, err := http.Post(srv.URL+"/api/enquiries", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound && resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected enquiry routes to be unmounted, got %d", resp.StatusCode)
	}
}

func TestContainerBunStorage(t *testing.T) {
	t.Parallel()
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = false
	cfg.Storage = runtimeconfig.StorageConfig{
		Provider:    "bun",
		Driver:      "sqlite",
		DSN:         "file:di_container_bun?mode=memory&cache=shared",
		AutoMigrate: true,
	}
	cfg.Cache.Enabled = true

	container := newContainer(t, cfg)
	if container.BunDB() == nil {
		t.Fatal("expected a database")
	}

	ctx := context.Background()
	if _, err := container.ContentStore().PutValue(ctx, "hero", map[string]any{"title": "Stored"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	doc, err := container.ContentStore().Get(ctx, "hero")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(string(doc.Value), "Stored") {
		t.Fatalf("unexpected value %s", doc.Value)
	}

	if _, err := container.Enquiries().Create(ctx, enquiries.CreateInput{Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("create enquiry: %v", err)
	}
	var out strings.Builder
	if n, err := container.Enquiries().ExportCSV(ctx, &out, enquiries.Filter{}); err != nil || n != 1 {
		t.Fatalf("export: n=%d err=%v", n, err)
	}
}

func TestContainerStaticAuthGuardsAdminRoutes(t *testing.T) {
	t.Parallel()
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = false
	cfg.Auth.Provider = "static"
	cfg.Auth.StaticTokens = []string{"admin-token"}

	container := newContainer(t, cfg)
	handler := container.API().Handler()

	for _, tc := range []struct {
		token string
		want  int
	}{
		{token: "", want: http.StatusUnauthorized},
		{token: "wrong", want: http.StatusUnauthorized},
		{token: "admin-token", want: http.StatusOK},
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/enquiries", nil)
		if tc.token != "" {
			req.Header.Set("Authorization", "Bearer "+tc.token)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("token %q: expected %d, got %d", tc.token, tc.want, rec.Code)
		}
	}
}

func TestContainerRejectsInvalidConfig(t *testing.T) {
	t.Parallel()
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "mongo"

	_, err := di.NewContainer(context.Background(), cfg)
	if !errors.Is(err, runtimeconfig.ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
}

func TestContainerRegistersCommandsAndLogs(t *testing.T) {
	t.Parallel()
	cfg := runtimeconfig.DefaultConfig()
	reg := &recordingRegistry{}
	logs := newRecordingProvider()

	newContainer(t, cfg, di.WithCommandRegistry(reg), di.WithLoggerProvider(logs))

	if len(reg.handlers) != 4 {
		t.Fatalf("expected 4 registered handlers, got %d", len(reg.handlers))
	}
	if _, ok := reg.handlers[0].(*pagescmd.CreatePageHandler); !ok {
		t.Fatalf("expected create handler first, got %T", reg.handlers[0])
	}
	entry := logs.find("container.ready")
	if entry == nil {
		t.Fatalf("expected container.ready log entry, got %#v", logs.entries)
	}
	if entry.logger != "sitecms" {
		t.Fatalf("expected root logger, got %q", entry.logger)
	}
}

type recordingRegistry struct {
	handlers []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return nil
}

type recordingProvider struct {
	mu      sync.Mutex
	entries []recordedEntry
}

type recordedEntry struct {
	logger string
	level  string
	msg    string
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{}
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	return &recordingLogger{provider: p, name: name}
}

func (p *recordingProvider) find(msg string) *recordedEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.entries {
		if p.entries[i].msg == msg {
			return &p.entries[i]
		}
	}
	return nil
}

type recordingLogger struct {
	provider *recordingProvider
	name     string
}

var _ interfaces.Logger = (*recordingLogger)(nil)

func (l *recordingLogger) Trace(msg string, args ...any) { l.log("TRACE", msg) }
func (l *recordingLogger) Debug(msg string, args ...any) { l.log("DEBUG", msg) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.log("INFO", msg) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.log("WARN", msg) }
func (l *recordingLogger) Error(msg string, args ...any) { l.log("ERROR", msg) }
func (l *recordingLogger) Fatal(msg string, args ...any) { l.log("FATAL", msg) }

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *recordingLogger) log(level, msg string) {
	l.provider.mu.Lock()
	defer l.provider.mu.Unlock()
	l.provider.entries = append(l.provider.entries, recordedEntry{logger: l.name, level: level, msg: msg})
}

func TestContainerWarnsWhenAdminRoutesAreOpen(t *testing.T) {
	t.Parallel()

	cfg := runtimeconfig.DefaultConfig()
	logs := newRecordingProvider()
	newContainer(t, cfg, di.WithLoggerProvider(logs))

	entry := logs.find("auth.allow_all")
	if entry == nil {
		t.Fatalf("expected auth.allow_all warning, got %#v", logs.entries)
	}
	if entry.level != "WARN" || entry.logger != "sitecms.auth" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	cfg.Auth.Provider = "static"
	cfg.Auth.StaticTokens = []string{"admin-token"}
	guarded := newRecordingProvider()
	newContainer(t, cfg, di.WithLoggerProvider(guarded))
	if guarded.find("auth.allow_all") != nil {
		t.Fatal("static auth must not warn about open admin routes")
	}
}
