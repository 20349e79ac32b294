package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sitecms/internal/auth"
	"github.com/goliatone/go-sitecms/internal/content"
	"github.com/goliatone/go-sitecms/internal/contentstore"
	"github.com/goliatone/go-sitecms/internal/enquiries"
	sitehttp "github.com/goliatone/go-sitecms/internal/http"
	"github.com/goliatone/go-sitecms/internal/media"
	"github.com/goliatone/go-sitecms/internal/navigation"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/internal/site"
	"github.com/goliatone/go-sitecms/internal/validation"
)

const adminToken = "secret"

type fixture struct {
	handler http.Handler
	store   contentstore.Service
	blobs   *media.MemoryBlobStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := contentstore.NewService(contentstore.NewMemoryRepository(),
		contentstore.WithValidator(validation.NewDocumentValidator().Validate),
	)
	registry := pages.NewRegistry(store)
	renderer := site.NewRenderer(registry, content.NewResolver(store), nil)
	blobs := media.NewMemoryBlobStore("https://cdn.example.com")

	api := sitehttp.NewAPI(
		sitehttp.WithContentStore(store),
		sitehttp.WithPages(registry),
		sitehttp.WithRenderer(renderer),
		sitehttp.WithRoutes(navigation.NewRoutes(navigation.DefaultRouteConfig("https://example.com"))),
		sitehttp.WithEnquiries(enquiries.NewService(enquiries.NewMemoryRepository(),
			enquiries.WithClock(func() time.Time { return time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC) }),
		)),
		sitehttp.WithImages(media.NewService(media.NewMemoryRepository(), blobs)),
		sitehttp.WithAuth(auth.NewMiddleware(auth.NewStaticVerifier(adminToken), nil)),
	)
	return fixture{handler: api.Handler(), store: store, blobs: blobs}
}

func (f fixture) do(t *testing.T, method, path, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+adminToken)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestContentRoutes(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/content/hero", "", false)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected null for missing key, got %d %q", rec.Code, rec.Body.String())
	}

	if rec := f.do(t, http.MethodPut, "/api/content", `{"key":"hero","value":{"title":"Hi"}}`, false); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized write, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPut, "/api/content", `{"key":"hero","value":{"title":"Hi"}}`, true); rec.Code != http.StatusOK {
		t.Fatalf("expected write ok, got %d %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodGet, "/api/content/hero", "", false)
	doc := decode[contentstore.Document](t, rec)
	if doc.Key != "hero" || string(doc.Value) != `{"title":"Hi"}` {
		t.Fatalf("unexpected document %+v", doc)
	}

	rec = f.do(t, http.MethodPut, "/api/content", `{"key":"page-promo","value":{"sections":[{"overrides":{}}]}}`, true)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected schema rejection, got %d %s", rec.Code, rec.Body.String())
	}
	if resp := decode[map[string]any](t, rec); resp["error"] != "validation_failed" || resp["issues"] == nil {
		t.Fatalf("expected validation payload, got %v", resp)
	}

	if rec := f.do(t, http.MethodDelete, "/api/content/hero", "", true); rec.Code != http.StatusNoContent {
		t.Fatalf("expected delete, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodDelete, "/api/content/hero", "", true); rec.Code != http.StatusNotFound {
		t.Fatalf("expected not found, got %d", rec.Code)
	}
}

func TestPageRoutes(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/pages", `{"name":"Case Studies","sections":["hero","hero"],"addToNavbar":true}`, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	if entry := decode[pages.Entry](t, rec); entry.Slug != "case-studies" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	if rec := f.do(t, http.MethodPost, "/api/pages", `{"name":"About"}`, true); rec.Code != http.StatusConflict {
		t.Fatalf("expected conflict, got %d", rec.Code)
	}

	list := decode[[]pages.Entry](t, f.do(t, http.MethodGet, "/api/pages", "", false))
	var slugs []string
	for _, e := range list {
		slugs = append(slugs, e.Slug)
	}
	if diff := cmp.Diff([]string{"home", "about", "case-studies"}, slugs); diff != "" {
		t.Fatalf("unexpected pages (-want +got):\n%s", diff)
	}

	links := decode[[]string](t, f.do(t, http.MethodGet, "/api/links?q=/case-studies/he", "", false))
	if diff := cmp.Diff([]string{"/case-studies/hero1", "/case-studies/hero2"}, links); diff != "" {
		t.Fatalf("unexpected links (-want +got):\n%s", diff)
	}

	if rec := f.do(t, http.MethodPut, "/api/pages/case-studies", `{"title":"Cases","sections":["carousel"]}`, true); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected unknown section rejected, got %d %s", rec.Code, rec.Body.String())
	}
	if rec := f.do(t, http.MethodDelete, "/api/pages/home", "", true); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected built-in removal rejected, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodDelete, "/api/pages/case-studies", "", true); rec.Code != http.StatusNoContent {
		t.Fatalf("expected removal, got %d", rec.Code)
	}
}

func TestRenderAndNavigationRoutes(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	page := decode[site.RenderedPage](t, f.do(t, http.MethodGet, "/api/render", "", false))
	if page.Slug != "home" || len(page.Sections) != 5 {
		t.Fatalf("unexpected home render %+v", page)
	}
	about := decode[site.RenderedPage](t, f.do(t, http.MethodGet, "/api/render/about", "", false))
	if about.Slug != "about" || len(about.Sections) != 4 {
		t.Fatalf("unexpected about render: %s %d", about.Slug, len(about.Sections))
	}

	cases := []struct {
		query string
		path  string
		url   string
	}{
		{query: "text=Careers&link=careers", path: "/home/imageGrid", url: "https://example.com/home/imageGrid"},
		{query: "hash=%23careers&slug=home", path: "/home/imageGrid", url: "https://example.com/home/imageGrid"},
		{query: "path=/about", path: "/about", url: "https://example.com/about"},
		{query: "base=/&target=contact", path: "/home/contact", url: "https://example.com/home/contact"},
	}
	for _, tc := range cases {
		rec := f.do(t, http.MethodGet, "/api/navigation/resolve?"+tc.query, "", false)
		got := decode[map[string]any](t, rec)
		if got["path"] != tc.path || got["url"] != tc.url {
			t.Fatalf("%s: unexpected intent %v", tc.query, got)
		}
	}

	if rec := f.do(t, http.MethodGet, "/api/navigation/resolve", "", false); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected bad request without params, got %d", rec.Code)
	}
}

func TestEnquiryRoutes(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	if rec := f.do(t, http.MethodPost, "/api/enquiries", `{"name":"Ada","email":"nope"}`, false); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected validation failure, got %d", rec.Code)
	}
	rec := f.do(t, http.MethodPost, "/api/enquiries", `{"name":"Ada","email":"ada@example.com","message":"Hi, there"}`, false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	created := decode[enquiries.Enquiry](t, rec)

	if rec := f.do(t, http.MethodGet, "/api/enquiries", "", false); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected list to require auth, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPut, "/api/enquiries/"+created.ID.String(), `{"checked":true}`, true); rec.Code != http.StatusOK {
		t.Fatalf("update: %d %s", rec.Code, rec.Body.String())
	}
	list := decode[[]enquiries.Enquiry](t, f.do(t, http.MethodGet, "/api/enquiries?checked=true&name=ad", "", true))
	if len(list) != 1 || !list[0].Checked {
		t.Fatalf("unexpected filtered list %+v", list)
	}

	rec = f.do(t, http.MethodGet, "/api/enquiries/export", "", true)
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="enquiries.csv"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
	want := "Date/Time,Name,Mobile,Email,Message\n01/02/2024 10:30,Ada,,ada@example.com,\"Hi, there\"\n"
	if diff := cmp.Diff(want, rec.Body.String()); diff != "" {
		t.Fatalf("unexpected csv (-want +got):\n%s", diff)
	}

	if rec := f.do(t, http.MethodDelete, "/api/enquiries/not-a-uuid", "", true); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected bad id, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodDelete, "/api/enquiries/"+created.ID.String(), "", true); rec.Code != http.StatusOK {
		t.Fatalf("delete: %d", rec.Code)
	}
}

func multipartBody(t *testing.T, filename, contentType, payload string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write([]byte(payload))
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestImageRoutes(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	body, ct := multipartBody(t, "hero.png", "image/png", "png-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/images", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload: %d %s", rec.Code, rec.Body.String())
	}
	img := decode[media.Image](t, rec)
	if !strings.HasPrefix(img.ImagePublicID, "suffix_uploads/") || !f.blobs.Has(img.ImagePublicID) {
		t.Fatalf("unexpected image %+v", img)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/images", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected missing file rejected, got %d", rec.Code)
	}

	if rec := f.do(t, http.MethodDelete, "/api/images/"+img.ID.String(), "", true); rec.Code != http.StatusOK {
		t.Fatalf("delete: %d", rec.Code)
	}
	if f.blobs.Has(img.ImagePublicID) {
		t.Fatal("expected blob removed")
	}
}

func TestEventStream(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	srv := httptest.NewServer(f.handler)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/api/events", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	// The subscription is registered after the handshake; retry the write
	// until an event arrives.
	received := make(chan contentstore.ChangeEvent, 1)
	go func() {
		var evt contentstore.ChangeEvent
		if err := wsjson.Read(ctx, conn, &evt); err == nil {
			received <- evt
		}
	}()

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		if _, err := f.store.Put(ctx, "footer", json.RawMessage(`{"products":[]}`)); err != nil {
			t.Fatalf("put: %v", err)
		}
		select {
		case evt := <-received:
			if evt.Key != "footer" {
				t.Fatalf("unexpected event %+v", evt)
			}
			return
		case <-ticker.C:
		case <-ctx.Done():
			t.Fatal("timed out waiting for change event")
		}
	}
}
