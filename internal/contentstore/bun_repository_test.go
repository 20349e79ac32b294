package contentstore_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/goliatone/go-sitecms/internal/contentstore"
	"github.com/goliatone/go-sitecms/internal/identity"
	"github.com/goliatone/go-sitecms/pkg/testsupport"
)

func TestBunRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := testsupport.NewBunDB(t, (*contentstore.DocumentRecord)(nil))
	repo := contentstore.NewBunRepository(db)

	doc, created, err := repo.Put(ctx, "page-home", json.RawMessage(`{"title":"Home","sections":["hero"]}`))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if !created {
		t.Fatal("expected first put to create")
	}
	if doc.ID != identity.DocumentUUID("page-home") {
		t.Fatalf("expected deterministic id, got %s", doc.ID)
	}

	_, created, err = repo.Put(ctx, "page-home", json.RawMessage(`{"title":"Home 2","sections":[]}`))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if created {
		t.Fatal("expected second put to update")
	}

	got, err := repo.Get(ctx, "page-home")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var value struct{ Title string }
	if err := got.Decode(&value); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if value.Title != "Home 2" {
		t.Fatalf("expected updated title, got %q", value.Title)
	}

	if _, _, err := repo.Put(ctx, "about", json.RawMessage(`[{"title":"AI"}]`)); err != nil {
		t.Fatalf("put about: %v", err)
	}
	docs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 || docs[0].Key != "about" || docs[1].Key != "page-home" {
		t.Fatalf("expected docs ordered by key, got %d", len(docs))
	}

	if err := repo.Delete(ctx, "about"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "about"); !contentstore.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
