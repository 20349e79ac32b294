package identity_test

import (
	"testing"

	"github.com/goliatone/go-sitecms/internal/identity"
	"github.com/google/uuid"
)

func TestDocumentUUIDIsStable(t *testing.T) {
	a := identity.DocumentUUID("page-home")
	b := identity.DocumentUUID(" page-home ")
	if a == uuid.Nil || a != b {
		t.Fatalf("expected stable non-nil uuid, got %s and %s", a, b)
	}
	if identity.DocumentUUID("page-about") == a {
		t.Fatal("expected different keys to produce different ids")
	}
}

func TestDocumentUUIDKeepsCase(t *testing.T) {
	if identity.DocumentUUID("imageGrid") == identity.DocumentUUID("imagegrid") {
		t.Fatal("expected case sensitive document ids")
	}
}

func TestUUIDBlankKey(t *testing.T) {
	if got := identity.UUID("  "); got != uuid.Nil {
		t.Fatalf("expected nil uuid, got %s", got)
	}
}
