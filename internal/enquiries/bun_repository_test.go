package enquiries_test

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-sitecms/internal/enquiries"
	"github.com/goliatone/go-sitecms/pkg/testsupport"
	"github.com/google/uuid"
)

func TestBunRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testsupport.NewBunDB(t, (*enquiries.Enquiry)(nil))
	repo := enquiries.NewBunRepository(db)

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i, name := range []string{"Ada", "Alan", "Grace"} {
		at := base.Add(time.Duration(i) * time.Hour)
		rec, err := repo.Create(ctx, &enquiries.Enquiry{
			ID:        uuid.New(),
			Name:      name,
			Email:     name + "@example.com",
			CreatedAt: at,
			UpdatedAt: at,
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		ids = append(ids, rec.ID)
	}

	all, err := repo.List(ctx, enquiries.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].Name != "Grace" || all[2].Name != "Ada" {
		t.Fatalf("expected newest first, got %d rows", len(all))
	}

	byName, err := repo.List(ctx, enquiries.Filter{Name: "AL"})
	if err != nil {
		t.Fatalf("list by name: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "Alan" {
		t.Fatalf("expected Alan only, got %d rows", len(byName))
	}

	rec, err := repo.Get(ctx, ids[0])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	rec.Checked = true
	rec.Name = "ignored"
	rec.UpdatedAt = base.Add(24 * time.Hour)
	if _, err := repo.Update(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	checked := true
	onlyChecked, err := repo.List(ctx, enquiries.Filter{Checked: &checked})
	if err != nil {
		t.Fatalf("list checked: %v", err)
	}
	if len(onlyChecked) != 1 || onlyChecked[0].ID != ids[0] {
		t.Fatalf("expected one checked row, got %d", len(onlyChecked))
	}
	if onlyChecked[0].Name != "Ada" {
		t.Fatalf("expected update to touch checked only, got name %q", onlyChecked[0].Name)
	}

	if err := repo.Delete(ctx, ids[1]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, ids[1]); !enquiries.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := repo.Delete(ctx, uuid.New()); !enquiries.IsNotFound(err) {
		t.Fatalf("expected not found deleting missing row, got %v", err)
	}
}
