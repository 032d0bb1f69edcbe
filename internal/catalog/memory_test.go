package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/identity"
)

func TestMemoryCategoryPutAssignsDeterministicID(t *testing.T) {
	repo := catalog.NewMemoryCategoryRepository()

	slug := "locks"
	repo.Put(&catalog.Category{
		Kind:     catalog.KindProduct,
		Name:     "Locks",
		Slug:     &slug,
		IsActive: true,
	})

	got, err := repo.GetBySlug(context.Background(), catalog.KindProduct, "locks")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID == uuid.Nil {
		t.Fatal("expected a generated ID")
	}
	if want := identity.CategoryUUID("product", "locks"); got.ID != want {
		t.Fatalf("expected %s got %s", want, got.ID)
	}

	repo.Put(&catalog.Category{
		Kind:     catalog.KindProduct,
		Name:     "Smart Locks",
		Slug:     &slug,
		IsActive: true,
	})

	all, err := repo.List(context.Background(), catalog.KindProduct)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected re-seed to update in place, got %d records", len(all))
	}
	if all[0].Name != "Smart Locks" {
		t.Fatalf("expected updated name got %q", all[0].Name)
	}
}

func TestMemoryItemPutAssignsDeterministicID(t *testing.T) {
	repo := catalog.NewMemoryItemRepository()

	repo.Put(&catalog.Item{
		Kind:      catalog.KindProduct,
		Title:     "Cabinet Lock",
		Slug:      "cabinet-lock",
		Published: true,
	})

	got, err := repo.GetBySlug(context.Background(), catalog.KindProduct, "cabinet-lock")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if want := identity.ItemUUID("product", "cabinet-lock"); got.ID != want {
		t.Fatalf("expected %s got %s", want, got.ID)
	}
}
