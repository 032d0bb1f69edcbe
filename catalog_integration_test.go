package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	gocatalog "github.com/goliatone/go-catalog"
	core "github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/di"
	"github.com/goliatone/go-catalog/pkg/testsupport"
)

func newModuleWithSQLite(t *testing.T) *gocatalog.Module {
	t.Helper()

	db, err := testsupport.NewBunSQLiteDB()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	ctx := context.Background()
	for _, model := range []any{(*core.Category)(nil), (*core.Item)(nil)} {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("create table: %v", err)
		}
	}

	cfg := gocatalog.DefaultConfig()
	cfg.Storage = gocatalog.StorageConfig{
		Provider: "sqlite",
		DSN:      "file::memory:?cache=shared",
	}
	cfg.Features.Posts = false

	module, err := gocatalog.New(cfg, di.WithBunDB(db))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() {
		module.Close()
		db.Close()
	})

	return module
}

func seedCatalog(t *testing.T, module *gocatalog.Module) {
	t.Helper()

	ctx := context.Background()
	repo, ok := module.Categories().(*core.BunCategoryRepository)
	if !ok {
		t.Fatal("expected bun category repository")
	}
	items, ok := module.Items().(*core.BunItemRepository)
	if !ok {
		t.Fatal("expected bun item repository")
	}

	locks := "locks"
	one := 1
	if _, err := repo.Create(ctx, &core.Category{
		ID:           uuid.New(),
		Kind:         core.KindProduct,
		Name:         "Locks",
		Slug:         &locks,
		DisplayOrder: &one,
		IsActive:     true,
	}); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	if _, err := items.Create(ctx, &core.Item{
		ID:        uuid.New(),
		Kind:      core.KindProduct,
		Title:     "Smart Padlock",
		Slug:      "smart-padlock",
		Category:  "Locks",
		Published: true,
	}); err != nil {
		t.Fatalf("seed item: %v", err)
	}
}

func TestModuleListByCategorySQLite(t *testing.T) {
	module := newModuleWithSQLite(t)
	seedCatalog(t, module)

	key := "locks"
	vm, err := module.Listing().ListByCategory(context.Background(), gocatalog.KindProduct, &key)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if vm.State != gocatalog.StateFound {
		t.Fatalf("expected found state, got %q", vm.State)
	}
	if vm.ResolvedCategory == nil || vm.ResolvedCategory.Name != "Locks" {
		t.Fatalf("expected resolved Locks category, got %+v", vm.ResolvedCategory)
	}
	if len(vm.Groups) != 1 || len(vm.Groups[0].Items) != 1 {
		t.Fatalf("expected one group with one item, got %+v", vm.Groups)
	}
}

func TestModuleListUnknownCategorySQLite(t *testing.T) {
	module := newModuleWithSQLite(t)
	seedCatalog(t, module)

	key := "conveyor-belts"
	vm, err := module.Listing().ListByCategory(context.Background(), gocatalog.KindProduct, &key)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if vm.State != gocatalog.StateNotFound {
		t.Fatalf("expected not-found state, got %q", vm.State)
	}
	if vm.ResolvedCategory != nil {
		t.Fatalf("expected nil resolved category, got %+v", vm.ResolvedCategory)
	}
}

func TestModuleMemoryStorageRoundTrip(t *testing.T) {
	cfg := gocatalog.DefaultConfig()
	cfg.Features.Posts = false

	module, err := gocatalog.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { module.Close() })

	repo, ok := module.Categories().(*core.MemoryCategoryRepository)
	if !ok {
		t.Fatal("expected memory category repository")
	}
	slug := "rfid-tags"
	repo.Put(&core.Category{
		ID:       uuid.New(),
		Kind:     core.KindProduct,
		Name:     "RFID Tags",
		Slug:     &slug,
		IsActive: true,
	})

	vm, err := module.Listing().ListByCategory(context.Background(), gocatalog.KindProduct, &slug)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if vm.State != gocatalog.StateEmpty {
		t.Fatalf("expected empty state for category without items, got %q", vm.State)
	}
}
