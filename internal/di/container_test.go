package di_test

import (
	"context"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"

	"github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/di"
	"github.com/goliatone/go-catalog/internal/runtimeconfig"
)

func TestNewContainerDefaultsToMemoryRepositories(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	t.Cleanup(func() { container.Close() })

	if container.CategoryRepository() == nil {
		t.Fatal("expected category repository")
	}
	if container.ListingService() == nil {
		t.Fatal("expected listing service")
	}
	if container.NavigationService() == nil {
		t.Fatal("expected navigation service with default features")
	}
	if container.PostsService() == nil {
		t.Fatal("expected posts service with default features")
	}
	if container.DB() != nil {
		t.Fatal("memory storage must not open a database")
	}
	if container.LoggerProvider() == nil {
		t.Fatal("expected default console logging provider")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "redis"

	if _, err := di.NewContainer(cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestNewContainerFeatureFlagsDisableServices(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Navigation = false
	cfg.Features.Posts = false

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	t.Cleanup(func() { container.Close() })

	if container.NavigationService() != nil {
		t.Fatal("expected nil navigation service when feature disabled")
	}
	if container.PostsService() != nil {
		t.Fatal("expected nil posts service when feature disabled")
	}
	if container.ListingService() == nil {
		t.Fatal("listing service is always wired")
	}
}

func TestNewContainerSQLiteOpensDatabase(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage = runtimeconfig.StorageConfig{
		Provider: "sqlite",
		DSN:      "file::memory:?cache=shared",
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	t.Cleanup(func() { container.Close() })

	if container.DB() == nil {
		t.Fatal("expected sqlite database handle")
	}
}

func TestNewContainerWiresNavigationResolver(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Navigation.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"product-category": "/products/:slug",
				},
			},
		},
	}
	cfg.Navigation.Routes = map[string]string{"product": "product-category"}

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	t.Cleanup(func() { container.Close() })

	if container.RouteManager() == nil {
		t.Fatal("expected route manager")
	}

	seedNavigationCategories(t, container)

	menu, err := container.NavigationService().Build(context.Background(), catalog.KindProduct)
	if err != nil {
		t.Fatalf("build menu: %v", err)
	}
	if len(menu.Entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(menu.Entries))
	}
	if want := "https://example.com/products/locks"; menu.Entries[0].URL != want {
		t.Fatalf("expected %q got %q", want, menu.Entries[0].URL)
	}
}

func seedNavigationCategories(t *testing.T, container *di.Container) {
	t.Helper()

	repo, ok := container.CategoryRepository().(*catalog.MemoryCategoryRepository)
	if !ok {
		t.Fatal("expected memory category repository")
	}

	slug := "locks"
	repo.Put(&catalog.Category{
		ID:       uuid.New(),
		Kind:     catalog.KindProduct,
		Name:     "Locks",
		Slug:     &slug,
		IsActive: true,
	})
}
