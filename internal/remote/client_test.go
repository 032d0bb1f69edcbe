package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/remote"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	locks := "locks"
	categories := []*catalog.Category{
		{ID: uuid.New(), Kind: catalog.KindProduct, Name: "Locks", Slug: &locks, IsActive: true},
	}
	items := []*catalog.Item{
		{ID: uuid.New(), Kind: catalog.KindProduct, Title: "Smart Padlock", Slug: "smart-padlock", Category: "Locks", Published: true},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("kind") != string(catalog.KindProduct) {
			json.NewEncoder(w).Encode([]*catalog.Category{})
			return
		}
		json.NewEncoder(w).Encode(categories)
	})
	mux.HandleFunc("GET /api/categories/product/locks", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(categories[0])
	})
	mux.HandleFunc("GET /api/items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(items)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestListCategories(t *testing.T) {
	server := newBackend(t)
	client := remote.NewClient(remote.Config{BaseURL: server.URL})

	records, err := client.List(context.Background(), catalog.KindProduct)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].Name != "Locks" {
		t.Fatalf("expected [Locks] got %+v", records)
	}
}

func TestGetBySlug(t *testing.T) {
	server := newBackend(t)
	client := remote.NewClient(remote.Config{BaseURL: server.URL})

	record, err := client.GetBySlug(context.Background(), catalog.KindProduct, "locks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record.Name != "Locks" {
		t.Fatalf("expected Locks got %q", record.Name)
	}
}

func TestGetBySlugMissingMapsToNotFound(t *testing.T) {
	server := newBackend(t)
	client := remote.NewClient(remote.Config{BaseURL: server.URL})

	_, err := client.GetBySlug(context.Background(), catalog.KindProduct, "no-such-category")
	if err == nil {
		t.Fatal("expected error")
	}
	if !catalog.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListItems(t *testing.T) {
	server := newBackend(t)
	client := remote.NewClient(remote.Config{BaseURL: server.URL})

	records, err := client.Items().List(context.Background(), catalog.KindProduct)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(records) != 1 || records[0].Slug != "smart-padlock" {
		t.Fatalf("expected [smart-padlock] got %+v", records)
	}
}

func TestServerErrorMapsToFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := remote.NewClient(remote.Config{BaseURL: server.URL, RetryCount: 0})

	_, err := client.List(context.Background(), catalog.KindProduct)
	if err == nil {
		t.Fatal("expected error")
	}
	if !catalog.IsFetchFailure(err) {
		t.Fatalf("expected fetch failure, got %v", err)
	}
	if catalog.IsNotFound(err) {
		t.Fatal("server failure must not read as not-found")
	}
}

func TestUnreachableBackendMapsToFetchError(t *testing.T) {
	client := remote.NewClient(remote.Config{BaseURL: "http://127.0.0.1:1", RetryCount: 0})

	_, err := client.List(context.Background(), catalog.KindProduct)
	if err == nil {
		t.Fatal("expected error")
	}
	if !catalog.IsFetchFailure(err) {
		t.Fatalf("expected fetch failure, got %v", err)
	}
}
