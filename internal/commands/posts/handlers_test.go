package postscmd_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	postscmd "github.com/goliatone/go-catalog/internal/commands/posts"
	"github.com/goliatone/go-catalog/internal/posts"
)

func writeDoc(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestImportPostsCommandCreatesPosts(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "hello.md", "---\ntitle: Hello RFID\n---\n\nFirst post.")

	repo := posts.NewMemoryPostRepository()
	svc := posts.NewService(repo)
	handler := postscmd.NewImportPostsHandler(svc, nil)

	err := handler.Execute(context.Background(), postscmd.ImportPostsCommand{Directory: dir})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].Title != "Hello RFID" {
		t.Fatalf("expected imported post, got %+v", records)
	}
}

func TestImportPostsCommandRequiresDirectory(t *testing.T) {
	repo := posts.NewMemoryPostRepository()
	svc := posts.NewService(repo)
	handler := postscmd.NewImportPostsHandler(svc, nil)

	err := handler.Execute(context.Background(), postscmd.ImportPostsCommand{Directory: "   "})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestImportPostsCommandDryRunPersistsNothing(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "hello.md", "---\ntitle: Hello RFID\n---\n\nFirst post.")

	repo := posts.NewMemoryPostRepository()
	svc := posts.NewService(repo)
	handler := postscmd.NewImportPostsHandler(svc, nil)

	err := handler.Execute(context.Background(), postscmd.ImportPostsCommand{Directory: dir, DryRun: true})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no persisted posts on dry run, got %+v", records)
	}
}
