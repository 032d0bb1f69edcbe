package main

import (
	"context"
	"testing"

	"github.com/goliatone/go-catalog/cmd/catalog-import/internal/bootstrap"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/internal/posts"
)

type stubPostsService struct {
	importCalls int
	importDir   string
	dryRun      bool
}

func (s *stubPostsService) List(context.Context) ([]*posts.Post, error) {
	return nil, nil
}

func (s *stubPostsService) GetBySlug(context.Context, string) (*posts.Post, error) {
	return nil, nil
}

func (s *stubPostsService) ImportDirectory(_ context.Context, dir string, opts posts.ImportOptions) (*posts.ImportResult, error) {
	s.importCalls++
	s.importDir = dir
	s.dryRun = opts.DryRun
	return &posts.ImportResult{}, nil
}

func TestRunImportUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubPostsService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Service: svc,
			Logger:  logging.NoOp(),
		}, nil
	}

	if err := runImport([]string{
		"-directory", "docs",
		"-dry-run",
	}); err != nil {
		t.Fatalf("runImport returned error: %v", err)
	}
	if svc.importCalls != 1 {
		t.Fatalf("expected import to be called once, got %d", svc.importCalls)
	}
	if svc.importDir != "docs" {
		t.Fatalf("expected import directory docs, got %s", svc.importDir)
	}
	if !svc.dryRun {
		t.Fatal("expected dry-run option to propagate")
	}
}

func TestRunImportDefaultsDirectoryToContentRoot(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubPostsService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Service: svc,
			Logger:  logging.NoOp(),
		}, nil
	}

	if err := runImport([]string{"-content-dir", "posts"}); err != nil {
		t.Fatalf("runImport returned error: %v", err)
	}
	if svc.importDir != "posts" {
		t.Fatalf("expected content root fallback, got %s", svc.importDir)
	}
}
