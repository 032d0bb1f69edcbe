package posts_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/posts"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestImportDirectoryCreatesPosts(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "rfid-basics.md", `---
title: RFID Basics
slug: rfid-basics
author: Dana
tags: [rfid]
date: 2024-03-01T00:00:00Z
---
# Intro

How RFID tags work.
`)
	writeDoc(t, dir, "notes.txt", "not markdown")

	repo := posts.NewMemoryPostRepository()
	svc := posts.NewService(repo, posts.WithClock(func() time.Time {
		return time.Unix(0, 0)
	}))

	ctx := context.Background()
	result, err := svc.ImportDirectory(ctx, dir, posts.ImportOptions{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(result.Created) != 1 || result.Created[0] != "rfid-basics" {
		t.Fatalf("expected one created post, got %+v", result)
	}

	post, err := svc.GetBySlug(ctx, "rfid-basics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.Title != "RFID Basics" {
		t.Fatalf("expected title got %q", post.Title)
	}
	if !strings.Contains(post.BodyHTML, "<h1") {
		t.Fatalf("expected rendered HTML body, got %q", post.BodyHTML)
	}
	if post.Author == nil || *post.Author != "Dana" {
		t.Fatalf("expected author Dana")
	}
}

func TestImportDirectoryIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "post.md", `---
title: Access Control Trends
---
Body.
`)

	repo := posts.NewMemoryPostRepository()
	svc := posts.NewService(repo)
	ctx := context.Background()

	if _, err := svc.ImportDirectory(ctx, dir, posts.ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}
	result, err := svc.ImportDirectory(ctx, dir, posts.ImportOptions{})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if len(result.Updated) != 1 || len(result.Created) != 0 {
		t.Fatalf("expected update on re-import, got %+v", result)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected a single post after re-import, got %d", len(all))
	}
}

func TestImportDirectorySkipsDrafts(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "draft.md", `---
title: Unfinished
draft: true
---
wip
`)

	svc := posts.NewService(posts.NewMemoryPostRepository())
	result, err := svc.ImportDirectory(context.Background(), dir, posts.ImportOptions{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(result.Skipped) != 1 || len(result.Created) != 0 {
		t.Fatalf("expected draft skipped, got %+v", result)
	}
}

func TestImportDirectorySkipsInvalidDocuments(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "untitled.md", `---
slug: valid-slug
---
no title
`)

	svc := posts.NewService(posts.NewMemoryPostRepository())
	result, err := svc.ImportDirectory(context.Background(), dir, posts.ImportOptions{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected invalid document skipped, got %+v", result)
	}
}

func TestImportDirectoryDryRun(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "post.md", `---
title: Preview Only
---
Body.
`)

	svc := posts.NewService(posts.NewMemoryPostRepository())
	ctx := context.Background()
	result, err := svc.ImportDirectory(ctx, dir, posts.ImportOptions{DryRun: true})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(result.Created) != 1 {
		t.Fatalf("dry run should report the plan, got %+v", result)
	}
	if _, err := svc.GetBySlug(ctx, "preview-only"); !catalog.IsNotFound(err) {
		t.Fatalf("dry run must not persist, got %v", err)
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := posts.NewService(posts.NewMemoryPostRepository())
	if _, err := svc.GetBySlug(context.Background(), "missing"); !catalog.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
