package markdown

import (
	"strings"
	"testing"
)

func TestParserRendersGFM(t *testing.T) {
	t.Parallel()

	p := NewParser(ParseOptions{})
	out, err := p.Parse([]byte("# Heading\n\nSome ~~old~~ text"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h1") {
		t.Fatalf("expected heading in output: %s", html)
	}
	if !strings.Contains(html, "<del>old</del>") {
		t.Fatalf("expected strikethrough rendering: %s", html)
	}
}

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()

	source := []byte(`---
title: RFID Basics
slug: rfid-basics
author: Dana
tags: [rfid, tags]
draft: false
---
Body content here.
`)

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("parse frontmatter: %v", err)
	}
	if meta.Title != "RFID Basics" || meta.Slug != "rfid-basics" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if len(meta.Tags) != 2 {
		t.Fatalf("expected 2 tags got %d", len(meta.Tags))
	}
	if !strings.Contains(string(body), "Body content here.") {
		t.Fatalf("body should exclude delimiters: %s", body)
	}
}

func TestParseFrontMatterMissingHeaderPassesThrough(t *testing.T) {
	t.Parallel()

	meta, body, err := ParseFrontMatter([]byte("no front matter"))
	if err != nil {
		t.Fatalf("parse frontmatter: %v", err)
	}
	if meta.Title != "" || meta.Slug != "" {
		t.Fatalf("expected empty metadata, got %+v", meta)
	}
	if string(body) != "no front matter" {
		t.Fatalf("expected original body, got %q", body)
	}
}
