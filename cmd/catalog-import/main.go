package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-catalog/cmd/catalog-import/internal/bootstrap"
	postscmd "github.com/goliatone/go-catalog/internal/commands/posts"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("catalog import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("catalog-import", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	directory := fs.String("directory", "", "Directory to import (defaults to the content root)")
	dsn := fs.String("dsn", "", "SQLite DSN to persist posts into (in-memory storage when empty)")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting posts")
	includeDrafts := fs.Bool("include-drafts", false, "Import documents flagged draft in front matter")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:    *contentDir,
		DSN:           *dsn,
		IncludeDrafts: *includeDrafts,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Service == nil {
		return fmt.Errorf("posts service not configured; ensure Features.Posts is enabled")
	}

	dir := *directory
	if dir == "" {
		dir = *contentDir
	}

	handler := postscmd.NewImportPostsHandler(module.Service, module.Logger)
	cmd := postscmd.ImportPostsCommand{
		Directory:     dir,
		DryRun:        *dryRun,
		IncludeDrafts: *includeDrafts,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute import command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "catalog import command executed successfully")

	return nil
}
