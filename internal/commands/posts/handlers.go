package postscmd

import (
	"context"

	"github.com/goliatone/go-catalog/internal/commands"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/internal/posts"
	"github.com/goliatone/go-catalog/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const importOperation = "posts.import_directory"

var _ command.Commander[ImportPostsCommand] = (*ImportPostsHandler)(nil)

// ImportPostsHandler orchestrates markdown directory imports via the shared
// command handler foundation.
type ImportPostsHandler struct {
	inner *commands.Handler[ImportPostsCommand]
}

// NewImportPostsHandler creates a handler bound to the supplied posts service.
func NewImportPostsHandler(service posts.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ImportPostsCommand]) *ImportPostsHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportPostsCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.ImportDirectory(ctx, msg.Directory, posts.ImportOptions{
			DryRun:        msg.DryRun,
			IncludeDrafts: msg.IncludeDrafts,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count": len(result.Created),
				"updated_count": len(result.Updated),
				"skipped_count": len(result.Skipped),
				"dry_run":       msg.DryRun,
			}).Info("posts.command.import_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportPostsCommand]{
		commands.WithLogger[ImportPostsCommand](baseLogger),
		commands.WithOperation[ImportPostsCommand](importOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportPostsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportPostsCommand].
func (h *ImportPostsHandler) Execute(ctx context.Context, msg ImportPostsCommand) error {
	return h.inner.Execute(ctx, msg)
}
