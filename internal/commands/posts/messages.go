package postscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const importPostsMessageType = "catalog.posts.import_directory"

// ImportPostsCommand triggers a filesystem walk for markdown documents under
// the provided Directory, mirroring posts.Service ImportDirectory semantics.
type ImportPostsCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load markdown files from.
	Directory string `json:"directory"`
	// DryRun collects the import plan without persisting posts.
	DryRun bool `json:"dry_run,omitempty"`
	// IncludeDrafts imports documents flagged draft in front matter.
	IncludeDrafts bool `json:"include_drafts,omitempty"`
}

// Type implements command.Message.
func (ImportPostsCommand) Type() string { return importPostsMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportPostsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("catalog.posts.import_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
