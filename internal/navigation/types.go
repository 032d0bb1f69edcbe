package navigation

import "github.com/goliatone/go-catalog/internal/catalog"

// Entry is a single navigation link. Children carry subcategory links nested
// under their parent category.
type Entry struct {
	Label    string  `json:"label"`
	Slug     string  `json:"slug,omitempty"`
	URL      string  `json:"url,omitempty"`
	Children []Entry `json:"children,omitempty"`
}

// Menu is the assembled navigation tree for one catalog collection.
type Menu struct {
	Kind    catalog.Kind `json:"kind"`
	Entries []Entry      `json:"entries"`
}
