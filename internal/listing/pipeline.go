package listing

import (
	"errors"
	"sort"

	"github.com/goliatone/go-catalog/internal/catalog"
)

// ErrCategoryNotFound signals that a requested key matched no category after
// both slug and name normalization attempts. It is a reportable condition;
// callers must distinguish it from a category that exists but has no items.
var ErrCategoryNotFound = errors.New("listing: category not found")

// State describes the terminal outcome of listing assembly. NotFound and Empty
// are successful pipeline outcomes encoded as data, never as errors.
type State string

const (
	StateFound    State = "found"
	StateNotFound State = "not_found"
	StateEmpty    State = "empty"
)

// OtherGroupLabel is the synthetic group that collects items carrying no
// category label. Malformed records degrade into it instead of failing.
const OtherGroupLabel = "Other"

// displayOrderLast is the sort key assigned to groups whose label matches no
// category metadata. It is larger than any legitimate display order so such
// groups always sort last.
const displayOrderLast = int(^uint(0) >> 1)

// Group pairs a display label with the items listed under it. Item order is
// preserved exactly as received.
type Group struct {
	Label string
	Items []*catalog.Item
}

// ViewModel is the assembled, presentation-ready listing result.
type ViewModel struct {
	ResolvedCategory *catalog.Category
	Groups           []Group
	State            State
}

// Match resolves a requested key against the category collection. Slug-exact
// matches win over name matches because the slug is the admin-intended
// canonical identifier; two categories can normalize to the same name fragment
// while carrying distinct slugs. Within each pass the first match in
// collection order wins.
func Match(requestedKey string, categories []*catalog.Category) (*catalog.Category, error) {
	key := NormalizeKey(requestedKey)
	if key == "" {
		return nil, ErrCategoryNotFound
	}

	for _, cat := range categories {
		if slug := cat.SlugValue(); slug != "" && NormalizeKey(slug) == key {
			return cat, nil
		}
	}

	for _, cat := range categories {
		if NormalizeKey(cat.Name) == key {
			return cat, nil
		}
	}

	return nil, ErrCategoryNotFound
}

// GroupItems partitions items into groups keyed by their raw category label.
// Grouping is exact-string on purpose: it only keeps visually identical labels
// together, while cross-label merging is Match's job. Group order follows
// first occurrence in the input; within a group item order is preserved.
// Items without a label land in the synthetic Other group.
func GroupItems(items []*catalog.Item) []Group {
	var groups []Group
	index := map[string]int{}

	for _, item := range items {
		label := item.Category
		if label == "" {
			label = OtherGroupLabel
		}
		at, ok := index[label]
		if !ok {
			at = len(groups)
			index[label] = at
			groups = append(groups, Group{Label: label})
		}
		groups[at].Items = append(groups[at].Items, item)
	}

	return groups
}

// SortGroups orders groups ascending by the display order of their matching
// category, resolved through the same normalization rule Match uses. Labels
// without matching metadata never raise; they take the sentinel key and sort
// last. The sort is stable so ties keep first-occurrence order.
func SortGroups(groups []Group, categories []*catalog.Category) []Group {
	if len(groups) < 2 {
		return groups
	}

	keyed := make([]struct {
		group Group
		order int
	}, len(groups))
	for i, g := range groups {
		keyed[i].group = g
		keyed[i].order = displayOrderFor(g.Label, categories)
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].order < keyed[j].order
	})

	out := make([]Group, len(keyed))
	for i, k := range keyed {
		out[i] = k.group
	}
	return out
}

func displayOrderFor(label string, categories []*catalog.Category) int {
	cat, err := Match(label, categories)
	if err != nil || cat.DisplayOrder == nil {
		return displayOrderLast
	}
	return *cat.DisplayOrder
}

// Assemble composes Match, GroupItems and SortGroups into the view model the
// presentation layer consumes. A nil requestedKey produces the all-categories
// listing. With a key, the outcome is one of three distinguishable states:
// StateNotFound when no category matches, StateEmpty when the category is real
// but has no published items, and StateFound otherwise. Conflating any two of
// those states is a regression: a typo in the URL and a category with no
// products yet are different user-facing conditions.
func Assemble(requestedKey *string, categories []*catalog.Category, items []*catalog.Item) *ViewModel {
	if requestedKey == nil {
		return &ViewModel{
			State:  StateFound,
			Groups: SortGroups(GroupItems(items), categories),
		}
	}

	resolved, err := Match(*requestedKey, categories)
	if err != nil {
		return &ViewModel{State: StateNotFound}
	}

	filtered := filterByCategory(items, resolved)
	if len(filtered) == 0 {
		return &ViewModel{
			State:            StateEmpty,
			ResolvedCategory: resolved,
		}
	}

	return &ViewModel{
		State:            StateFound,
		ResolvedCategory: resolved,
		Groups:           groupResolved(filtered, resolved),
	}
}

// filterByCategory keeps items whose normalized label matches the resolved
// category's normalized name or slug. The normalized comparison reconciles
// casing and punctuation drift between the denormalized item labels and the
// canonical category record.
func filterByCategory(items []*catalog.Item, resolved *catalog.Category) []*catalog.Item {
	nameKey := NormalizeKey(resolved.Name)
	slugKey := NormalizeKey(resolved.SlugValue())

	var out []*catalog.Item
	for _, item := range items {
		key := NormalizeKey(item.Category)
		if key == "" {
			continue
		}
		if key == nameKey || (slugKey != "" && key == slugKey) {
			out = append(out, item)
		}
	}
	return out
}

// groupResolved renders a single-category view: one group carrying the
// canonical category name, or subcategory groups when the filtered items
// declare subcategories.
func groupResolved(items []*catalog.Item, resolved *catalog.Category) []Group {
	hasSub := false
	for _, item := range items {
		if item.Subcategory != nil && *item.Subcategory != "" {
			hasSub = true
			break
		}
	}

	if !hasSub {
		return []Group{{Label: resolved.Name, Items: items}}
	}

	var groups []Group
	var other []*catalog.Item
	index := map[string]int{}
	for _, item := range items {
		if item.Subcategory == nil || *item.Subcategory == "" {
			other = append(other, item)
			continue
		}
		label := *item.Subcategory
		at, ok := index[label]
		if !ok {
			at = len(groups)
			index[label] = at
			groups = append(groups, Group{Label: label})
		}
		groups[at].Items = append(groups[at].Items, item)
	}
	// Unlabeled items always trail the named subcategories.
	if len(other) > 0 {
		groups = append(groups, Group{Label: OtherGroupLabel, Items: other})
	}
	return groups
}
