package catalog

import (
	"strings"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// FindCategoryNode locates a category anywhere in the tree by slug.
// A slug matches when it equals the lowercased category name, or when the
// name equals the slug with "-" replaced by " & " (so "home-kitchen" finds
// "Home & Kitchen").
func FindCategoryNode(nodes []*catalogEntity.Category, slug string) *catalogEntity.Category {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil
	}
	amp := strings.ReplaceAll(slug, "-", " & ")
	for _, cat := range nodes {
		name := strings.ToLower(cat.Name)
		if name == slug || name == amp {
			return cat
		}
		if found := FindCategoryNode(cat.SubCategories, slug); found != nil {
			return found
		}
	}
	return nil
}

// CategoryNames returns the node's name plus all descendant names.
func CategoryNames(cat *catalogEntity.Category) []string {
	names := []string{cat.Name}
	for _, sub := range cat.SubCategories {
		names = append(names, CategoryNames(sub)...)
	}
	return names
}

// resolveScope returns the lowercased set of category names in scope for a
// slug, or nil when the whole catalog is in scope (empty slug or no matching
// node — a missing category falls back to "all products", never an error).
func resolveScope(snap Snapshot, slug string) map[string]struct{} {
	if slug == "" {
		return nil
	}
	node := FindCategoryNode(snap.Categories, slug)
	if node == nil {
		return nil
	}
	set := make(map[string]struct{})
	for _, name := range CategoryNames(node) {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}
