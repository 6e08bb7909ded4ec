package catalog

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	catalogEntity "storefront.GO/model/entity/catalog"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) (*CatalogRepository, error) {
	if err := db.AutoMigrate(
		&catalogEntity.Product{},
		&catalogEntity.Category{},
		&catalogEntity.Brand{},
	); err != nil {
		return nil, err
	}
	return &CatalogRepository{db: db}, nil
}

// FetchProducts returns all products, published or not. Visibility is the
// caller's concern (the storefront scope keeps published only, admin sees all).
func (r *CatalogRepository) FetchProducts() ([]catalogEntity.Product, error) {
	var products []catalogEntity.Product
	if err := r.db.Order("product_id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FetchBrands returns all brands ordered by name.
func (r *CatalogRepository) FetchBrands() ([]catalogEntity.Brand, error) {
	var brands []catalogEntity.Brand
	if err := r.db.Order("name").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// FetchCategoryTree loads all categories and assembles the parent/child tree.
// Duplicate names (case-insensitive, whitespace-trimmed) collapse onto the
// first occurrence so the same display name never appears twice in a branch.
func (r *CatalogRepository) FetchCategoryTree() ([]*catalogEntity.Category, error) {
	var flat []catalogEntity.Category
	if err := r.db.Order("category_id").Find(&flat).Error; err != nil {
		return nil, err
	}
	return BuildCategoryTree(flat), nil
}

// BuildCategoryTree assembles a parent/child tree from a flat category list.
func BuildCategoryTree(flat []catalogEntity.Category) []*catalogEntity.Category {
	byID := make(map[uint]*catalogEntity.Category, len(flat))
	seen := make(map[string]bool, len(flat))
	order := make([]*catalogEntity.Category, 0, len(flat))

	for i := range flat {
		c := flat[i]
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		node := c
		node.SubCategories = nil
		byID[node.CategoryID] = &node
		order = append(order, &node)
	}

	var roots []*catalogEntity.Category
	for _, node := range order {
		if node.ParentID != nil {
			if parent, ok := byID[*node.ParentID]; ok && parent != node {
				parent.SubCategories = append(parent.SubCategories, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	sortTree(roots)
	return roots
}

func sortTree(nodes []*catalogEntity.Category) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].CategoryID < nodes[j].CategoryID
	})
	for _, n := range nodes {
		sortTree(n.SubCategories)
	}
}
