package graphql

import (
	"strconv"

	gql "github.com/graph-gophers/graphql-go"

	catalogEntity "storefront.GO/model/entity/catalog"
)

type Product struct {
	ID        gql.ID
	Name      string
	Price     float64
	SalePrice *float64
	Category  string
	Brand     string
	InStock   bool
	OnSale    bool
	Rating    float64
	Image     *string
}

type ProductResult struct {
	Items   []*Product
	Total   int32
	HasMore bool
}

type Category struct {
	ID            gql.ID
	Name          string
	Count         int32
	Image         *string
	SubCategories *[]*Category
}

type Brand struct {
	ID    gql.ID
	Name  string
	Logo  *string
	Image *string
}

func ProductToGraphQL(p *catalogEntity.Product) *Product {
	return &Product{
		ID:        gql.ID(strconv.FormatUint(uint64(p.ProductID), 10)),
		Name:      p.Name,
		Price:     p.Price,
		SalePrice: p.SalePrice,
		Category:  p.Category,
		Brand:     p.Brand,
		InStock:   p.InStock,
		OnSale:    p.OnSale,
		Rating:    p.Rating,
		Image:     p.Image,
	}
}

func CategoryToGraphQL(c *catalogEntity.Category) *Category {
	out := &Category{
		ID:    gql.ID(strconv.FormatUint(uint64(c.CategoryID), 10)),
		Name:  c.Name,
		Count: int32(c.Count),
		Image: c.Image,
	}
	if len(c.SubCategories) > 0 {
		subs := make([]*Category, len(c.SubCategories))
		for i, sub := range c.SubCategories {
			subs[i] = CategoryToGraphQL(sub)
		}
		out.SubCategories = &subs
	}
	return out
}

func BrandToGraphQL(b *catalogEntity.Brand) *Brand {
	return &Brand{
		ID:    gql.ID(strconv.FormatUint(uint64(b.BrandID), 10)),
		Name:  b.Name,
		Logo:  b.Logo,
		Image: b.Image,
	}
}
