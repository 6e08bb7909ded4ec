package graphqlserver

import (
	"context"
	"strconv"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"storefront.GO/config"
	"storefront.GO/graphql"
	catalogEntity "storefront.GO/model/entity/catalog"
	catalogService "storefront.GO/service/catalog"
)

// RootResolver is the root for graphql-go. Reads go straight to the catalog
// store snapshot; there are no mutations on this surface.
type RootResolver struct {
	Store *catalogService.Store
}

// ProductsArgs matches the products query arguments.
type ProductsArgs struct {
	Scope      *string
	Search     *string
	PriceMin   *float64
	PriceMax   *float64
	Categories *[]string
	Brands     *[]string
	OnSale     *bool
	InStock    *bool
	Sort       *string
	Limit      *int32
}

func (r *RootResolver) Products(ctx context.Context, args ProductsArgs) (*graphql.ProductResult, error) {
	q := catalogService.Query{
		ScopeSlug: strVal(args.Scope),
		Search:    strVal(args.Search),
		Sort:      strVal(args.Sort),
		OnSale:    boolVal(args.OnSale),
		InStock:   boolVal(args.InStock),
	}
	if args.PriceMin != nil {
		q.PriceMin = *args.PriceMin
	}
	if args.PriceMax != nil {
		q.PriceMax = *args.PriceMax
	}
	if args.Categories != nil {
		q.Categories = *args.Categories
	}
	if args.Brands != nil {
		q.Brands = *args.Brands
	}

	results := catalogService.Run(r.Store.Snapshot(), q)
	total := len(results)
	limit := config.AppConfig.PageIncrement
	if args.Limit != nil && *args.Limit > 0 {
		limit = int(*args.Limit)
	}
	if limit > total {
		limit = total
	}

	items := make([]*graphql.Product, limit)
	for i := 0; i < limit; i++ {
		items[i] = graphql.ProductToGraphQL(&results[i])
	}
	return &graphql.ProductResult{
		Items:   items,
		Total:   int32(total),
		HasMore: limit < total,
	}, nil
}

func (r *RootResolver) Categories(ctx context.Context) ([]*graphql.Category, error) {
	snap := r.Store.Snapshot()
	out := make([]*graphql.Category, len(snap.Categories))
	for i, c := range snap.Categories {
		out[i] = graphql.CategoryToGraphQL(c)
	}
	return out, nil
}

func (r *RootResolver) Category(ctx context.Context, args struct{ ID gql.ID }) (*graphql.Category, error) {
	id, err := strconv.ParseUint(string(args.ID), 10, 64)
	if err != nil {
		return nil, nil
	}
	if node := findCategoryByID(r.Store.Snapshot().Categories, uint(id)); node != nil {
		return graphql.CategoryToGraphQL(node), nil
	}
	return nil, nil
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolVal(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

func findCategoryByID(nodes []*catalogEntity.Category, id uint) *catalogEntity.Category {
	for _, n := range nodes {
		if n.CategoryID == id {
			return n
		}
		if found := findCategoryByID(n.SubCategories, id); found != nil {
			return found
		}
	}
	return nil
}

func (r *RootResolver) Brands(ctx context.Context) ([]*graphql.Brand, error) {
	snap := r.Store.Snapshot()
	out := make([]*graphql.Brand, len(snap.Brands))
	for i := range snap.Brands {
		out[i] = graphql.BrandToGraphQL(&snap.Brands[i])
	}
	return out, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(store *catalogService.Store) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Store: store}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
