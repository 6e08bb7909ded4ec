package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for.
// The public storefront surface (catalog, cart, campaigns, banners, GraphQL)
// is unauthenticated; admin routes are not listed here.
func GetAuthSkipperPaths() []string {
	return []string{
		"/api/catalog/products",
		"/api/catalog/categories",
		"/api/catalog/brands",
		"/api/campaigns/active",
		"/api/banners",
		"/api/cart",
		"/api/cart/items",
		"/api/cart/items/:id",
		"/graphql",
		"/playground",
		"/health",
	}
}
