package catalog

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/config"
	"storefront.GO/core/cache"
	catalogEntity "storefront.GO/model/entity/catalog"
	catalogService "storefront.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// CacheTagCatalog invalidates catalog responses on store reload.
const CacheTagCatalog = "catalog"

func RegisterCatalogRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/catalog")

	// GET /api/catalog/products — the query engine over HTTP. The limit
	// param is the client's current reveal window; hasMore tells it whether
	// another reveal is worthwhile.
	g.GET("/products", func(c echo.Context) error {
		start := time.Now()
		q, limit := queryFromRequest(c)
		if !catalogService.ValidSort(q.Sort) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown sort option: " + q.Sort})
		}

		// Elasticsearch path: restrict to index hits when available; on
		// any failure the in-memory substring filter stays authoritative.
		if q.Search != "" {
			if svc := catalogService.GetSearchService(); svc.Available() {
				if ids, err := svc.SearchIDs(c.Request().Context(), q.Search, 0); err == nil {
					q.IDs = ids
					q.Search = ""
				}
			}
		}

		results := catalogService.Run(deps.Catalog.Snapshot(), q)
		if results == nil {
			results = []catalogEntity.Product{}
		}
		total := len(results)
		if limit > total {
			limit = total
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, echo.Map{
			"items":   results[:limit],
			"total":   total,
			"hasMore": limit < total,
		})
	})

	// GET /api/catalog/categories — the full category tree.
	g.GET("/categories", func(c echo.Context) error {
		if v, ok := cache.GetInstance().Get("catalog:categories"); ok {
			return c.JSON(http.StatusOK, v)
		}
		snap := deps.Catalog.Snapshot()
		resp := echo.Map{"categories": snap.Categories}
		cache.GetInstance().Set("catalog:categories", resp, 300, []string{CacheTagCatalog})
		return c.JSON(http.StatusOK, resp)
	})

	g.GET("/brands", func(c echo.Context) error {
		if v, ok := cache.GetInstance().Get("catalog:brands"); ok {
			return c.JSON(http.StatusOK, v)
		}
		snap := deps.Catalog.Snapshot()
		resp := echo.Map{"brands": snap.Brands}
		cache.GetInstance().Set("catalog:brands", resp, 300, []string{CacheTagCatalog})
		return c.JSON(http.StatusOK, resp)
	})

	// POST /api/admin/catalog/import — bulk product upsert, then reload the
	// store so the new products are queryable immediately.
	apiGroup.POST("/admin/catalog/import", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			Items     []catalogService.ProductRow `json:"items"`
			BatchSize int                         `json:"batch_size"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items array is required and must not be empty"})
		}

		res, err := catalogService.ImportProductsJSON(deps.DB, body.Items, body.BatchSize)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		if err := deps.Catalog.Load(); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}
		cache.GetInstance().DeleteByTag(CacheTagCatalog)

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"imported":            res.Imported,
			"skipped":             res.Skipped,
			"warnings":            res.Warnings,
			"request_duration_ms": duration,
		})
	})
}

func queryFromRequest(c echo.Context) (catalogService.Query, int) {
	q := catalogService.Query{
		ScopeSlug: c.QueryParam("scope"),
		Search:    c.QueryParam("q"),
		Sort:      c.QueryParam("sort"),
		OnSale:    c.QueryParam("on_sale") == "true",
		InStock:   c.QueryParam("in_stock") == "true",
	}
	if v := c.QueryParam("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.PriceMin = f
		}
	}
	if v := c.QueryParam("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.PriceMax = f
		}
	}
	if v := c.QueryParam("categories"); v != "" {
		q.Categories = strings.Split(v, ",")
	}
	if v := c.QueryParam("brands"); v != "" {
		q.Brands = strings.Split(v, ",")
	}

	limit := config.AppConfig.PageIncrement
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return q, limit
}
