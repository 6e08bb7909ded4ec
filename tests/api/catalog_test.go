package apitest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"storefront.GO/api"
	catalogApi "storefront.GO/api/catalog"
	"storefront.GO/config"
	"storefront.GO/core/cache"
	catalogEntity "storefront.GO/model/entity/catalog"
	catalogRepo "storefront.GO/model/repository/catalog"
	catalogService "storefront.GO/service/catalog"
)

const (
	testUser = "admin"
	testPass = "secret"
)

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("catalog_api_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
	t.Cleanup(func() { os.Remove(tmpFile) })
	db, err := gorm.Open(sqlite.Open(tmpFile), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.AutoMigrate(&catalogEntity.Product{}, &catalogEntity.Category{}, &catalogEntity.Brand{}); err != nil {
		t.Fatalf("migrate catalog: %v", err)
	}
	sale := 30.0
	products := []catalogEntity.Product{
		{Name: "Alpha Phone", Price: 500, Category: "Phones", Brand: "Acme", InStock: true, Rating: 4.5, Status: catalogEntity.StatusPublished},
		{Name: "Beta Laptop", Price: 1200, Category: "Laptops", Brand: "Bolt", InStock: true, Rating: 4.8, Status: catalogEntity.StatusPublished},
		{Name: "Toaster", Price: 40, SalePrice: &sale, Category: "Home & Kitchen", Brand: "Acme", InStock: true, OnSale: true, Status: catalogEntity.StatusPublished},
		{Name: "Draft Gadget", Price: 10, Category: "Phones", Brand: "Acme", Status: catalogEntity.StatusDraft},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("seed products: %v", err)
	}

	electronics := catalogEntity.Category{Name: "Electronics"}
	if err := db.Create(&electronics).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	children := []catalogEntity.Category{
		{Name: "Phones", ParentID: &electronics.CategoryID},
		{Name: "Laptops", ParentID: &electronics.CategoryID},
	}
	if err := db.Create(&children).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	brands := []catalogEntity.Brand{{Name: "Acme"}, {Name: "Bolt"}}
	if err := db.Create(&brands).Error; err != nil {
		t.Fatalf("seed brands: %v", err)
	}
}

func catalogServer(t *testing.T, db *gorm.DB) (*echo.Echo, *catalogService.Store) {
	t.Helper()
	config.LoadAppConfig()
	cache.GetInstance().DeleteByTag(catalogApi.CacheTagCatalog)

	repo, err := catalogRepo.NewCatalogRepository(db)
	if err != nil {
		t.Fatalf("catalog repository: %v", err)
	}
	store := catalogService.NewStore(repo)
	if err := store.Load(); err != nil {
		t.Fatalf("store load: %v", err)
	}

	e := echo.New()
	apiGroup := e.Group("/api")
	apiGroup.Use(middleware.BasicAuth(func(user, pass string, c echo.Context) (bool, error) {
		return user == testUser && pass == testPass, nil
	}))
	catalogApi.RegisterCatalogRoutes(apiGroup, &api.Deps{DB: db, Catalog: store})
	return e, store
}

func getJSON(t *testing.T, e *echo.Echo, path string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", basicAuth(testUser, testPass))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var body map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&body)
	return rec.Code, body
}

func TestCatalogAPI_NoAuth_Returns401(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, _ := catalogServer(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestCatalogAPI_Products_PublishedOnly(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, _ := catalogServer(t, db)

	code, body := getJSON(t, e, "/api/catalog/products")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["total"] != float64(3) {
		t.Errorf("total = %v, want 3 (draft excluded)", body["total"])
	}
	if body["hasMore"] != false {
		t.Errorf("hasMore = %v, want false", body["hasMore"])
	}
}

func TestCatalogAPI_Products_LimitAndHasMore(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, _ := catalogServer(t, db)

	code, body := getJSON(t, e, "/api/catalog/products?limit=2")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	items := body["items"].([]interface{})
	if len(items) != 2 {
		t.Errorf("items = %d, want 2", len(items))
	}
	if body["hasMore"] != true {
		t.Errorf("hasMore = %v, want true", body["hasMore"])
	}
	if body["total"] != float64(3) {
		t.Errorf("total = %v, want 3", body["total"])
	}
}

func TestCatalogAPI_Products_ScopeAndBrand(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, _ := catalogServer(t, db)

	code, body := getJSON(t, e, "/api/catalog/products?scope=electronics&brands=Acme")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	items := body["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if name := items[0].(map[string]interface{})["name"]; name != "Alpha Phone" {
		t.Errorf("name = %v, want Alpha Phone", name)
	}
}

func TestCatalogAPI_Products_SortPriceAsc(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, _ := catalogServer(t, db)

	code, body := getJSON(t, e, "/api/catalog/products?sort=price-asc")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	items := body["items"].([]interface{})
	first := items[0].(map[string]interface{})
	if first["name"] != "Toaster" {
		t.Errorf("first item = %v, want Toaster (cheapest)", first["name"])
	}
}

func TestCatalogAPI_Products_UnknownSort_Returns400(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, _ := catalogServer(t, db)

	code, _ := getJSON(t, e, "/api/catalog/products?sort=price")
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestCatalogAPI_Products_EmptyResultIsOK(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, _ := catalogServer(t, db)

	code, body := getJSON(t, e, "/api/catalog/products?q=zzzz")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (zero results is a valid response)", code)
	}
	if body["total"] != float64(0) {
		t.Errorf("total = %v, want 0", body["total"])
	}
	if body["items"] == nil {
		t.Error("items is null, want empty array")
	}
}

func TestCatalogAPI_Categories_Tree(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, _ := catalogServer(t, db)

	code, body := getJSON(t, e, "/api/catalog/categories")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	categories := body["categories"].([]interface{})
	if len(categories) != 1 {
		t.Fatalf("roots = %d, want 1 (Electronics)", len(categories))
	}
	root := categories[0].(map[string]interface{})
	subs := root["subCategories"].([]interface{})
	if len(subs) != 2 {
		t.Errorf("subcategories = %d, want 2", len(subs))
	}
}

func TestCatalogAPI_Brands(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, _ := catalogServer(t, db)

	code, body := getJSON(t, e, "/api/catalog/brands")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	brands := body["brands"].([]interface{})
	if len(brands) != 2 {
		t.Errorf("brands = %d, want 2", len(brands))
	}
}

func TestCatalogAPI_Import_ReloadsStore(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, store := catalogServer(t, db)

	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{"name": "Imported Kettle", "price": "1,299.00", "category": "Home & Kitchen", "brand": "Acme", "inStock": true},
			{"price": 10}, // no name: skipped with a warning
		},
	}
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/catalog/import", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", basicAuth(testUser, testPass))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp["imported"] != float64(1) || resp["skipped"] != float64(1) {
		t.Errorf("imported/skipped = %v/%v, want 1/1", resp["imported"], resp["skipped"])
	}

	// The store reload makes the imported product queryable at once, with the
	// comma-separated price parsed.
	snap := store.Snapshot()
	found := false
	for _, p := range snap.Products {
		if p.Name == "Imported Kettle" {
			found = true
			if p.Price != 1299 {
				t.Errorf("price = %v, want 1299", p.Price)
			}
		}
	}
	if !found {
		t.Error("imported product not in the reloaded snapshot")
	}
}

func TestCatalogAPI_Import_EmptyItems_Returns400(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	e, _ := catalogServer(t, db)

	raw, _ := json.Marshal(map[string]interface{}{"items": []map[string]interface{}{}})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/catalog/import", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", basicAuth(testUser, testPass))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
