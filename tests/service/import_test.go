package servicetest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	catalogEntity "storefront.GO/model/entity/catalog"
	catalogService "storefront.GO/service/catalog"
)

func importDB(t *testing.T) *gorm.DB {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("import_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
	t.Cleanup(func() { os.Remove(tmpFile) })
	db, err := gorm.Open(sqlite.Open(tmpFile), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	if err := db.AutoMigrate(&catalogEntity.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestImport_BasicRows(t *testing.T) {
	db := importDB(t)
	rows := []catalogService.ProductRow{
		{"name": "Phone", "price": 500.0, "category": "Phones", "brand": "Acme", "inStock": true},
		{"name": "Laptop", "price": 1200.0, "category": "Laptops", "rating": 4.5},
	}

	res, err := catalogService.ImportProductsJSON(db, rows, 0)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 2 || res.Skipped != 0 {
		t.Errorf("imported/skipped = %d/%d, want 2/0", res.Imported, res.Skipped)
	}

	var count int64
	db.Model(&catalogEntity.Product{}).Count(&count)
	if count != 2 {
		t.Errorf("rows in table = %d, want 2", count)
	}

	var p catalogEntity.Product
	db.Where("name = ?", "Phone").First(&p)
	if p.Status != catalogEntity.StatusPublished {
		t.Errorf("status = %q, want published by default", p.Status)
	}
}

func TestImport_WeaklyTypedPrices(t *testing.T) {
	db := importDB(t)
	rows := []catalogService.ProductRow{
		{"name": "Kettle", "price": "1,299.00", "salePrice": "999.50"},
		{"name": "Mug", "price": "12.5", "inStock": "true", "rating": "4"},
	}

	res, err := catalogService.ImportProductsJSON(db, rows, 0)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 2 {
		t.Fatalf("imported = %d, want 2", res.Imported)
	}

	var kettle catalogEntity.Product
	db.Where("name = ?", "Kettle").First(&kettle)
	if kettle.Price != 1299 {
		t.Errorf("price = %v, want 1299 (comma stripped)", kettle.Price)
	}
	if kettle.SalePrice == nil || *kettle.SalePrice != 999.5 {
		t.Errorf("salePrice = %v, want 999.5", kettle.SalePrice)
	}

	var mug catalogEntity.Product
	db.Where("name = ?", "Mug").First(&mug)
	if !mug.InStock || mug.Rating != 4 {
		t.Errorf("mug = %+v, want inStock true and rating 4", mug)
	}
}

func TestImport_SkipsBadRowsWithWarnings(t *testing.T) {
	db := importDB(t)
	rows := []catalogService.ProductRow{
		{"name": "Good", "price": 10.0},
		{"price": 20.0}, // no name
		{"name": "Bad Price", "price": "not-a-number"}, // unparsable
	}

	res, err := catalogService.ImportProductsJSON(db, rows, 0)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 1 || res.Skipped != 2 {
		t.Errorf("imported/skipped = %d/%d, want 1/2", res.Imported, res.Skipped)
	}
	if len(res.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2", res.Warnings)
	}
}

func TestImport_UpsertByID(t *testing.T) {
	db := importDB(t)
	first := []catalogService.ProductRow{
		{"id": 7, "name": "Original", "price": 10.0},
	}
	if _, err := catalogService.ImportProductsJSON(db, first, 0); err != nil {
		t.Fatalf("first import: %v", err)
	}

	second := []catalogService.ProductRow{
		{"id": 7, "name": "Renamed", "price": 15.0},
	}
	if _, err := catalogService.ImportProductsJSON(db, second, 0); err != nil {
		t.Fatalf("second import: %v", err)
	}

	var count int64
	db.Model(&catalogEntity.Product{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1 (second import updates in place)", count)
	}
	var p catalogEntity.Product
	db.First(&p, 7)
	if p.Name != "Renamed" || p.Price != 15 {
		t.Errorf("product = %+v, want renamed at price 15", p)
	}
}

func TestImport_Batching(t *testing.T) {
	db := importDB(t)
	var rows []catalogService.ProductRow
	for i := 0; i < 25; i++ {
		rows = append(rows, catalogService.ProductRow{"name": fmt.Sprintf("P%02d", i), "price": float64(i)})
	}

	res, err := catalogService.ImportProductsJSON(db, rows, 10)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 25 {
		t.Errorf("imported = %d, want 25", res.Imported)
	}
	var count int64
	db.Model(&catalogEntity.Product{}).Count(&count)
	if count != 25 {
		t.Errorf("rows = %d, want 25", count)
	}
}
