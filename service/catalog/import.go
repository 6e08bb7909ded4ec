package catalog

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// ProductRow is one raw import record. Prices arrive as numbers or numeric
// strings depending on the export source; decoding is weakly typed.
type ProductRow map[string]interface{}

type ImportResult struct {
	Imported int
	Skipped  int
	Warnings []string
}

type importProduct struct {
	ID        uint     `mapstructure:"id"`
	Name      string   `mapstructure:"name"`
	Price     float64  `mapstructure:"price"`
	SalePrice *float64 `mapstructure:"salePrice"`
	Category  string   `mapstructure:"category"`
	Brand     string   `mapstructure:"brand"`
	InStock   bool     `mapstructure:"inStock"`
	OnSale    bool     `mapstructure:"onSale"`
	Status    string   `mapstructure:"status"`
	Rating    float64  `mapstructure:"rating"`
	Image     *string  `mapstructure:"image"`
}

// stringToNumberHook converts numeric strings to float64 fields, trimming
// currency separators ("1,299.00" imports as 1299).
func stringToNumberHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Float64 {
			return data, nil
		}
		s := strings.ReplaceAll(strings.TrimSpace(data.(string)), ",", "")
		if s == "" {
			return float64(0), nil
		}
		return strconv.ParseFloat(s, 64)
	}
}

func decodeRow(row ProductRow) (*importProduct, error) {
	var p importProduct
	cfg := &mapstructure.DecoderConfig{
		DecodeHook:       stringToNumberHook(),
		WeaklyTypedInput: true,
		Result:           &p,
		TagName:          "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(map[string]interface{}(row)); err != nil {
		return nil, err
	}
	return &p, nil
}

// ImportProductsJSON upserts raw product rows in batches. Rows with no name
// or an unparsable price are skipped with a warning, never aborting the
// import.
func ImportProductsJSON(db *gorm.DB, rows []ProductRow, batchSize int) (*ImportResult, error) {
	if batchSize <= 0 {
		batchSize = 200
	}
	res := &ImportResult{}

	var batch []catalogEntity.Product
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			UpdateAll: true,
		}).CreateInBatches(batch, batchSize).Error
		if err != nil {
			return err
		}
		res.Imported += len(batch)
		batch = batch[:0]
		return nil
	}

	for i, row := range rows {
		p, err := decodeRow(row)
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: %v", i, err))
			continue
		}
		if p.Name == "" {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: missing name", i))
			continue
		}
		status := p.Status
		if status == "" {
			status = catalogEntity.StatusPublished
		}
		batch = append(batch, catalogEntity.Product{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			SalePrice: p.SalePrice,
			Category:  p.Category,
			Brand:     p.Brand,
			InStock:   p.InStock,
			OnSale:    p.OnSale,
			Status:    status,
			Rating:    p.Rating,
			Image:     p.Image,
		})
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return res, err
			}
		}
	}
	if err := flush(); err != nil {
		return res, err
	}
	return res, nil
}
