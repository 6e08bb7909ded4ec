package catalog

import "time"

// Product statuses. Anything but published is invisible to the storefront.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

type Product struct {
	ProductID uint     `gorm:"column:product_id;primaryKey;autoIncrement" json:"id"`
	Name      string   `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price     float64  `gorm:"column:price;not null" json:"price"`
	SalePrice *float64 `gorm:"column:sale_price" json:"salePrice,omitempty"`
	// Category and brand are matched by name, case-insensitively.
	Category  string    `gorm:"column:category;type:varchar(128);index" json:"category"`
	Brand     string    `gorm:"column:brand;type:varchar(128);index" json:"brand"`
	InStock   bool      `gorm:"column:in_stock;not null;default:true" json:"inStock"`
	OnSale    bool      `gorm:"column:on_sale;not null;default:false" json:"onSale"`
	Status    string    `gorm:"column:status;type:varchar(32);not null;default:published" json:"status"`
	Rating    float64   `gorm:"column:rating;not null;default:0" json:"rating"`
	Image     *string   `gorm:"column:image;type:varchar(255)" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Product) TableName() string {
	return "catalog_product"
}

// Published reports whether the product is visible on the storefront.
func (p *Product) Published() bool {
	return p.Status == StatusPublished
}
