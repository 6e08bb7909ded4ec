package catalog

type Brand struct {
	BrandID uint    `gorm:"column:brand_id;primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"column:name;type:varchar(128);not null;uniqueIndex" json:"name"`
	Logo    *string `gorm:"column:logo;type:varchar(255)" json:"logo,omitempty"`
	Image   *string `gorm:"column:image;type:varchar(255)" json:"image,omitempty"`
}

func (Brand) TableName() string {
	return "catalog_brand"
}
