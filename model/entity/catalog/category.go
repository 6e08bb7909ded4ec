package catalog

type Category struct {
	CategoryID uint    `gorm:"column:category_id;primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"column:name;type:varchar(128);not null" json:"name"`
	ParentID   *uint   `gorm:"column:parent_id;index" json:"parentId,omitempty"`
	Count      int     `gorm:"column:count;not null;default:0" json:"count"`
	Image      *string `gorm:"column:image;type:varchar(255)" json:"image,omitempty"`

	// SubCategories is populated by the repository when building the tree.
	SubCategories []*Category `gorm:"-" json:"subCategories,omitempty"`
}

func (Category) TableName() string {
	return "catalog_category"
}
