package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Banner is one theme-builder section on a storefront page. Config carries
// the section's free-form settings (colors, headline, linked campaign, ...)
// as produced by the admin theme editor.
type Banner struct {
	BannerID  uint           `gorm:"column:banner_id;primaryKey;autoIncrement" json:"id"`
	Page      string         `gorm:"column:page;type:varchar(64);not null;index" json:"page"`
	Position  int            `gorm:"column:position;not null;default:0" json:"position"`
	Kind      string         `gorm:"column:kind;type:varchar(64);not null" json:"kind"`
	Config    datatypes.JSON `gorm:"column:config" json:"config,omitempty"`
	Enabled   bool           `gorm:"column:enabled;not null;default:true" json:"enabled"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Banner) TableName() string {
	return "theme_banner"
}
