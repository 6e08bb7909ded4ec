package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Campaign struct {
	CampaignID      uint    `gorm:"column:campaign_id;primaryKey;autoIncrement" json:"id"`
	Title           string  `gorm:"column:title;type:varchar(255);not null" json:"title"`
	DiscountPercent float64 `gorm:"column:discount_percent;not null;default:0" json:"discountPercent"`
	// BundleProductIDs holds the constituent product ids when the campaign
	// sells a bundle. Empty for plain discount campaigns.
	BundleProductIDs datatypes.JSONSlice[uint] `gorm:"column:bundle_product_ids" json:"bundleProductIds,omitempty"`
	StartsAt         *time.Time                `gorm:"column:starts_at" json:"startsAt,omitempty"`
	EndsAt           *time.Time                `gorm:"column:ends_at" json:"endsAt,omitempty"`
	Active           bool                      `gorm:"column:active;not null;default:false" json:"active"`
	CreatedAt        time.Time                 `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt        time.Time                 `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Campaign) TableName() string {
	return "marketing_campaign"
}

// Live reports whether the campaign discount applies at t.
func (c *Campaign) Live(t time.Time) bool {
	if !c.Active {
		return false
	}
	if c.StartsAt != nil && t.Before(*c.StartsAt) {
		return false
	}
	if c.EndsAt != nil && t.After(*c.EndsAt) {
		return false
	}
	return true
}
