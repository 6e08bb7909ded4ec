package campaign

import (
	"time"

	"gorm.io/gorm"

	"storefront.GO/model/entity"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) (*CampaignRepository, error) {
	if err := db.AutoMigrate(&entity.Campaign{}); err != nil {
		return nil, err
	}
	return &CampaignRepository{db: db}, nil
}

// FetchLive returns campaigns whose discount applies at t.
func (r *CampaignRepository) FetchLive(t time.Time) ([]entity.Campaign, error) {
	var all []entity.Campaign
	if err := r.db.Where("active = ?", true).Order("campaign_id").Find(&all).Error; err != nil {
		return nil, err
	}
	live := all[:0]
	for _, c := range all {
		if c.Live(t) {
			live = append(live, c)
		}
	}
	return live, nil
}

// DeactivateExpired flips the active flag off for campaigns whose end date
// has passed. Returns the number of campaigns touched.
func (r *CampaignRepository) DeactivateExpired(t time.Time) (int64, error) {
	res := r.db.Model(&entity.Campaign{}).
		Where("active = ? AND ends_at IS NOT NULL AND ends_at < ?", true, t).
		Update("active", false)
	return res.RowsAffected, res.Error
}
