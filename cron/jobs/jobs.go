package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"storefront.GO/core/cache"
	campaignRepo "storefront.GO/model/repository/campaign"
	catalogService "storefront.GO/service/catalog"
)

// Job dependencies, wired once at boot. Jobs are no-ops until Init runs so
// `cron:start -j <job>` without a full server boot fails soft.
var (
	store *catalogService.Store
	db    *gorm.DB
)

func Init(s *catalogService.Store, database *gorm.DB) {
	store = s
	db = database
}

// CatalogReloadJob re-loads the catalog store. Store listeners (cart prune)
// fire as part of the load; cached catalog responses are invalidated.
func CatalogReloadJob(args ...string) {
	if store == nil {
		log.Println("catalogreload: store not initialized, skipping")
		return
	}
	if err := store.Load(); err != nil {
		log.Printf("catalogreload: %v", err)
		return
	}
	cache.GetInstance().DeleteByTag("catalog")
}

// CampaignExpiryJob deactivates campaigns whose end date has passed.
func CampaignExpiryJob(args ...string) {
	if db == nil {
		log.Println("campaignexpiry: db not initialized, skipping")
		return
	}
	repo, err := campaignRepo.NewCampaignRepository(db)
	if err != nil {
		log.Printf("campaignexpiry: %v", err)
		return
	}
	n, err := repo.DeactivateExpired(time.Now())
	if err != nil {
		log.Printf("campaignexpiry: %v", err)
		return
	}
	if n > 0 {
		log.Printf("campaignexpiry: deactivated %d campaigns", n)
		cache.GetInstance().DeleteByTag("campaign")
	}
}
