package campaign

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/core/cache"
	"storefront.GO/model/entity"
	catalogEntity "storefront.GO/model/entity/catalog"
	campaignRepo "storefront.GO/model/repository/campaign"
	"storefront.GO/service/pricing"
)

func init() {
	api.RegisterModule(RegisterCampaignRoutes)
}

const cacheTagCampaign = "campaign"

func RegisterCampaignRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// GET /api/campaigns/active — live campaigns with derived display
	// percentages, for banners and bundle widgets.
	apiGroup.GET("/campaigns/active", func(c echo.Context) error {
		if v, ok := cache.GetInstance().Get("campaigns:active"); ok {
			return c.JSON(http.StatusOK, v)
		}
		repo, err := campaignRepo.NewCampaignRepository(deps.DB)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		live, err := repo.FetchLive(time.Now())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		snap := deps.Catalog.Snapshot()
		out := make([]echo.Map, 0, len(live))
		for _, cp := range live {
			var bundle []echo.Map
			var sum, discounted float64
			for _, id := range cp.BundleProductIDs {
				for i := range snap.Products {
					if snap.Products[i].ProductID == id {
						p := snap.Products[i]
						bundle = append(bundle, echo.Map{"id": p.ProductID, "name": p.Name, "price": p.Price})
						break
					}
				}
			}
			discounted, sum = bundleTotals(snap.Products, cp)
			out = append(out, echo.Map{
				"campaign":        cp,
				"bundleItems":     bundle,
				"bundlePrice":     discounted,
				"bundleListPrice": sum,
				"displayPercent":  pricing.DiscountPercent(sum, discounted),
			})
		}
		resp := echo.Map{"campaigns": out}
		cache.GetInstance().Set("campaigns:active", resp, 60, []string{cacheTagCampaign})
		return c.JSON(http.StatusOK, resp)
	})

	// Admin CRUD
	g := apiGroup.Group("/admin/campaigns")

	g.GET("", func(c echo.Context) error {
		var campaigns []entity.Campaign
		if err := deps.DB.Order("campaign_id").Find(&campaigns).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"campaigns": campaigns})
	})

	g.POST("", func(c echo.Context) error {
		var campaign entity.Campaign
		if err := c.Bind(&campaign); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if campaign.DiscountPercent < 0 || campaign.DiscountPercent >= 100 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "discountPercent must be in [0, 100)"})
		}
		if err := deps.DB.Create(&campaign).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		cache.GetInstance().DeleteByTag(cacheTagCampaign)
		return c.JSON(http.StatusCreated, campaign)
	})

	g.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid campaign id"})
		}
		var campaign entity.Campaign
		if err := deps.DB.First(&campaign, uint(id)).Error; err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campaign not found"})
		}
		var in entity.Campaign
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		in.CampaignID = campaign.CampaignID
		if err := deps.DB.Save(&in).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		cache.GetInstance().DeleteByTag(cacheTagCampaign)
		return c.JSON(http.StatusOK, in)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid campaign id"})
		}
		if err := deps.DB.Delete(&entity.Campaign{}, uint(id)).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		cache.GetInstance().DeleteByTag(cacheTagCampaign)
		return c.NoContent(http.StatusNoContent)
	})
}

// bundleTotals resolves the campaign's constituents against the snapshot and
// prices them as a set. Returns (0, 0) for non-bundle campaigns.
func bundleTotals(products []catalogEntity.Product, cp entity.Campaign) (discounted, sum float64) {
	var items []catalogEntity.Product
	for _, id := range cp.BundleProductIDs {
		for i := range products {
			if products[i].ProductID == id {
				items = append(items, products[i])
				break
			}
		}
	}
	if len(items) == 0 {
		return 0, 0
	}
	return pricing.BundlePrice(items, cp.DiscountPercent)
}
