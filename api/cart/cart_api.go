package cart

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/config"
	"storefront.GO/model/entity"
	catalogEntity "storefront.GO/model/entity/catalog"
	cartService "storefront.GO/service/cart"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

func RegisterCartRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/cart")

	g.GET("", func(c echo.Context) error {
		session, ok := sessionID(c)
		if !ok {
			return nil
		}
		return respond(c, deps.Cart.Load(session))
	})

	// POST /api/cart/items — add a product or a campaign bundle. Adding the
	// same identity twice merges quantities; the captured price never moves.
	g.POST("/items", func(c echo.Context) error {
		session, ok := sessionID(c)
		if !ok {
			return nil
		}

		var body struct {
			ProductID  uint   `json:"productId"`
			VariantID  string `json:"variantId"`
			CampaignID uint   `json:"campaignId"`
			Quantity   int    `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Quantity < 1 {
			body.Quantity = 1
		}

		if body.CampaignID != 0 {
			return addBundle(c, deps, session, body.CampaignID, body.Quantity)
		}

		snap := deps.Catalog.Snapshot()
		var product *catalogEntity.Product
		for i := range snap.Products {
			if snap.Products[i].ProductID == body.ProductID {
				product = &snap.Products[i]
				break
			}
		}
		if product == nil || !product.Published() {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return respond(c, deps.Cart.AddProduct(session, *product, body.VariantID, body.Quantity))
	})

	g.PATCH("/items/:id", func(c echo.Context) error {
		session, ok := sessionID(c)
		if !ok {
			return nil
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
		}
		var body struct {
			Quantity  int    `json:"quantity"`
			VariantID string `json:"variantId"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		// Quantities below 1 are a no-op by contract, not an error.
		return respond(c, deps.Cart.UpdateQuantity(session, uint(id), body.Quantity, body.VariantID))
	})

	g.DELETE("/items/:id", func(c echo.Context) error {
		session, ok := sessionID(c)
		if !ok {
			return nil
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
		}
		return respond(c, deps.Cart.Remove(session, uint(id), c.QueryParam("variantId")))
	})

	g.DELETE("", func(c echo.Context) error {
		session, ok := sessionID(c)
		if !ok {
			return nil
		}
		return respond(c, deps.Cart.Clear(session))
	})
}

func addBundle(c echo.Context, deps *api.Deps, session string, campaignID uint, quantity int) error {
	var campaign entity.Campaign
	if err := deps.DB.First(&campaign, campaignID).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "campaign not found"})
	}
	if !campaign.Live(time.Now()) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "campaign is not active"})
	}

	snap := deps.Catalog.Snapshot()
	var items []catalogEntity.Product
	for _, id := range campaign.BundleProductIDs {
		for i := range snap.Products {
			if snap.Products[i].ProductID == id {
				items = append(items, snap.Products[i])
				break
			}
		}
	}
	if len(items) == 0 {
		return c.JSON(http.StatusConflict, echo.Map{"error": "campaign has no purchasable products"})
	}

	cart := deps.Cart.AddBundle(session, campaign.CampaignID, campaign.Title, items, campaign.DiscountPercent, quantity)
	return respond(c, cart)
}

// sessionID reads the cart session header. Writes the 400 itself so
// handlers can just bail out.
func sessionID(c echo.Context) (string, bool) {
	header := config.AppConfig.CartSessionHeader
	session := c.Request().Header.Get(header)
	if session == "" {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": header + " header is required"})
		return "", false
	}
	return session, true
}

func respond(c echo.Context, cart *cartService.Cart) error {
	items := cart.Items
	if items == nil {
		items = []cartService.LineItem{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":      items,
		"totalItems": cart.TotalItems(),
		"total":      cart.Total(),
	})
}
