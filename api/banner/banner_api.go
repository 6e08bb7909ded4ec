package banner

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/model/entity"
)

func init() {
	api.RegisterModule(RegisterBannerRoutes)
}

func RegisterBannerRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// GET /api/banners?page=home — enabled sections for one storefront page,
	// in position order. The theme builder writes them; the storefront only
	// reads.
	apiGroup.GET("/banners", func(c echo.Context) error {
		page := c.QueryParam("page")
		if page == "" {
			page = "home"
		}
		var banners []entity.Banner
		err := deps.DB.
			Where("page = ? AND enabled = ?", page, true).
			Order("position").
			Find(&banners).Error
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"banners": banners})
	})

	g := apiGroup.Group("/admin/banners")

	g.GET("", func(c echo.Context) error {
		var banners []entity.Banner
		if err := deps.DB.Order("page, position").Find(&banners).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"banners": banners})
	})

	g.POST("", func(c echo.Context) error {
		var banner entity.Banner
		if err := c.Bind(&banner); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if banner.Kind == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "kind is required"})
		}
		if err := deps.DB.Create(&banner).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, banner)
	})

	g.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid banner id"})
		}
		var banner entity.Banner
		if err := deps.DB.First(&banner, uint(id)).Error; err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "banner not found"})
		}
		var in entity.Banner
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		in.BannerID = banner.BannerID
		if err := deps.DB.Save(&in).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, in)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid banner id"})
		}
		if err := deps.DB.Delete(&entity.Banner{}, uint(id)).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	})
}
