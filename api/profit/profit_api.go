package profit

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	profitService "storefront.GO/service/profit"
)

func init() {
	api.RegisterModule(RegisterProfitRoutes)
}

func RegisterProfitRoutes(apiGroup *echo.Group, _ *api.Deps) {
	// POST /api/admin/profit/calc — per-unit economics for the admin
	// profit screen, with the ±10% sensitivity matrix.
	apiGroup.POST("/admin/profit/calc", func(c echo.Context) error {
		var in profitService.Input
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		steps := []float64{0.9, 1.0, 1.1}
		return c.JSON(http.StatusOK, echo.Map{
			"stats":       profitService.Calculate(in),
			"sensitivity": profitService.Sensitivity(in, steps, steps),
		})
	})
}
