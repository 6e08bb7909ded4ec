package staff

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/model/entity"
)

func init() {
	api.RegisterModule(RegisterStaffRoutes)
}

func RegisterStaffRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/admin/staff")

	g.GET("", func(c echo.Context) error {
		var users []entity.StaffUser
		if err := deps.DB.Order("user_id").Find(&users).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"staff": users})
	})

	g.POST("", func(c echo.Context) error {
		var u entity.StaffUser
		if err := c.Bind(&u); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if u.Username == nil || *u.Username == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
		}
		if err := deps.DB.Create(&u).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, u)
	})

	g.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid staff id"})
		}
		var u entity.StaffUser
		if err := deps.DB.First(&u, uint(id)).Error; err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "staff user not found"})
		}
		var in entity.StaffUser
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		in.UserID = u.UserID
		if err := deps.DB.Save(&in).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, in)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid staff id"})
		}
		if err := deps.DB.Delete(&entity.StaffUser{}, uint(id)).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	})
}
