package support

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/model/entity"
)

func init() {
	api.RegisterModule(RegisterSupportRoutes)
}

func RegisterSupportRoutes(apiGroup *echo.Group, deps *api.Deps) {
	tickets := apiGroup.Group("/admin/tickets")

	tickets.GET("", func(c echo.Context) error {
		q := deps.DB.Order("ticket_id desc")
		if status := c.QueryParam("status"); status != "" {
			if !entity.ValidTicketStatus(status) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status: " + status})
			}
			q = q.Where("status = ?", status)
		}
		var list []entity.SupportTicket
		if err := q.Find(&list).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"tickets": list})
	})

	tickets.POST("", func(c echo.Context) error {
		var t entity.SupportTicket
		if err := c.Bind(&t); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if t.Subject == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "subject is required"})
		}
		t.Status = entity.TicketOpen
		if err := deps.DB.Create(&t).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, t)
	})

	// PATCH /api/admin/tickets/:id/status — the only mutable ticket field
	// after creation is its status.
	tickets.PATCH("/:id/status", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket id"})
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if !entity.ValidTicketStatus(body.Status) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status: " + body.Status})
		}
		var t entity.SupportTicket
		if err := deps.DB.First(&t, uint(id)).Error; err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		t.Status = body.Status
		if err := deps.DB.Save(&t).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, t)
	})

	followups := apiGroup.Group("/admin/followups")

	followups.GET("", func(c echo.Context) error {
		q := deps.DB.Order("due_at")
		if status := c.QueryParam("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		var list []entity.FollowUpCall
		if err := q.Find(&list).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"followups": list})
	})

	followups.POST("", func(c echo.Context) error {
		var f entity.FollowUpCall
		if err := c.Bind(&f); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if f.OrderRef == "" || f.Phone == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "orderRef and phone are required"})
		}
		f.Status = entity.FollowUpDue
		if err := deps.DB.Create(&f).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, f)
	})

	followups.PATCH("/:id/done", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid followup id"})
		}
		var f entity.FollowUpCall
		if err := deps.DB.First(&f, uint(id)).Error; err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "followup not found"})
		}
		f.Status = entity.FollowUpDone
		if err := deps.DB.Save(&f).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, f)
	})

	followups.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid followup id"})
		}
		if err := deps.DB.Delete(&entity.FollowUpCall{}, uint(id)).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	})
}
