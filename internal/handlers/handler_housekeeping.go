package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/services"
	"github.com/nuevatoledo/hotel_pms_app/internal/middleware"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// housekeepingHandler handles HTTP requests for cleaning tasks.
type housekeepingHandler struct {
	hkService portssvc.HousekeepingSvcFacade
}

func newHousekeepingHandler(hs portssvc.HousekeepingSvcFacade) *housekeepingHandler {
	return &housekeepingHandler{hkService: hs}
}

func registerHousekeepingRoutes(rg *gin.RouterGroup, hkService portssvc.HousekeepingSvcFacade) {
	h := newHousekeepingHandler(hkService)

	tasks := rg.Group("/housekeeping/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("/:id/advance", h.advanceTask)
	}
}

func (h *housekeepingHandler) listTasks(c *gin.Context) {
	var status *domain.HousekeepingStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.HousekeepingStatus(raw)
		status = &s
	}

	tasks, err := h.hkService.ListTasks(c.Request.Context(), status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *housekeepingHandler) advanceTask(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	task, err := h.hkService.AdvanceTask(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
