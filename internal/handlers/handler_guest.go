package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/services"
)

// guestHandler handles HTTP requests for the guest directory.
type guestHandler struct {
	guestService portssvc.GuestSvcFacade
}

func newGuestHandler(gs portssvc.GuestSvcFacade) *guestHandler {
	return &guestHandler{guestService: gs}
}

func registerGuestRoutes(rg *gin.RouterGroup, guestService portssvc.GuestSvcFacade) {
	h := newGuestHandler(guestService)

	guests := rg.Group("/guests")
	{
		guests.GET("", h.listGuests)
		guests.GET("/:id", h.getGuest)
	}
}

func (h *guestHandler) listGuests(c *gin.Context) {
	guests, err := h.guestService.ListGuests(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

func (h *guestHandler) getGuest(c *gin.Context) {
	guest, err := h.guestService.GetGuestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}
