package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/services"
	"github.com/nuevatoledo/hotel_pms_app/internal/dto"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// exchangeRateHandler handles HTTP requests for the display exchange rate.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs}
}

func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rate := rg.Group("/exchange-rate")
	{
		rate.GET("", h.getRate)
		rate.PUT("", h.overrideRate)
		rate.POST("/sync", h.syncRate)
	}
}

func toRateResponse(setting *domain.ExchangeRateSetting) dto.ExchangeRateResponse {
	return dto.ExchangeRateResponse{
		Rate:      setting.Rate,
		Source:    setting.Source,
		UpdatedAt: setting.UpdatedAt,
	}
}

func (h *exchangeRateHandler) getRate(c *gin.Context) {
	setting, err := h.rateService.GetRate(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRateResponse(setting))
}

func (h *exchangeRateHandler) overrideRate(c *gin.Context) {
	var req dto.SetExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	setting, err := h.rateService.OverrideRate(c.Request.Context(), req.Rate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRateResponse(setting))
}

// syncRate pulls the official rate. A provider failure is reported as 502
// while the cached rate stays in place.
func (h *exchangeRateHandler) syncRate(c *gin.Context) {
	setting, err := h.rateService.Sync(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Rate provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, toRateResponse(setting))
}
