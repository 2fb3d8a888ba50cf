package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/services"
)

// paymentMethodHandler serves the fixed payment-method catalog.
type paymentMethodHandler struct {
	methodService portssvc.PaymentMethodSvcFacade
}

func newPaymentMethodHandler(ms portssvc.PaymentMethodSvcFacade) *paymentMethodHandler {
	return &paymentMethodHandler{methodService: ms}
}

func registerPaymentMethodRoutes(rg *gin.RouterGroup, methodService portssvc.PaymentMethodSvcFacade) {
	h := newPaymentMethodHandler(methodService)

	methods := rg.Group("/payment-methods")
	{
		methods.GET("", h.listMethods)
		methods.GET("/:id", h.getMethod)
	}
}

func (h *paymentMethodHandler) listMethods(c *gin.Context) {
	methods, err := h.methodService.ListMethods(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

func (h *paymentMethodHandler) getMethod(c *gin.Context) {
	method, err := h.methodService.GetMethodByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, method)
}
