package api

import (
	"net/http"

	resdto "baby-registry/internal/handler/dto/response"
	"baby-registry/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	details *resdto.PaymentDetailsResponse
}

func NewPaymentHandler(cfg config.Config) *PaymentHandler {
	return &PaymentHandler{details: resdto.FromRegistryConfig(cfg.Registry)}
}

// @Summary Payment details
// @Description Where to send the money once a contribution is recorded
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.PaymentDetailsResponse
// @Router /payment-details [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.details)
}
