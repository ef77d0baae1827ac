package api

import (
	"net/http"

	reqdto "baby-registry/internal/handler/dto/request"
	resdto "baby-registry/internal/handler/dto/response"
	"baby-registry/internal/handler/httperr"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewReservationHandler(cmds commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{cmds: cmds}
}

// @Summary Reserve item
// @Description Hold an item for a contributor while they pay. The same email may refresh its hold.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body reqdto.ReserveItemRequest true "Contributor email"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /items/{id}/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	itemID, ok := parseItemID(c)
	if !ok {
		return
	}
	var req reqdto.ReserveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		abortWithBindError(c, err)
		return
	}

	lease, err := h.cmds.Reserve(c.Request.Context(), itemID, req.Email)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLease(lease))
}

// @Summary Release reservation
// @Tags reservations
// @Param id path string true "Item ID"
// @Param email query string true "Contributor email that holds the reservation"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /items/{id}/reservations [delete]
func (h *ReservationHandler) Release(c *gin.Context) {
	itemID, ok := parseItemID(c)
	if !ok {
		return
	}
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrValidationFailed, "email query parameter is required", nil)
		return
	}

	if err := h.cmds.Release(c.Request.Context(), itemID, email); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
