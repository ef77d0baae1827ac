package api

import (
	"net/http"

	reqdto "baby-registry/internal/handler/dto/request"
	resdto "baby-registry/internal/handler/dto/response"
	"baby-registry/internal/usecase/notification"

	"github.com/gin-gonic/gin"
)

type MailingHandler struct {
	notifier notification.Notifier
}

func NewMailingHandler(notifier notification.Notifier) *MailingHandler {
	return &MailingHandler{notifier: notifier}
}

// @Summary Broadcast email
// @Description Send one BCC message to the given recipients, or to every distinct contributor when recipients is omitted
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BroadcastRequest true "Broadcast"
// @Success 200 {object} resdto.EmailSentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/emails/broadcast [post]
func (h *MailingHandler) Broadcast(c *gin.Context) {
	var req reqdto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		abortWithBindError(c, err)
		return
	}
	h.send(c, req.ToInput())
}

// @Summary Email selected contributors
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SingleEmailRequest true "Message and recipients"
// @Success 200 {object} resdto.EmailSentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/emails/single [post]
func (h *MailingHandler) Single(c *gin.Context) {
	var req reqdto.SingleEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		abortWithBindError(c, err)
		return
	}
	h.send(c, req.ToInput())
}

func (h *MailingHandler) send(c *gin.Context, in notification.BroadcastInput) {
	count, err := h.notifier.Broadcast(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.EmailSentResponse{OK: true, Count: count})
}
