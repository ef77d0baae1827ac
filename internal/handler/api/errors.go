package api

import (
	"net/http"

	"baby-registry/internal/handler/httperr"
	"baby-registry/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type statusRule struct {
	target  error
	status  int
	message string
}

// Order matters: the first matching sentinel wins.
var statusRules = []statusRule{
	{errs.ErrValidationFailed, http.StatusBadRequest, "Validation failed"},
	{errs.ErrIdempotencyKeyRequired, http.StatusBadRequest, "Idempotency-Key header is required"},
	{errs.ErrItemNotFound, http.StatusNotFound, "Item not found"},
	{errs.ErrAlreadyCompleted, http.StatusConflict, "Item already fully funded"},
	{errs.ErrReservedByOther, http.StatusConflict, "Item is reserved by another contributor"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request is currently being processed"},
	{errs.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "Idempotency-Key was used with a different request"},
	{errs.ErrNoRecipients, http.StatusBadRequest, "No recipients"},
	{errs.ErrSendFailed, http.StatusBadGateway, "Failed to send email"},
	{errs.ErrCacheOperationFailed, http.StatusServiceUnavailable, "Reservation service unavailable"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, r := range statusRules {
		if errs.Is(err, r.target) {
			httperr.AbortWithError(c, r.status, err, r.message, detailFor(r.status, err))
			return
		}
	}
	httperr.AbortInternal(c, err)
}

// detailFor exposes the cause for client errors only.
func detailFor(status int, err error) any {
	if status >= http.StatusInternalServerError {
		return nil
	}
	return err.Error()
}

func abortWithBindError(c *gin.Context, err error) {
	var ve validation.Errors
	if errs.As(err, &ve) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", ve)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}
