package api

import (
	"net/http"

	reqdto "baby-registry/internal/handler/dto/request"
	resdto "baby-registry/internal/handler/dto/response"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerIdempotencyKey = "Idempotency-Key"

type ContributionHandler struct {
	cmds commands.ContributionCommands
}

func NewContributionHandler(cmds commands.ContributionCommands) *ContributionHandler {
	return &ContributionHandler{cmds: cmds}
}

// @Summary Submit contribution
// @Description Record a pledge toward an item. Retries with the same Idempotency-Key return the original result.
// @Tags contributions
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Client-generated UUID"
// @Param request body reqdto.CreateContributionRequest true "Contribution"
// @Success 201 {object} resdto.ContributionResultResponse
// @Success 200 {object} resdto.ContributionResultResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /contributions [post]
func (h *ContributionHandler) Create(c *gin.Context) {
	key, err := idempotencyKey(c)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	var req reqdto.CreateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToInput(), key)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromContributionResult(result))
}

func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(headerIdempotencyKey)
	if raw == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}
	key, err := uuid.Parse(raw)
	if err != nil || key == uuid.Nil {
		return uuid.Nil, errs.Mark(errs.New("invalid idempotency key format"), errs.ErrValidationFailed)
	}
	return key, nil
}
