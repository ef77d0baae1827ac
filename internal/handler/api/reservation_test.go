//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"baby-registry/internal/handler/api"
	resdto "baby-registry/internal/handler/dto/response"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/usecase/commands"
	"baby-registry/internal/usecase/shared"
	"baby-registry/tests/common/httptest"
	commandsmock "baby-registry/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockReservationCommands
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockReservationCommands(s.mockCtrl)
	handler := api.NewReservationHandler(s.mockCmds)

	s.router.POST("/api/items/:id/reservations", handler.Reserve)
	s.router.DELETE("/api/items/:id/reservations", handler.Release)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestReserve() {
	itemID := uuid.New()
	url := "/api/items/" + itemID.String() + "/reservations"

	s.Run("success: returns 201 with expiry", func() {
		expires := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
		s.mockCmds.EXPECT().Reserve(gomock.Any(), itemID, "anna@example.com").
			Return(&shared.Lease{ItemID: itemID, Holder: "anna@example.com", ExpiresAt: expires}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "anna@example.com"}, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(itemID, response.ItemID)
		s.True(expires.Equal(response.ExpiresAt))
	})

	s.Run("error: invalid email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "anna"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{"held by other", errs.Wrapf(commands.ErrReservedByOther, "reserved until 2026-03-01T10:30:00Z"), http.StatusConflict},
			{"completed", commands.ErrAlreadyCompleted, http.StatusConflict},
			{"unknown item", commands.ErrItemNotFound, http.StatusNotFound},
			{"cache down", errs.Mark(errors.New("dial tcp"), commands.ErrCacheOperationFailed), http.StatusServiceUnavailable},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCmds.EXPECT().Reserve(gomock.Any(), itemID, gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "anna@example.com"}, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestRelease() {
	itemID := uuid.New()
	url := "/api/items/" + itemID.String() + "/reservations"

	s.Run("success", func() {
		s.mockCmds.EXPECT().Release(gomock.Any(), itemID, "anna@example.com").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"?email=anna@example.com", nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: missing email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "email query parameter is required")
	})
}
