//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"baby-registry/internal/handler/api"
	resdto "baby-registry/internal/handler/dto/response"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/usecase/notification"
	"baby-registry/tests/common/httptest"
	notificationmock "baby-registry/tests/mock/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MailingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockNotifier *notificationmock.MockNotifier
}

func (s *MailingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockNotifier = notificationmock.NewMockNotifier(s.mockCtrl)
	handler := api.NewMailingHandler(s.mockNotifier)

	s.router.POST("/api/admin/emails/broadcast", handler.Broadcast)
	s.router.POST("/api/admin/emails/single", handler.Single)
}

func (s *MailingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMailingHandlerSuite(t *testing.T) {
	suite.Run(t, new(MailingHandlerTestSuite))
}

func (s *MailingHandlerTestSuite) TestBroadcast() {
	url := "/api/admin/emails/broadcast"

	s.Run("success: omitted recipients means every contributor", func() {
		s.mockNotifier.EXPECT().Broadcast(gomock.Any(), notification.BroadcastInput{Subject: "News", HTML: "<p>hi</p>"}).
			Return(7, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"subject": "News", "body": "<p>hi</p>"}, "")

		var response resdto.EmailSentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OK)
		s.Equal(7, response.Count)
	})

	s.Run("success: explicit recipients are passed through", func() {
		s.mockNotifier.EXPECT().Broadcast(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in notification.BroadcastInput) (int, error) {
				s.Require().NotNil(in.Recipients)
				s.Equal([]string{"a@x.com", "A@x.com"}, *in.Recipients)
				return 1, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"subject": "News", "body": "<p>hi</p>", "recipients": []string{"a@x.com", "A@x.com"}}, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: blank recipients pass through", func() {
		s.mockNotifier.EXPECT().Broadcast(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in notification.BroadcastInput) (int, error) {
				s.Require().NotNil(in.Recipients)
				s.Equal([]string{"", " "}, *in.Recipients)
				return 3, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"subject": "News", "body": "b", "recipients": []string{"", " "}}, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: validation", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{"missing subject", map[string]any{"body": "<p>hi</p>"}},
			{"missing body", map[string]any{"subject": "News"}},
			{"malformed recipient", map[string]any{"subject": "News", "body": "x", "recipients": []string{"nope"}}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
			})
		}
	})

	s.Run("error: notifier failures", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{"no recipients", notification.ErrNoRecipients, http.StatusBadRequest},
			{"transport failure", errs.Mark(errors.New("535"), notification.ErrSendFailed), http.StatusBadGateway},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockNotifier.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return(0, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"subject": "s", "body": "b"}, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *MailingHandlerTestSuite) TestSingle() {
	url := "/api/admin/emails/single"

	s.Run("success", func() {
		s.mockNotifier.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return(2, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"subject": "Hi", "body": "b", "recipients": []string{"a@x.com", "b@x.com"}}, "")

		var response resdto.EmailSentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Count)
	})

	s.Run("error: recipients are required", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{"missing", map[string]any{"subject": "Hi", "body": "b"}},
			{"only blanks", map[string]any{"subject": "Hi", "body": "b", "recipients": []string{""}}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
			})
		}
	})
}
