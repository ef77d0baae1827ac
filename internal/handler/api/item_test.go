//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"baby-registry/internal/handler/api"
	resdto "baby-registry/internal/handler/dto/response"
	"baby-registry/internal/usecase/commands"
	"baby-registry/internal/usecase/queries"
	"baby-registry/tests/common/builder"
	"baby-registry/tests/common/httptest"
	"baby-registry/tests/common/testutil"
	commandsmock "baby-registry/tests/mock/commands"
	queriesmock "baby-registry/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCmds    *commandsmock.MockItemCommands
	mockQueries *queriesmock.MockItemQueries
	handler     *api.ItemHandler
}

func (s *ItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockItemCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockItemQueries(s.mockCtrl)
	s.handler = api.NewItemHandler(s.mockCmds, s.mockQueries)

	s.router.GET("/api/items", s.handler.List)
	s.router.GET("/api/items/:id", s.handler.Get)
	s.router.POST("/api/admin/items", s.handler.Create)
	s.router.PUT("/api/admin/items/:id", s.handler.Update)
	s.router.DELETE("/api/admin/items/:id", s.handler.Delete)
}

func (s *ItemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}

func (s *ItemHandlerTestSuite) TestList() {
	priority := builder.NewItemBuilder().AsPriority().BuildView()
	other := builder.NewItemBuilder().WithPrice(40).WithContributed(40).BuildView()
	contribution := builder.NewContributionBuilder().ForItem(other.ID).WithAmount(40).BuildView()
	other.Contributions = []*queries.ContributionView{contribution}

	s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.ItemView{priority, other}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items", nil, "")

	var response []resdto.ItemResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 2)
	s.True(response[0].IsPriority)
	s.Empty(response[0].Contributions)
	s.True(response[1].IsCompleted)
	s.Require().Len(response[1].Contributions, 1)
	s.Equal("Giulia", response[1].Contributions[0].ContributorName)
	s.NotContains(rec.Body.String(), contribution.ContributorEmail, "public listing must not leak emails")
}

func (s *ItemHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewItemBuilder().WithContributed(25).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items/"+view.ID.String(), nil, "")

		var response resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(25.0, response.ContributedAmount)
		s.Equal(75.0, response.Remaining)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})

	s.Run("invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item ID format")
	})
}

func (s *ItemHandlerTestSuite) TestCreate() {
	b := builder.NewItemBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the stored item", func() {
		s.mockCmds.EXPECT().Create(gomock.Any(), reqBody.ToInput()).Return(b.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/items", reqBody, "")

		var response resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal("Stroller", response.Name)
	})

	s.Run("error: 400 on validation", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing name", testutil.Field("name", nil)},
			{"zero price", testutil.Field("price", 0)},
			{"price below a cent", testutil.Field("price", 0.001)},
			{"bad image url", testutil.Field("imageUrl", "not a url")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/items", requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
			})
		}
	})
}

func (s *ItemHandlerTestSuite) TestUpdate() {
	existing := builder.NewItemBuilder().WithContributed(30).BuildView()
	url := "/api/admin/items/" + existing.ID.String()

	s.Run("success: applies only present fields", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil).Times(2)
		s.mockCmds.EXPECT().Update(gomock.Any(), existing.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.ItemInput) error {
				s.Equal(existing.Name, in.Name)
				s.Equal(250.0, in.Price)
				s.Equal(existing.ImageURL, in.ImageURL)
				s.Nil(in.ContributedAmount)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"price": 250}, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: contributed amount override", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil).Times(2)
		s.mockCmds.EXPECT().Update(gomock.Any(), existing.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.ItemInput) error {
				s.Require().NotNil(in.ContributedAmount)
				s.Equal(0.0, *in.ContributedAmount)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"contributedAmount": 0}, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: empty name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": ""}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: unknown item", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/admin/items/"+id.String(), map[string]any{"price": 10}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}

func (s *ItemHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCmds.EXPECT().Delete(gomock.Any(), id).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/items/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("not found", func() {
		s.mockCmds.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrItemNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/items/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}
