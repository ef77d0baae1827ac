//go:build e2e

package contribution_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	reqdto "baby-registry/internal/handler/dto/request"
	resdto "baby-registry/internal/handler/dto/response"
	"baby-registry/tests/common/dbtest"
	"baby-registry/tests/common/httptest"
	"baby-registry/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const contributionsURL = "/api/contributions"

type contributionSuite struct {
	e2e.SharedSuite
}

func TestContributionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(contributionSuite))
}

func (s *contributionSuite) submit(itemID uuid.UUID, amount float64, email string, key uuid.UUID) (int, *resdto.ContributionResultResponse) {
	body := reqdto.CreateContributionRequest{
		ItemID:             itemID,
		Amount:             amount,
		ContributorName:    "Anna",
		ContributorSurname: "Verdi",
		ContributorEmail:   email,
		Message:            "Auguri!",
		PaymentMethod:      "paypal",
	}
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, contributionsURL, body,
		map[string]string{"Idempotency-Key": key.String()})

	if w.Code != http.StatusCreated && w.Code != http.StatusOK {
		return w.Code, nil
	}
	var res resdto.ContributionResultResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return w.Code, &res
}

func (s *contributionSuite) getItem(itemID uuid.UUID) *resdto.ItemResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/items/"+itemID.String(), nil, "")
	var res resdto.ItemResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return &res
}

func (s *contributionSuite) TestPartialContributionsAccumulate() {
	itemID := dbtest.CreateItem(s.T(), s.DB, dbtest.ItemFixture{Name: "Stroller", Price: "100.00"})

	code, res := s.submit(itemID, 40, "anna@example.com", uuid.New())
	s.Require().Equal(http.StatusCreated, code)
	s.InDelta(40.0, res.NewContributedAmount, 0.0001)
	s.False(res.Completed)

	code, res = s.submit(itemID, 50, "marco@example.com", uuid.New())
	s.Require().Equal(http.StatusCreated, code)
	s.InDelta(90.0, res.NewContributedAmount, 0.0001)
	s.False(res.Completed)

	s.Equal("90.00", dbtest.ContributedAmount(s.T(), s.DB, itemID))

	item := s.getItem(itemID)
	s.InDelta(10.0, item.Remaining, 0.0001)
	s.Require().Len(item.Contributions, 2)
	s.InDelta(40.0, item.Contributions[0].Amount, 0.0001)
	s.InDelta(50.0, item.Contributions[1].Amount, 0.0001)
}

func (s *contributionSuite) TestOvershootCompletesItem() {
	itemID := dbtest.CreateItem(s.T(), s.DB, dbtest.ItemFixture{Price: "100.00"})

	_, _ = s.submit(itemID, 40, "anna@example.com", uuid.New())
	code, res := s.submit(itemID, 70, "marco@example.com", uuid.New())

	s.Require().Equal(http.StatusCreated, code)
	s.InDelta(110.0, res.NewContributedAmount, 0.0001)
	s.True(res.Completed)

	code, _ = s.submit(itemID, 5, "luca@example.com", uuid.New())
	s.Equal(http.StatusConflict, code)

	count, sum := dbtest.ContributionSum(s.T(), s.DB, itemID)
	s.Equal(2, count)
	s.Equal("110.00", sum)
}

func (s *contributionSuite) TestRejectedSubmissionsLeaveNoTrace() {
	testCases := []struct {
		name        string
		unknownItem bool
		amount      float64
		email       string
		status      int
	}{
		{name: "zero amount", amount: 0, email: "anna@example.com", status: http.StatusBadRequest},
		{name: "negative amount", amount: -10, email: "anna@example.com", status: http.StatusBadRequest},
		{name: "invalid email", amount: 10, email: "not-an-email", status: http.StatusBadRequest},
		{name: "unknown item", unknownItem: true, amount: 10, email: "anna@example.com", status: http.StatusNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			itemID := dbtest.CreateItem(s.T(), s.DB, dbtest.ItemFixture{Price: "100.00"})
			target := itemID
			if tc.unknownItem {
				target = uuid.New()
			}

			code, _ := s.submit(target, tc.amount, tc.email, uuid.New())

			s.Equal(tc.status, code)
			count, _ := dbtest.ContributionSum(s.T(), s.DB, itemID)
			s.Zero(count)
			s.Equal("0.00", dbtest.ContributedAmount(s.T(), s.DB, itemID))
		})
	}
}

func (s *contributionSuite) TestIdempotentReplay() {
	itemID := dbtest.CreateItem(s.T(), s.DB, dbtest.ItemFixture{Price: "100.00"})
	key := uuid.New()

	code, first := s.submit(itemID, 25, "anna@example.com", key)
	s.Require().Equal(http.StatusCreated, code)

	code, second := s.submit(itemID, 25, "anna@example.com", key)
	s.Require().Equal(http.StatusOK, code)
	s.Equal(first.ContributionID, second.ContributionID)
	s.True(second.Replayed)

	code, _ = s.submit(itemID, 30, "anna@example.com", key)
	s.Equal(http.StatusUnprocessableEntity, code)

	count, sum := dbtest.ContributionSum(s.T(), s.DB, itemID)
	s.Equal(1, count)
	s.Equal("25.00", sum)
}

func (s *contributionSuite) TestConcurrentContributionsSumExactly() {
	itemID := dbtest.CreateItem(s.T(), s.DB, dbtest.ItemFixture{Price: "1000.00"})

	const workers = 20
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[int]int{}
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := s.submit(itemID, 12.34, fmt.Sprintf("guest%d@example.com", i), uuid.New())
			mu.Lock()
			codes[code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Equal(map[int]int{http.StatusCreated: workers}, codes)

	count, sum := dbtest.ContributionSum(s.T(), s.DB, itemID)
	s.Equal(workers, count)
	s.Equal("246.80", sum)
	s.Equal(sum, dbtest.ContributedAmount(s.T(), s.DB, itemID))
}

func (s *contributionSuite) TestConcurrentReplaysInsertOnce() {
	itemID := dbtest.CreateItem(s.T(), s.DB, dbtest.ItemFixture{Price: "100.00"})
	key := uuid.New()

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := s.submit(itemID, 10, "anna@example.com", key)
			if code == http.StatusCreated {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, created)
	count, _ := dbtest.ContributionSum(s.T(), s.DB, itemID)
	s.Equal(1, count)
	s.Equal("10.00", dbtest.ContributedAmount(s.T(), s.DB, itemID))
}

func (s *contributionSuite) TestReservationBlocksOtherContributors() {
	itemID := dbtest.CreateItem(s.T(), s.DB, dbtest.ItemFixture{Price: "300.00"})
	reserveURL := "/api/items/" + itemID.String() + "/reservations"

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reserveURL,
		reqdto.ReserveItemRequest{Email: "anna@example.com"}, "")
	var lease resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &lease)
	s.Equal("anna@example.com", lease.Email)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reserveURL,
		reqdto.ReserveItemRequest{Email: "marco@example.com"}, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")

	code, _ := s.submit(itemID, 50, "marco@example.com", uuid.New())
	s.Equal(http.StatusConflict, code)

	code, _ = s.submit(itemID, 50, "anna@example.com", uuid.New())
	s.Equal(http.StatusCreated, code)

	// the holder's lease is released after a successful contribution
	code, _ = s.submit(itemID, 50, "marco@example.com", uuid.New())
	s.Equal(http.StatusCreated, code)
}
