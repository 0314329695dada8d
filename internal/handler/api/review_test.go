//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/domain/review"
	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/handler/api"
	resdto "vinyl-record-house/internal/handler/dto/response"
	"vinyl-record-house/internal/usecase/commands"
	"vinyl-record-house/internal/usecase/queries"
	"vinyl-record-house/tests/common/builder"
	"vinyl-record-house/tests/common/httptest"
	"vinyl-record-house/tests/common/testutil"
	commandsmock "vinyl-record-house/tests/mock/commands"
	queriesmock "vinyl-record-house/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actorID      uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	s.router.POST("/reviews", fakeAuth(s.actorID, user.RoleCustomer), s.handler.Create)
	s.router.GET("/reviews/mine", fakeAuth(s.actorID, user.RoleCustomer), s.handler.ListMine)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.PUT("/reviews/:id", fakeAuth(s.actorID, user.RoleCustomer), s.handler.Update)
	s.router.DELETE("/reviews/:id", fakeAuth(s.actorID, user.RoleCustomer), s.handler.Delete)
	s.router.GET("/records/:id/reviews", s.handler.ListByRecord)
	s.router.GET("/records/:id/rating-stats", s.handler.RatingStats)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReviewBuilder().BuildViewQuery()
	expectedResult := &commands.CreateReviewResult{ReviewID: returnView.ID}

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		{name: "title length invalid (201 chars)", mutate: testutil.Field("title", strings.Repeat("t", 201)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReview{
		{name: "missing field: record_id (required)", mutate: testutil.Field("record_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: rating (required)", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment (required)", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
	}

	empty := []testCaseReview{
		{name: "empty comment", mutate: testutil.Field("comment", ""), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody.ToCommand(), s.actorID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body.ID)
		s.Equal("Flawless pressing", body.Title)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range [][]testCaseReview{bound, missing, empty} {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.Payload(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actorID).
							Return(expectedResult, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "record not found", commandsError: catalog.ErrRecordNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Record not found"},
			{name: "already reviewed", commandsError: review.ErrReviewExists, expectedStatus: http.StatusConflict, expectedMsg: "Record already reviewed"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGet() {
	returnView := builder.NewReviewBuilder().BuildViewQuery()

	s.Run("success: returns the review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/"+returnView.ID.String(), nil, "")

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.RecordID.String(), body.RecordID)
		s.Equal(returnView.CreatedAt.Unix(), body.CreatedAt)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for an unknown review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, queries.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdate() {
	existing := builder.NewReviewBuilder().BuildViewQuery()
	url := "/reviews/" + existing.ID.String()

	s.Run("success: omitted fields are kept", func() {
		rating := 3
		expectedCmd := commands.UpdateReviewRequest{Rating: 3, Title: existing.Title, Comment: existing.Comment}

		s.mockQueries.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil).Times(2)
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), existing.ID, expectedCmd, s.actorID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": rating}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for an out-of-range rating", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 9}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 for someone else's review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil).Times(1)
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), existing.ID, gomock.Any(), s.actorID).
			Return(review.ErrReviewNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"comment": "Changed my mind"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/reviews/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), id, gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown review", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), id, gomock.Any()).Return(review.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

// ================================================================================
// TestListByRecord / TestRatingStats
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByRecord() {
	recordID := uuid.New()
	url := "/records/" + recordID.String() + "/reviews"
	views := []*queries.ReviewView{
		builder.NewReviewBuilder().WithRecordID(recordID).BuildViewQuery(),
		builder.NewReviewBuilder().WithRecordID(recordID).AsPoorRating().BuildViewQuery(),
	}

	s.Run("success: returns a page with the next cursor", func() {
		s.mockQueries.EXPECT().ListByRecord(gomock.Any(), recordID, &queries.Cursor{After: "abc"}, 2).
			Return(views, &queries.Cursor{After: "next-page"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=abc&limit=2", nil, "")

		var body resdto.Page[resdto.ReviewResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal("next-page", body.NextCursor)
	})

	s.Run("error: 400 for a limit over the maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=101", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 for a bad cursor", func() {
		s.mockQueries.EXPECT().ListByRecord(gomock.Any(), recordID, gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=zzz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *ReviewHandlerTestSuite) TestListMine() {
	s.Run("success: the caller's reviews with their record titles", func() {
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().WithUserID(s.actorID).BuildViewQuery(),
		}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actorID, (*queries.Cursor)(nil), 5).
			Return(views, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/mine?limit=5", nil, "bearer-token")

		var body resdto.Page[resdto.ReviewResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(s.actorID.String(), body.Items[0].UserID)
		s.Empty(body.NextCursor)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/mine", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ReviewHandlerTestSuite) TestRatingStats() {
	b := builder.NewReviewBuilder()
	stats := b.BuildRatingStats()

	s.mockQueries.EXPECT().RatingStats(gomock.Any(), stats.RecordID).Return(stats, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records/"+stats.RecordID.String()+"/rating-stats", nil, "")

	var body resdto.RatingStatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(10, body.TotalReviews)
	s.InDelta(4.2, body.AverageRating, 0.001)
}
