//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"vinyl-record-house/internal/handler/api"
	resdto "vinyl-record-house/internal/handler/dto/response"
	"vinyl-record-house/internal/usecase/queries"
	"vinyl-record-house/tests/common/builder"
	"vinyl-record-house/tests/common/httptest"
	queriesmock "vinyl-record-house/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	handler := api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/records", handler.List)
	s.router.GET("/records/:id", handler.Get)
	s.router.GET("/records/slug/:slug", handler.GetBySlug)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestList() {
	s.Run("success: query parameters become the filter", func() {
		view := builder.NewRecordBuilder().BuildView()
		want := queries.RecordFilter{Genre: "Jazz", Query: "blue", InStockOnly: true}
		s.mockQueries.EXPECT().List(gomock.Any(), want, &queries.Cursor{After: "abc"}, 20).
			Return([]*queries.RecordView{view}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records?genre=Jazz&q=blue&in_stock=true&cursor=abc&limit=20", nil, "")

		var body resdto.Page[resdto.RecordResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("300.00", body.Items[0].Price)
		s.Equal("Miles Davis", body.Items[0].Artist.Name)
		s.True(body.Items[0].InStock)
		s.Empty(body.NextCursor)
	})

	s.Run("error: limit above the page cap", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records?limit=500", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

func (s *CatalogHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewRecordBuilder().WithStock(0).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records/"+view.ID.String(), nil, "")

		var body resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.False(body.InStock)
	})

	s.Run("error: unknown record", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrRecordNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Record not found")
	})

	s.Run("success: by slug", func() {
		view := builder.NewRecordBuilder().BuildView()
		s.mockQueries.EXPECT().GetBySlug(gomock.Any(), "kind-of-blue").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records/slug/kind-of-blue", nil, "")

		var body resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Kind of Blue", body.Title)
	})
}
