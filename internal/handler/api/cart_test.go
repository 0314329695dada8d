//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/handler/api"
	reqdto "vinyl-record-house/internal/handler/dto/request"
	resdto "vinyl-record-house/internal/handler/dto/response"
	"vinyl-record-house/internal/handler/middleware"
	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/pkg/cookie"
	"vinyl-record-house/internal/usecase/queries"
	"vinyl-record-house/tests/common/httptest"
	commandsmock "vinyl-record-house/tests/mock/commands"
	queriesmock "vinyl-record-house/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const sessionKey = "0f1e2d3c4b5a69788796a5b4c3d2e1f0"

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	userID       uuid.UUID
	session      cart.Owner
	cookies      []*http.Cookie
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.userID = uuid.New()

	var err error
	s.session, err = cart.SessionOwner(sessionKey)
	s.Require().NoError(err)
	s.cookies = []*http.Cookie{{Name: cookie.CartSessionCookieName, Value: sessionKey}}

	handler := api.NewCartHandler(s.mockCommands, s.mockQueries)
	routes := func(g *gin.RouterGroup) {
		g.GET("", handler.Get)
		g.DELETE("", handler.Clear)
		g.POST("/items", handler.AddItem)
		g.PUT("/items/:record_id", handler.UpdateItem)
		g.DELETE("/items/:record_id", handler.RemoveItem)
	}
	routes(s.router.Group("/cart", middleware.CartSession(config.CookieConfig{})))
	routes(s.router.Group("/me/cart", fakeAuth(s.userID, user.RoleCustomer), middleware.CartSession(config.CookieConfig{})))
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func cartView(price int64, qty int) *queries.CartView {
	return queries.BuildCartView([]queries.CartLineView{{
		RecordID:      uuid.New(),
		Title:         "Kind of Blue",
		Quantity:      qty,
		UnitPrice:     price,
		StockQuantity: 10,
		IsAvailable:   true,
	}}, shippingPolicy)
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: anonymous caller reads the session cart", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.session).Return(cartView(20000, 2), nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/cart", nil, s.cookies, "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Lines, 1)
		s.Equal("400.00", body.Subtotal)
		s.Equal("50.00", body.ShippingCost)
		s.Equal("450.00", body.Total)
		s.Equal(2, body.TotalItems)
	})

	s.Run("success: first visit issues a session cookie", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), gomock.Any()).Return(queries.BuildCartView(nil, shippingPolicy), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		issued := httptest.ExtractCookie(rec, cookie.CartSessionCookieName)
		s.Require().NotNil(issued)
		s.NotEmpty(issued.Value)
	})

	s.Run("success: signed-in caller reads the user cart", func() {
		owner, err := cart.UserOwner(s.userID)
		s.Require().NoError(err)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), owner).Return(queries.BuildCartView(nil, shippingPolicy), nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me/cart", nil, s.cookies, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Lines)
		s.Equal("0.00", body.Total)
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	recordID := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.session, recordID, 2).Return(cartView(15000, 2), nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/cart/items",
			reqdto.AddCartItemRequest{RecordID: recordID, Quantity: 2}, s.cookies, "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("300.00", body.Subtotal)
	})

	s.Run("error: quantity below one is rejected before the use case", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/cart/items",
			map[string]any{"record_id": recordID, "quantity": 0}, s.cookies, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: more than the shelf holds", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.session, recordID, 5).
			Return(nil, &catalog.InsufficientStockError{RecordID: recordID, Title: "Blue Train", Requested: 5, Available: 2}).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/cart/items",
			reqdto.AddCartItemRequest{RecordID: recordID, Quantity: 5}, s.cookies, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
	})

	s.Run("error: unknown record", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.session, recordID, 1).Return(nil, catalog.ErrRecordNotFound).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/cart/items",
			reqdto.AddCartItemRequest{RecordID: recordID, Quantity: 1}, s.cookies, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Record not found")
	})
}

func (s *CartHandlerTestSuite) TestUpdateItem() {
	recordID := uuid.New()

	s.Run("success: zero quantity is passed through", func() {
		s.mockCommands.EXPECT().UpdateItem(gomock.Any(), s.session, recordID, 0).
			Return(queries.BuildCartView(nil, shippingPolicy), nil).Times(1)

		zero := 0
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPut, "/cart/items/"+recordID.String(),
			reqdto.UpdateCartItemRequest{Quantity: &zero}, s.cookies, "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Lines)
	})

	s.Run("error: missing quantity", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPut, "/cart/items/"+recordID.String(),
			map[string]any{}, s.cookies, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: malformed record id", func() {
		one := 1
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPut, "/cart/items/nope",
			reqdto.UpdateCartItemRequest{Quantity: &one}, s.cookies, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid record_id")
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	s.Run("error: record is not in the cart", func() {
		recordID := uuid.New()
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.session, recordID).Return(nil, cart.ErrItemNotInCart).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, "/cart/items/"+recordID.String(), nil, s.cookies, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Record is not in the cart")
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), s.session).Return(nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, "/cart", nil, s.cookies, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
