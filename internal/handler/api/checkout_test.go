//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/handler/api"
	reqdto "vinyl-record-house/internal/handler/dto/request"
	resdto "vinyl-record-house/internal/handler/dto/response"
	"vinyl-record-house/internal/usecase/commands"
	"vinyl-record-house/internal/usecase/queries"
	"vinyl-record-house/tests/common/builder"
	"vinyl-record-house/tests/common/httptest"
	commandsmock "vinyl-record-house/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.userID = uuid.New()
	handler := api.NewCheckoutHandler(s.mockCommands)

	s.router.POST("/checkout", fakeAuth(s.userID, user.RoleCustomer), handler.Checkout)
	s.router.POST("/checkout/paid", fakeAuth(s.userID, user.RoleCustomer), handler.CheckoutPaid)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func placedView(status order.Status) *queries.OrderView {
	id := uuid.New()
	recordID := uuid.New()
	return &queries.OrderView{
		ID:           id,
		OrderNumber:  order.NumberFor(id),
		Status:       string(status),
		Email:        "buyer@example.com",
		FullName:     "Ada Wong",
		Subtotal:     20000,
		ShippingCost: 5000,
		TotalAmount:  25000,
		Items: []queries.OrderItemView{{
			RecordID: &recordID, Title: "Kind of Blue", Artist: "Miles Davis", Year: 1959,
			UnitPrice: 20000, Quantity: 1, LineTotal: 20000,
		}},
		TotalItems:     1,
		CanBeCancelled: true,
	}
}

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	url := "/checkout"
	reqBody := builder.NewCheckoutBuilder().BuildDTO()

	s.Run("success: returns 201 with a pending order", func() {
		expected := commands.CheckoutRequest{UserID: s.userID, Input: reqBody.ToDomain()}
		s.mockCommands.EXPECT().Checkout(gomock.Any(), expected).
			Return(placedView(order.StatusPending), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pending", body.Status)
		s.Equal("250.00", body.TotalAmount)
		s.Equal("50.00", body.ShippingCost)
		s.Require().Len(body.Items, 1)
		s.Equal("200.00", body.Items[0].UnitPrice)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 409 names the short record", func() {
		recordID := uuid.New()
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).
			Return(nil, &catalog.InsufficientStockError{RecordID: recordID, Title: "Blue Train", Requested: 2, Available: 1}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Error  struct{ Message string } `json:"error"`
			Detail struct {
				RecordID  string `json:"record_id"`
				Title     string `json:"title"`
				Requested int    `json:"requested"`
				Available int    `json:"available"`
			} `json:"detail"`
		}
		s.Equal(http.StatusConflict, rec.Code)
		s.Require().NoError(jsonDecode(rec, &body))
		s.Equal("Insufficient stock", body.Error.Message)
		s.Equal(recordID.String(), body.Detail.RecordID)
		s.Equal(2, body.Detail.Requested)
		s.Equal(1, body.Detail.Available)
	})

	s.Run("error: 422 lists every invalid field", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).
			Return(nil, order.ValidationErrors{
				{Field: "email", Message: "is not a valid email address"},
				{Field: "billing.city", Message: "is required"},
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CheckoutRequest{}, "bearer-token")

		var body struct {
			Detail []order.FieldError `json:"detail"`
		}
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Require().NoError(jsonDecode(rec, &body))
		s.Len(body.Detail, 2)
		s.Equal("billing.city", body.Detail[1].Field)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "empty cart", commandsError: order.ErrEmptyCart, expectedStatus: http.StatusBadRequest, expectedMsg: "Cart is empty"},
			{name: "storage failure", commandsError: commands.ErrPersistenceFailure, expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
			{name: "unknown error", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CheckoutHandlerTestSuite) TestCheckoutPaid() {
	url := "/checkout/paid"
	paid := reqdto.PaidCheckoutRequest{
		CheckoutRequest:     builder.NewCheckoutBuilder().BuildDTO(),
		PaymentSessionToken: "cs_test_1",
	}

	s.Run("success: returns 201 with a confirmed order", func() {
		view := placedView(order.StatusConfirmed)
		view.PaymentReference = "pi_1"
		s.mockCommands.EXPECT().CheckoutPaid(gomock.Any(), commands.CheckoutRequest{
			UserID:              s.userID,
			Input:               paid.ToDomain(),
			PaymentSessionToken: "cs_test_1",
		}).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, paid, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("confirmed", body.Status)
		s.Equal("pi_1", body.PaymentReference)
	})

	s.Run("error: 400 without a session token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, paid.CheckoutRequest, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps payment errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not paid", commandsError: commands.ErrPaymentNotConfirmed, expectedStatus: http.StatusPaymentRequired, expectedMsg: "Payment not confirmed"},
			{name: "amount mismatch", commandsError: commands.ErrPaymentAmountMismatch, expectedStatus: http.StatusConflict, expectedMsg: "Paid amount does not match order total"},
			{name: "gateway down", commandsError: commands.ErrPaymentUnavailable, expectedStatus: http.StatusServiceUnavailable, expectedMsg: "Payment service unavailable"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CheckoutPaid(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, paid, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
