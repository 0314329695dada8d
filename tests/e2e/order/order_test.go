//go:build e2e

package order_test

import (
	"net/http"
	"sync"
	"testing"

	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/handler/dto/request"
	"vinyl-record-house/internal/handler/dto/response"
	"vinyl-record-house/internal/handler/httperr"
	"vinyl-record-house/internal/usecase/shared"
	"vinyl-record-house/tests/common/authtest"
	"vinyl-record-house/tests/common/dbtest"
	"vinyl-record-house/tests/common/httptest"
	"vinyl-record-house/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL         = "/api/cart"
	cartItemsURL    = "/api/cart/items"
	checkoutURL     = "/api/checkout"
	paidCheckoutURL = "/api/checkout/paid"
	ordersURL       = "/api/orders"
)

type orderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

func checkoutForm() request.CheckoutRequest {
	return request.CheckoutRequest{
		Email:     "buyer@example.com",
		FirstName: "Ada",
		LastName:  "Wong",
		Phone:     "+852 5555 0000",
		Billing: request.AddressRequest{
			AddressLine1: "1 Nathan Road",
			City:         "Hong Kong",
			PostalCode:   "000000",
			Country:      "Hong Kong",
		},
	}
}

func (s *orderSuite) addToCart(token string, recordID uuid.UUID, qty int) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
		request.AddCartItemRequest{RecordID: recordID, Quantity: qty}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func (s *orderSuite) checkout(token string) response.OrderResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, checkoutForm(), token)
	var placed response.OrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &placed)
	return placed
}

func (s *orderSuite) TestCheckout() {
	s.Run("pay-later checkout places a pending order", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleCustomer))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Kind of Blue", Price: 20000, Stock: 5, Available: true})

		s.addToCart(token, recordID, 2)
		placed := s.checkout(token)

		require.Equal(t, "pending", placed.Status)
		require.Equal(t, "400.00", placed.Subtotal)
		require.Equal(t, "50.00", placed.ShippingCost)
		require.Equal(t, "450.00", placed.TotalAmount)
		require.Len(t, placed.Items, 1)
		require.Equal(t, "Kind of Blue", placed.Items[0].Title)
		require.Equal(t, 2, placed.Items[0].Quantity)
		require.True(t, placed.CanBeCancelled)
		require.NotEmpty(t, placed.OrderNumber)

		require.Equal(t, 3, dbtest.RecordStock(t, s.DB, recordID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		var cartRes response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cartRes)
		require.Empty(t, cartRes.Lines, "cart must be cleared by checkout")

		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, shared.NotificationKindOrderConfirmation))
	})

	s.Run("subtotal at the threshold ships free", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "free@example.com", string(user.RoleCustomer))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Blue Train", Price: 25000, Stock: 2, Available: true})

		s.addToCart(token, recordID, 2)
		placed := s.checkout(token)

		require.Equal(t, "0.00", placed.ShippingCost)
		require.Equal(t, "500.00", placed.TotalAmount)
		require.Equal(t, 0, dbtest.RecordStock(t, s.DB, recordID))
	})

	s.Run("empty cart is rejected", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "empty@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, checkoutForm(), token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Cart is empty")
	})

	s.Run("stock sold elsewhere rolls the whole checkout back", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "late@example.com", string(user.RoleCustomer))
		plenty := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Giant Steps", Price: 18000, Stock: 10, Available: true})
		scarce := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "A Love Supreme", Price: 22000, Stock: 2, Available: true})

		s.addToCart(token, plenty, 1)
		s.addToCart(token, scarce, 2)
		_, err := s.DB.Exec(t.Context(), "UPDATE vinyl_records SET stock_quantity = 1 WHERE id = $1", scarce)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, checkoutForm(), token)
		var detail httperr.StockDetail
		httptest.AssertErrorDetail(t, w, http.StatusConflict, "Insufficient stock", &detail)
		require.Equal(t, httperr.StockDetail{RecordID: scarce.String(), Title: "A Love Supreme", Requested: 2, Available: 1}, detail)

		require.Equal(t, 10, dbtest.RecordStock(t, s.DB, plenty))
		require.Equal(t, 1, dbtest.RecordStock(t, s.DB, scarce))
		require.Equal(t, 0, dbtest.CountNotificationJobs(t, s.DB, shared.NotificationKindOrderConfirmation))

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		var cartRes response.CartResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &cartRes)
		require.Len(t, cartRes.Lines, 2, "cart survives a failed checkout")
	})

	s.Run("invalid form reports field errors", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "form@example.com", string(user.RoleCustomer))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Mingus Ah Um", Price: 15000, Stock: 1, Available: true})
		s.addToCart(token, recordID, 1)

		form := checkoutForm()
		form.Email = "not-an-email"
		form.Billing.City = ""
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, form, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Validation failed")
		require.Equal(t, 1, dbtest.RecordStock(t, s.DB, recordID))
	})
}

func (s *orderSuite) TestPaidCheckout() {
	tests := []struct {
		name           string
		session        *e2e.FakeSession
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "confirmed payment places a confirmed order",
			session:        &e2e.FakeSession{PaymentStatus: "paid", AmountTotal: 45000, PaymentIntent: "pi_e2e_1"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unpaid session",
			session:        &e2e.FakeSession{PaymentStatus: "unpaid", AmountTotal: 45000},
			expectedStatus: http.StatusPaymentRequired,
			expectedError:  "Payment not confirmed",
		},
		{
			name:           "unknown session",
			expectedStatus: http.StatusPaymentRequired,
			expectedError:  "Payment not confirmed",
		},
		{
			name:           "paid amount differs from the order total",
			session:        &e2e.FakeSession{PaymentStatus: "paid", AmountTotal: 40000, PaymentIntent: "pi_e2e_2"},
			expectedStatus: http.StatusConflict,
			expectedError:  "Paid amount does not match order total",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "payer@example.com", string(user.RoleCustomer))
			recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Kind of Blue", Price: 20000, Stock: 5, Available: true})
			s.addToCart(token, recordID, 2)

			sessionToken := "cs_" + uuid.NewString()
			if tt.session != nil {
				s.Payment.Put(sessionToken, *tt.session)
			}

			body := request.PaidCheckoutRequest{CheckoutRequest: checkoutForm(), PaymentSessionToken: sessionToken}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, paidCheckoutURL, body, token)

			if tt.expectedError != "" {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedError)
				require.Equal(t, 5, dbtest.RecordStock(t, s.DB, recordID))
				return
			}

			var placed response.OrderResponse
			httptest.AssertSuccessResponse(t, w, tt.expectedStatus, &placed)
			require.Equal(t, "confirmed", placed.Status)
			require.Equal(t, tt.session.PaymentIntent, placed.PaymentReference)
			require.Equal(t, 3, dbtest.RecordStock(t, s.DB, recordID))
		})
	}
}

func (s *orderSuite) TestCancel() {
	s.Run("owner cancels a pending order and stock comes back", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "canceller@example.com", string(user.RoleCustomer))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Kind of Blue", Price: 20000, Stock: 4, Available: true})
		s.addToCart(token, recordID, 3)
		placed := s.checkout(token)
		require.Equal(t, 1, dbtest.RecordStock(t, s.DB, recordID))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+placed.ID+"/cancel", nil, token)
		var cancelled response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)

		require.Equal(t, "cancelled", cancelled.Status)
		require.False(t, cancelled.CanBeCancelled)
		require.Equal(t, 4, dbtest.RecordStock(t, s.DB, recordID))
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, shared.NotificationKindOrderCancelled))

		// a second cancel is a transition error and must not restore twice
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+placed.ID+"/cancel", nil, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Equal(t, 4, dbtest.RecordStock(t, s.DB, recordID))
	})

	s.Run("delivered order cannot be cancelled", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "late-cancel@example.com", string(user.RoleCustomer))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Blue Train", Price: 15000, Stock: 2, Available: true})
		s.addToCart(token, recordID, 1)
		placed := s.checkout(token)
		dbtest.SetOrderStatus(t, s.DB, uuid.MustParse(placed.ID), "delivered")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+placed.ID+"/cancel", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Invalid order status transition")
		require.Equal(t, 1, dbtest.RecordStock(t, s.DB, recordID))
	})

	s.Run("another customer cannot cancel and sees no order", func() {
		t := s.T()
		_, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleCustomer))
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Giant Steps", Price: 18000, Stock: 2, Available: true})
		s.addToCart(ownerToken, recordID, 1)
		placed := s.checkout(ownerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+placed.ID+"/cancel", nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Order not found")
		require.Equal(t, "pending", dbtest.OrderStatus(t, s.DB, uuid.MustParse(placed.ID)))
	})
}

func (s *orderSuite) TestOrderSnapshot() {
	s.Run("catalog edits after checkout leave the order items untouched", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "snapshot@example.com", string(user.RoleCustomer))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Kind of Blue", Price: 20000, Stock: 5, Available: true})
		s.addToCart(token, recordID, 2)
		placed := s.checkout(token)

		dbtest.UpdateRecord(t, s.DB, recordID, "Kind of Blue (Remastered)", 35000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+placed.ID, nil, token)
		var fetched response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, placed.Items, fetched.Items)
		require.Equal(t, "Kind of Blue", fetched.Items[0].Title)
		require.Equal(t, "200.00", fetched.Items[0].UnitPrice)
		require.Equal(t, "450.00", fetched.TotalAmount)
	})

	s.Run("deleting the record keeps the line and drops only its link", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "deleted@example.com", string(user.RoleCustomer))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Blue Train", Price: 15000, Stock: 3, Available: true})
		s.addToCart(token, recordID, 1)
		placed := s.checkout(token)

		dbtest.DeleteRecord(t, s.DB, recordID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+placed.ID, nil, token)
		var fetched response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Len(t, fetched.Items, 1)
		require.Nil(t, fetched.Items[0].RecordID)
		require.Equal(t, "Blue Train", fetched.Items[0].Title)
		require.Equal(t, "150.00", fetched.Items[0].UnitPrice)
		require.Equal(t, 1, fetched.Items[0].Quantity)
	})

	s.Run("an order whose record was deleted still cancels", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "orphan@example.com", string(user.RoleCustomer))
		kept := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Giant Steps", Price: 18000, Stock: 4, Available: true})
		gone := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "A Love Supreme", Price: 22000, Stock: 2, Available: true})
		s.addToCart(token, kept, 2)
		s.addToCart(token, gone, 1)
		placed := s.checkout(token)
		require.Equal(t, 2, dbtest.RecordStock(t, s.DB, kept))

		dbtest.DeleteRecord(t, s.DB, gone)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+placed.ID+"/cancel", nil, token)
		var cancelled response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)
		require.Len(t, cancelled.Items, 2)
		require.Equal(t, 4, dbtest.RecordStock(t, s.DB, kept), "surviving records get their stock back")
		require.Equal(t, "cancelled", dbtest.OrderStatus(t, s.DB, uuid.MustParse(placed.ID)))
	})
}

func (s *orderSuite) TestConcurrentCheckout() {
	s.Run("two buyers of the last copy: one order, one conflict", func() {
		t := s.T()
		_, firstToken := authtest.CreateAndLogin(t, s.DB, s.Router, "first-buyer@example.com", string(user.RoleCustomer))
		_, secondToken := authtest.CreateAndLogin(t, s.DB, s.Router, "second-buyer@example.com", string(user.RoleCustomer))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Mingus Ah Um", Price: 30000, Stock: 1, Available: true})
		s.addToCart(firstToken, recordID, 1)
		s.addToCart(secondToken, recordID, 1)

		var wg sync.WaitGroup
		start := make(chan struct{})
		codes := make([]int, 2)
		for i, token := range []string{firstToken, secondToken} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, checkoutForm(), token)
				codes[i] = w.Code
			}()
		}
		close(start)
		wg.Wait()

		require.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)
		require.Equal(t, 0, dbtest.RecordStock(t, s.DB, recordID), "stock never goes negative")
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, shared.NotificationKindOrderConfirmation))
	})
}

func (s *orderSuite) TestListAndStatus() {
	s.Run("customer lists own orders and staff ships one", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "lister@example.com", string(user.RoleCustomer))
		_, staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Kind of Blue", Price: 20000, Stock: 5, Available: true})

		s.addToCart(token, recordID, 1)
		first := s.checkout(token)
		s.addToCart(token, recordID, 1)
		second := s.checkout(token)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, token)
		var page response.Page[response.OrderListItemResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 2)
		require.Equal(t, second.ID, page.Items[0].ID, "newest order first")
		require.Equal(t, first.ID, page.Items[1].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, ordersURL+"/"+first.ID+"/status",
			request.UpdateOrderStatusRequest{Status: "shipped"}, token)
		require.Equal(t, http.StatusForbidden, w.Code, "customers cannot move orders")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, ordersURL+"/"+first.ID+"/status",
			request.UpdateOrderStatusRequest{Status: "shipped"}, staffToken)
		var shipped response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &shipped)
		require.Equal(t, "shipped", shipped.Status)
		require.NotNil(t, shipped.ShippedAt)
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, shared.NotificationKindOrderStatus))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+first.ID, nil, token)
		var fetched response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, "shipped", fetched.Status)
		require.False(t, fetched.CanBeCancelled)
	})
}

func (s *orderSuite) TestInvoice() {
	s.Run("owner gets an invoice with the frozen lines", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "invoiced@example.com", string(user.RoleCustomer))
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "nosy@example.com", string(user.RoleCustomer))
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Kind of Blue", Price: 20000, Stock: 5, Available: true})
		s.addToCart(token, recordID, 2)
		placed := s.checkout(token)
		dbtest.UpdateRecord(t, s.DB, recordID, "Kind of Blue (Mono)", 99000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+placed.ID+"/invoice", nil, token)
		var invoice response.InvoiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &invoice)
		require.Equal(t, "INV-"+placed.OrderNumber, invoice.InvoiceNumber)
		require.Equal(t, placed.ID, invoice.OrderID)
		require.False(t, invoice.Paid)
		require.False(t, invoice.Void)
		require.Equal(t, "Ada Wong", invoice.BillTo.Name)
		require.Len(t, invoice.Lines, 1)
		require.Equal(t, "Kind of Blue", invoice.Lines[0].Title)
		require.Equal(t, "400.00", invoice.Subtotal)
		require.Equal(t, "450.00", invoice.TotalAmount)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+placed.ID+"/invoice", nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Order not found")
	})
}

func (s *orderSuite) TestAnonymousCart() {
	s.Run("session cookie keeps the cart between requests", func() {
		t := s.T()
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Kind of Blue", Price: 20000, Stock: 3, Available: true})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			request.AddCartItemRequest{RecordID: recordID, Quantity: 1}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		session := httptest.ExtractCookie(w, "cart_session")
		require.NotNil(t, session, "anonymous visitors get a cart session")

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, cartURL, nil, []*http.Cookie{session}, "")
		var cartRes response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cartRes)
		require.Len(t, cartRes.Lines, 1)
		require.Equal(t, 1, cartRes.TotalItems)
		require.Equal(t, "200.00", cartRes.Subtotal)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, "")
		var fresh response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fresh)
		require.Empty(t, fresh.Lines, "a new visitor starts with an empty cart")
	})

	s.Run("adding beyond stock is refused", func() {
		t := s.T()
		recordID := dbtest.CreateTestRecord(t, s.DB, dbtest.RecordSeed{Title: "Blue Train", Price: 15000, Stock: 1, Available: true})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			request.AddCartItemRequest{RecordID: recordID, Quantity: 2}, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
