package httperr

import (
	"net/http"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/domain/review"
	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/domain/wishlist"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/usecase/commands"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var ErrUnauthorized = errs.New("unauthorized")

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// StockDetail is returned with 409 so the client can point at the short line.
type StockDetail struct {
	RecordID  string `json:"record_id"`
	Title     string `json:"title"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

type TransitionDetail struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use-case error to its status. Unknown errors become a bare 500.
func Abort(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (status int, msg string, detail any) {
	var stockErr *catalog.InsufficientStockError
	if errs.As(err, &stockErr) {
		return http.StatusConflict, "Insufficient stock", StockDetail{
			RecordID:  stockErr.RecordID.String(),
			Title:     stockErr.Title,
			Requested: stockErr.Requested,
			Available: stockErr.Available,
		}
	}
	var fieldErrs order.ValidationErrors
	if errs.As(err, &fieldErrs) {
		return http.StatusUnprocessableEntity, "Validation failed", []order.FieldError(fieldErrs)
	}
	var transitionErr *order.InvalidTransitionError
	if errs.As(err, &transitionErr) {
		return http.StatusConflict, "Invalid order status transition", TransitionDetail{
			From: transitionErr.From.String(),
			To:   transitionErr.To.String(),
		}
	}

	switch {
	case errs.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized", nil
	case errs.Is(err, commands.ErrInvalidCredentials),
		errs.Is(err, commands.ErrAuthenticationFailed),
		errs.Is(err, commands.ErrTokenValidation):
		return http.StatusUnauthorized, "Invalid email or password", nil
	case errs.Is(err, commands.ErrUserInactive), errs.Is(err, queries.ErrUserInactive):
		return http.StatusForbidden, "Account is inactive", nil

	case errs.Is(err, order.ErrEmptyCart):
		return http.StatusBadRequest, "Cart is empty", nil
	case errs.Is(err, commands.ErrPaymentTokenRequired):
		return http.StatusBadRequest, "Payment session token is required", nil
	case errs.Is(err, commands.ErrPaymentNotConfirmed):
		return http.StatusPaymentRequired, "Payment not confirmed", nil
	case errs.Is(err, commands.ErrPaymentAmountMismatch):
		return http.StatusConflict, "Paid amount does not match order total", nil
	case errs.Is(err, commands.ErrPaymentAlreadyUsed):
		return http.StatusConflict, "Payment already used", nil
	case errs.Is(err, commands.ErrPaymentUnavailable):
		return http.StatusServiceUnavailable, "Payment service unavailable", nil

	case errs.Is(err, commands.ErrStaffOnly),
		errs.Is(err, review.ErrReviewNotOwned):
		return http.StatusForbidden, "Forbidden", nil

	case errs.Is(err, commands.ErrOrderNotFound), errs.Is(err, queries.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found", nil
	case errs.Is(err, catalog.ErrRecordNotFound), errs.Is(err, queries.ErrRecordNotFound):
		return http.StatusNotFound, "Record not found", nil
	case errs.Is(err, review.ErrReviewNotFound), errs.Is(err, queries.ErrReviewNotFound):
		return http.StatusNotFound, "Review not found", nil
	case errs.Is(err, commands.ErrUserNotFound), errs.Is(err, queries.ErrUserNotFound):
		return http.StatusNotFound, "User not found", nil
	case errs.Is(err, commands.ErrProfileNotFound), errs.Is(err, queries.ErrProfileNotFound):
		return http.StatusNotFound, "Profile not found", nil
	case errs.Is(err, cart.ErrItemNotInCart):
		return http.StatusNotFound, "Record is not in the cart", nil
	case errs.Is(err, wishlist.ErrNotInWishlist):
		return http.StatusNotFound, "Record is not in the wishlist", nil

	case errs.Is(err, commands.ErrEmailTaken):
		return http.StatusConflict, "Email already registered", nil
	case errs.Is(err, review.ErrReviewExists):
		return http.StatusConflict, "Record already reviewed", nil

	case errs.Is(err, cart.ErrInvalidOwner):
		return http.StatusBadRequest, "Cart session missing", nil
	case errs.Is(err, commands.ErrRegistrationInvalid),
		errs.Is(err, catalog.ErrInvalidQuantity),
		errs.Is(err, order.ErrInvalidStatus),
		errs.Is(err, queries.ErrInvalidCursor),
		errs.Is(err, queries.ErrTooManyRecords),
		errs.Is(err, review.ErrInvalidRating),
		errs.Is(err, review.ErrEmptyComment),
		errs.Is(err, review.ErrCommentTooLong),
		errs.Is(err, review.ErrEmptyTitle),
		errs.Is(err, review.ErrTitleTooLong),
		errs.Is(err, user.ErrNameTooLong),
		errs.Is(err, user.ErrPhoneTooLong):
		return http.StatusBadRequest, err.Error(), nil
	}

	return http.StatusInternalServerError, "Internal server error", nil
}
