package api

import (
	"net/http"

	reqdto "vinyl-record-house/internal/handler/dto/request"
	resdto "vinyl-record-house/internal/handler/dto/response"
	"vinyl-record-house/internal/handler/httperr"
	"vinyl-record-house/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Checkout (pay later)
// @Description Turns the signed-in user's cart into a pending order
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Billing and shipping details"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Checkout(c.Request.Context(), commands.CheckoutRequest{
		UserID: actor.UserID,
		Input:  req.ToDomain(),
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary Checkout (paid)
// @Description Confirms the payment session, then places a confirmed order
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PaidCheckoutRequest true "Billing details and payment session"
// @Success 201 {object} resdto.OrderResponse
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout/paid [post]
func (h *CheckoutHandler) CheckoutPaid(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.PaidCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CheckoutPaid(c.Request.Context(), commands.CheckoutRequest{
		UserID:              actor.UserID,
		Input:               req.ToDomain(),
		PaymentSessionToken: req.PaymentSessionToken,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}
