package api

import (
	"net/http"

	reqdto "vinyl-record-house/internal/handler/dto/request"
	resdto "vinyl-record-house/internal/handler/dto/response"
	"vinyl-record-house/internal/handler/httperr"
	"vinyl-record-house/internal/handler/middleware"
	"vinyl-record-house/internal/usecase/commands"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CartHandler serves both signed-in and anonymous shoppers; the owner comes from the request context.
type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	owner, err := middleware.GetCartOwner(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetCart(c.Request.Context(), owner)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add to cart
// @Description Adds the quantity to any existing line for the record
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	owner, err := middleware.GetCartOwner(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.AddItem(c.Request.Context(), owner, req.RecordID, req.Quantity)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Set cart line quantity
// @Description Quantity 0 removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param record_id path string true "Record ID"
// @Param request body reqdto.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart/items/{record_id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	owner, err := middleware.GetCartOwner(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	recordID, ok := uuidParam(c, "record_id")
	if !ok {
		return
	}
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateItem(c.Request.Context(), owner, recordID, *req.Quantity)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove cart line
// @Tags cart
// @Produce json
// @Param record_id path string true "Record ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{record_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	owner, err := middleware.GetCartOwner(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	recordID, ok := uuidParam(c, "record_id")
	if !ok {
		return
	}
	view, err := h.cmds.RemoveItem(c.Request.Context(), owner, recordID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Tags cart
// @Success 204 "No Content"
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	owner, err := middleware.GetCartOwner(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.Clear(c.Request.Context(), owner); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
