package api

import (
	"net/http"
	"strings"

	resdto "vinyl-record-house/internal/handler/dto/response"
	"vinyl-record-house/internal/handler/httperr"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/usecase/commands"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WishlistHandler struct {
	cmds commands.WishlistCommands
	q    queries.WishlistQueries
}

func NewWishlistHandler(cmds commands.WishlistCommands, q queries.WishlistQueries) *WishlistHandler {
	return &WishlistHandler{cmds: cmds, q: q}
}

var errNoRecordIDs = errs.New("no valid record ids provided")

type toggleWishlistRequest struct {
	RecordID uuid.UUID `json:"record_id" binding:"required"`
}

// @Summary Get wishlist
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.WishlistItemResponse
// @Router /wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	items, err := h.q.List(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWishlist(items))
}

// @Summary Toggle wishlist entry
// @Tags wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} resdto.WishlistToggleResponse
// @Failure 404 {object} httperr.Response
// @Router /wishlist/toggle [post]
func (h *WishlistHandler) Toggle(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req toggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	added, err := h.cmds.Toggle(c.Request.Context(), actor.UserID, req.RecordID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WishlistToggleResponse{RecordID: req.RecordID.String(), Added: added})
}

// @Summary Remove wishlist entry
// @Tags wishlist
// @Security BearerAuth
// @Param record_id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /wishlist/items/{record_id} [delete]
func (h *WishlistHandler) Remove(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	recordID, ok := uuidParam(c, "record_id")
	if !ok {
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), actor.UserID, recordID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Move wishlist entry to cart
// @Tags wishlist
// @Security BearerAuth
// @Param record_id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /wishlist/items/{record_id}/move-to-cart [post]
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	recordID, ok := uuidParam(c, "record_id")
	if !ok {
		return
	}
	if err := h.cmds.MoveToCart(c.Request.Context(), actor.UserID, recordID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear wishlist
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WishlistClearResponse
// @Router /wishlist [delete]
func (h *WishlistHandler) Clear(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	removed, err := h.cmds.Clear(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WishlistClearResponse{Removed: removed})
}

// @Summary Wishlist status of one record
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Param record_id path string true "Record ID"
// @Success 200 {object} resdto.WishlistStatusResponse
// @Failure 400 {object} httperr.Response
// @Router /wishlist/status/{record_id} [get]
func (h *WishlistHandler) Status(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	recordID, ok := uuidParam(c, "record_id")
	if !ok {
		return
	}
	status, err := h.q.Status(c.Request.Context(), actor.UserID, []uuid.UUID{recordID})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WishlistStatusResponse{RecordID: recordID.String(), InWishlist: status[recordID]})
}

// @Summary Wishlist status of several records
// @Description Malformed ids in the comma separated list are skipped
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Param record_ids query string true "Comma separated record IDs"
// @Success 200 {object} resdto.WishlistBulkStatusResponse
// @Failure 400 {object} httperr.Response
// @Router /wishlist/status [get]
func (h *WishlistHandler) BulkStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ids := parseRecordIDs(c.Query("record_ids"))
	if len(ids) == 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoRecordIDs, "No valid record ids provided", nil)
		return
	}
	status, err := h.q.Status(c.Request.Context(), actor.UserID, ids)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWishlistStatus(status))
}

func parseRecordIDs(raw string) []uuid.UUID {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for part := range strings.SplitSeq(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
