package api

import (
	"net/http"

	reqdto "vinyl-record-house/internal/handler/dto/request"
	resdto "vinyl-record-house/internal/handler/dto/response"
	"vinyl-record-house/internal/handler/httperr"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List records
// @Description Browse the catalog, newest first
// @Tags records
// @Produce json
// @Param genre query string false "Genre name"
// @Param artist query string false "Artist name"
// @Param q query string false "Title or artist search"
// @Param in_stock query bool false "Only records in stock"
// @Param featured query bool false "Only featured records"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} resdto.Page[resdto.RecordResponse]
// @Failure 400 {object} httperr.Response
// @Router /records [get]
func (h *CatalogHandler) List(c *gin.Context) {
	var q reqdto.RecordListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	filter := queries.RecordFilter{
		Genre:        q.Genre,
		Artist:       q.Artist,
		Query:        q.Q,
		InStockOnly:  q.InStockOnly,
		FeaturedOnly: q.FeaturedOnly,
	}

	records, next, err := h.q.List(c.Request.Context(), filter, cursor, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromRecordList(records), next))
}

// @Summary Get record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.RecordResponse
// @Failure 404 {object} httperr.Response
// @Router /records/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecordView(view))
}

// @Summary Get record by slug
// @Tags records
// @Produce json
// @Param slug path string true "Record slug"
// @Success 200 {object} resdto.RecordResponse
// @Failure 404 {object} httperr.Response
// @Router /records/slug/{slug} [get]
func (h *CatalogHandler) GetBySlug(c *gin.Context) {
	view, err := h.q.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecordView(view))
}
