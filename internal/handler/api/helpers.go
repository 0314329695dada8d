package api

import (
	"net/http"

	reqdto "vinyl-record-house/internal/handler/dto/request"
	"vinyl-record-house/internal/handler/httperr"
	"vinyl-record-house/internal/handler/middleware"
	"vinyl-record-house/internal/usecase/queries"
	"vinyl-record-house/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// requireActor aborts with 401 when an authenticated route lost its user context.
func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func bindPage(c *gin.Context, q *reqdto.PageQuery) (*queries.Cursor, int, bool) {
	if err := c.ShouldBindQuery(q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return nil, 0, false
	}
	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	return cursor, q.Limit, true
}
