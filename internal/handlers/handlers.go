// Package handlers contains the gin request handlers. Each handler validates
// the request shape, performs at most one store operation and maps the outcome
// to the response envelope: {"status": "success", "data": ...} on success,
// {"message": ...} on failure.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saswattulo/Note-App-VueJs/internal/config"
	"github.com/saswattulo/Note-App-VueJs/internal/store"
)

type Handler struct {
	store *store.Store
	cfg   *config.Config
}

func New(st *store.Store, cfg *config.Config) *Handler {
	return &Handler{store: st, cfg: cfg}
}

func parseID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
