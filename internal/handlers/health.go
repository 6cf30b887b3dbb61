package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptdeck/backend/internal/store"
)

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Health reports whether the store is reachable. The API itself fails open
// on reads, so a degraded report here is the only place a broken store is
// visible from outside.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
