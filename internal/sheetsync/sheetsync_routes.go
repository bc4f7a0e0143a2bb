package sheetsync

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts POST /sync behind the given middlewares (rate limit,
// idempotency).
func RegisterRoutes(r *gin.RouterGroup, h *Handler, mws ...gin.HandlerFunc) {
	handlers := append(mws, h.Sync)
	r.POST("/sync", handlers...)
}
