package history

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	histories := r.Group("/histories")
	{
		histories.GET("", h.List)
	}
}
