package settings

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	s := r.Group("/settings")
	{
		s.GET("", h.Get)
		s.PUT("", h.Update)
	}
}
