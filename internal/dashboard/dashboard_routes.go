package dashboard

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	d := r.Group("/dashboard")
	{
		d.GET("/summary", h.Summary)
		d.GET("/chart", h.Chart)
		d.GET("/shortages", h.Shortages)
	}
}
