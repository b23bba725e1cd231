package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the routine endpoints onto rg (/api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	routines := rg.Group("/routines")
	{
		routines.POST("/generate", h.Generate)
	}
}
