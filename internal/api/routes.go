package api

import "github.com/gin-gonic/gin"

// SetupRouter configures the API routes.
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", h.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/evaluate", h.Evaluate)
	}

	return r
}
