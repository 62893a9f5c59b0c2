package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, userMiddleware gin.HandlerFunc) {
	group := g.Group("/items")

	// Search is open: no acting user involved.
	group.GET("/search", h.Search)

	authed := group.Group("")
	authed.Use(userMiddleware)
	{
		authed.POST("", h.Create)
		authed.GET("", h.List)
		authed.GET("/:itemId", h.Get)
		authed.PATCH("/:itemId", h.Update)
		authed.DELETE("/:itemId", h.Delete)
		authed.POST("/:itemId/comment", h.AddComment)
	}
}
