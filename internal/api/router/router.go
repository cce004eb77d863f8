package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/skycruzer/fleet-notify/internal/api/handlers/queue"
	"github.com/skycruzer/fleet-notify/internal/middlewares"
)

func New(handler *queue.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/queue")
	{
		api.POST("/notifications", handler.Enqueue)
		api.POST("/notifications/batch", handler.EnqueueBatch)
		api.GET("/notifications/:id", handler.GetStatus)
		api.GET("/notifications/:id/status", handler.Status)
		api.DELETE("/notifications/:id", handler.Cancel)
		api.GET("/notifications/pending/count", handler.PendingCount)
		api.POST("/process", handler.Process)
		api.POST("/cleanup", handler.Cleanup)
	}

	return e
}
