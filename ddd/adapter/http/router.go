package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"highlight-vmaf-service/ddd/application/app"
	"highlight-vmaf-service/internal/resource"
	"highlight-vmaf-service/pkg/middleware"
)

// Router wires the HTTP surface of the service.
type Router struct {
	videoApp app.VideoApp
}

func NewRouter(videoApp app.VideoApp) *Router {
	return &Router{
		videoApp: videoApp,
	}
}

// SetupMiddleware installs the shared middleware chain. Order matters:
// request ids must be assigned before any handler logs.
func (r *Router) SetupMiddleware(engine *gin.Engine) {
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.RequestContextMiddleware())
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())
}

// SetupRoutes registers all endpoints.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	videoController := NewVideoController(r.videoApp)

	v1 := engine.Group("/api/v1")
	{
		videos := v1.Group("/videos")
		{
			videos.POST("", videoController.CreateVideo)
			videos.POST("/batch", videoController.CreateVideosBatch)
			videos.GET("", videoController.ListVideos)
			videos.GET("/:video_id/highlights", videoController.ListVideoHighlights)
		}

		highlights := v1.Group("/highlights")
		{
			highlights.GET("/:highlight_id/frames", videoController.ListHighlightFrames)
		}
	}

	engine.GET("/health", func(c *gin.Context) {
		redisOK := resource.DefaultRedisResource().Client().HealthCheck(c.Request.Context())
		status := "ok"
		code := http.StatusOK
		if !redisOK {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": "highlight-vmaf-service",
			"redis":   redisOK,
		})
	})

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Highlight VMAF Service API",
			"version": "1.0.0",
		})
	})
}
