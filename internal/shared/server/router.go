package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photo-backend/internal/photos"
	"photo-backend/internal/shared/config"
	"photo-backend/internal/shared/server/middleware"
	"photo-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts. Construction of the
// dependencies happens in bootstrap; the router only wires them.
type RouterDeps struct {
	Config        config.Config
	PhotosHandler *photos.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.PhotosHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
