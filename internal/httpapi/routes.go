// Package httpapi exposes the planner over a small JSON API for `swim serve`.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/catalog"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

// Services bundles what the handlers call.
type Services struct {
	Plans    service.PlanService
	Sessions service.SessionService
	Profiles service.ProfileService
	Imports  service.ImportService
	Catalog  *catalog.Catalog
}

// NewRouter builds the gin engine with every route registered. A nil
// logger disables request logging.
func NewRouter(svc Services, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if logger != nil {
		router.Use(requestLogger(logger))
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	plans := &planHandler{plans: svc.Plans}
	sessions := &sessionHandler{sessions: svc.Sessions}
	profile := &profileHandler{profiles: svc.Profiles}

	v1 := router.Group("/api/v1")
	{
		v1.POST("/plans", plans.generate)
		v1.GET("/plans/latest", plans.latest)
		v1.GET("/plans/:id", plans.show)
		v1.POST("/plans/:id/adapt", plans.adapt)
		v1.POST("/plans/:id/scale", plans.scale)
		v1.GET("/metrics", plans.metrics)

		v1.POST("/sessions", sessions.log)
		v1.GET("/sessions", sessions.list)
		v1.DELETE("/sessions/:id", sessions.remove)

		v1.GET("/profile", profile.show)
		v1.PUT("/profile", profile.save)

		if svc.Imports != nil {
			imports := &importHandler{imports: svc.Imports}
			v1.POST("/import", imports.create)
		}

		if svc.Catalog != nil {
			v1.GET("/templates", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"templates": svc.Catalog.All()})
			})
		}
	}
	return router
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.InfoContext(c.Request.Context(), "http_request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// NewServer wraps the router with the timeouts used by `swim serve`.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
