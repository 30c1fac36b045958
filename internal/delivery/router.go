package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouteRegistrar interface {
	RegisterRoutes(router gin.IRouter)
}

// NewRouter builds the engine with recovery, request logging and /health.
// /metrics is mounted only when metricsHandler is non-nil.
func NewRouter(logger *logrus.Logger, metricsHandler http.Handler, registrars ...RouteRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	for _, r := range registrars {
		r.RegisterRoutes(router)
	}
	return router
}
