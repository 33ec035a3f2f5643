package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"

	"github.com/harrison/clickprint/internal/explain"
	"github.com/harrison/clickprint/internal/logger"
)

// maxBodyBytes caps request bodies; a long session is a few hundred KiB.
const maxBodyBytes = 8 << 20

// Setup builds the gin engine with recovery, request logging, security
// headers and the /v1 routes.
func Setup(explainer explain.Explainer, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	})

	router.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		c.Next()
	})

	h := NewAnalysisHandler(explainer, log)

	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		v1.POST("/features", h.Features)
		v1.POST("/compare", h.Compare)
		v1.POST("/classify", h.Classify)
		v1.POST("/explain", h.Explain)
	}

	return router
}
