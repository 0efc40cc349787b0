// Package server wires the browsing operations into a gin HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fsbrowse/internal/browse"
	"fsbrowse/internal/config"
	"fsbrowse/internal/logging"
	"fsbrowse/internal/metrics"
)

const defaultStaticDir = "static"

type Server struct {
	engine    *gin.Engine
	registry  *browse.Registry
	staticDir string
}

func New(loader config.Loader) (*Server, error) {
	indexTemplate, err := newIndexTemplate()
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), metrics.Middleware())
	engine.SetHTMLTemplate(indexTemplate)

	srv := &Server{
		engine:    engine,
		registry:  browse.NewRegistry(loader),
		staticDir: defaultStaticDir,
	}

	engine.GET("/", srv.handleIndex)
	engine.GET("/api/config", srv.handleConfig)
	engine.GET("/api/list", srv.handleList)
	engine.GET("/api/file", srv.handleFile)
	engine.GET("/api/text_preview", srv.handleTextPreview)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	engine.Static("/static", srv.staticDir)

	return srv, nil
}

// Run starts the server. The bootstrap stylesheet fetch is
// fire-and-forget; it never delays or fails startup.
func (s *Server) Run(addr string) error {
	go ensureBootstrap(s.staticDir)

	return s.engine.Run(addr)
}

// ServeHTTP makes the server usable as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// requestLogger logs one line per completed request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logging.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
