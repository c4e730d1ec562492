package server

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/snapgeo/snapgeo-ocr/internal/extract"
	"github.com/snapgeo/snapgeo-ocr/internal/ocr"
)

// Extractor is the pipeline surface the server depends on.
type Extractor interface {
	Extract(data []byte) *extract.ExtractionResult
}

// Server wraps the extraction pipeline in an HTTP API.
type Server struct {
	router    *gin.Engine
	extractor Extractor
	logger    *log.Logger

	// engineProbe reports recognition engine availability for the health
	// endpoint. Replaceable so tests do not need a Tesseract install.
	engineProbe func() ocr.EngineInfo
}

// ServerOption customizes a Server at construction time.
type ServerOption func(*Server)

// WithServerLogger sets the request logger.
func WithServerLogger(l *log.Logger) ServerOption {
	return func(s *Server) { s.logger = l }
}

// WithEngineProbe replaces the health endpoint's engine probe.
func WithEngineProbe(probe func() ocr.EngineInfo) ServerOption {
	return func(s *Server) { s.engineProbe = probe }
}

// New builds a server around the given extractor.
func New(extractor Extractor, opts ...ServerOption) *Server {
	s := &Server{
		extractor:   extractor,
		engineProbe: ocr.GetEngineInfo,
	}
	for _, opt := range opts {
		opt(s)
	}

	// GIN_MODE still wins for local debugging.
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestID())
	r.Use(corsMiddleware())

	r.GET("/health", s.handleHealth)
	r.POST("/ocr", s.handleOCR)

	s.router = r
	return s
}

// Run starts the HTTP listener and blocks until it fails.
func (s *Server) Run(addr string) error {
	s.logf("listening on %s", addr)
	return s.router.Run(addr)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestID tags every request with a unique ID, echoed in the response
// headers and the request log.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
		s.logf("%s %s %s -> %d", id, c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}

// corsMiddleware mirrors the permissive policy of the original deployment;
// the service sits behind a trusted reverse proxy.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
