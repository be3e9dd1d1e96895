package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"slviewer/domain/core"
	"slviewer/domain/queue"
	"slviewer/internal/logging"
	"slviewer/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// Server is the HTTP front end of the queue viewer. It is built once at
// startup and holds everything the handlers need.
type Server struct {
	router    *gin.Engine
	source    ports.TableSource
	templates *template.Template
	clock     core.Clock
	logger    *zap.Logger
}

// Options carries optional collaborators; zero values use defaults
type Options struct {
	Clock  core.Clock
	Logger *zap.Logger
}

// NewServer creates the server and registers its routes
func NewServer(source ports.TableSource, opts Options) (*Server, error) {
	if source == nil {
		return nil, fmt.Errorf("table source is required")
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.New(),
		source:    source,
		templates: templates,
		clock:     opts.Clock,
		logger:    logging.OrNop(opts.Logger),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)

	api := s.router.Group("/api")
	api.GET("/dados", s.handleDados)
	api.GET("/detalhe/:index", s.handleDetalhe)

	s.router.NoRoute(s.handleNotFound)
}

// Handler returns the server's http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// timestamp renders the current time as DD/MM/YYYY HH:MM:SS
func (s *Server) timestamp() string {
	return core.FormatTimestamp(s.clock.Now())
}

// loadTable loads the queue for one request and tags the response with its origin
func (s *Server) loadTable(c *gin.Context) (*queue.Table, queue.Source, bool) {
	table, source := s.source.LoadTable(c.Request.Context())
	if table == nil {
		s.logger.Error("queue table unavailable", zap.String("reason", source.Reason))
		return nil, source, false
	}
	if source.Kind != "" {
		c.Header(HeaderDataSource, string(source.Kind))
	}
	return table, source, true
}
