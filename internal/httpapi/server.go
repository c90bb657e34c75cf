package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlerFunc and MiddlewareFunc let mjserve register routes without
// importing gin directly.
type HandlerFunc func(*Context) error
type MiddlewareFunc func(*Context) error

// Server wraps a gin.Engine with unified error handling: a HandlerFunc
// returning an error gets a 500 response automatically instead of every
// handler writing its own failure path.
type Server struct {
	engine *gin.Engine
	server *http.Server
	port   int
}

type ServerOption func(*Server)

func WithPort(port int) ServerOption {
	return func(s *Server) { s.port = port }
}

func WithMode(mode string) ServerOption {
	return func(s *Server) { gin.SetMode(mode) }
}

func NewServer(opts ...ServerOption) *Server {
	s := &Server{engine: gin.New(), port: 8080}
	for _, opt := range opts {
		opt(s)
	}
	s.engine.Use(gin.Logger(), gin.Recovery())
	return s
}

func (s *Server) wrap(handler HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := newContext(c)
		if err := handler(ctx); err != nil {
			ctx.InternalServerError(err.Error())
		}
	}
}

func (s *Server) wrapMiddleware(mw MiddlewareFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := newContext(c)
		if err := mw(ctx); err != nil {
			ctx.InternalServerError(err.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) GET(path string, handler HandlerFunc)  { s.engine.GET(path, s.wrap(handler)) }
func (s *Server) POST(path string, handler HandlerFunc) { s.engine.POST(path, s.wrap(handler)) }

func (s *Server) Use(middlewares ...MiddlewareFunc) {
	for _, mw := range middlewares {
		s.engine.Use(s.wrapMiddleware(mw))
	}
}

// Start blocks serving HTTP until the process is killed or ListenAndServe fails.
func (s *Server) Start() error {
	s.server = &http.Server{Addr: fmt.Sprintf(":%d", s.port), Handler: s.engine}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server, honouring ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
