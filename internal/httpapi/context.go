package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context wraps gin.Context with the narrower surface mjserve's handlers
// actually use, so a handler's signature (*Context) error reads the same
// regardless of the underlying web framework.
type Context struct {
	ginCtx *gin.Context
}

func newContext(c *gin.Context) *Context {
	return &Context{ginCtx: c}
}

func (c *Context) GetQuery(key string) string { return c.ginCtx.Query(key) }

func (c *Context) GetHeader(key string) string { return c.ginCtx.GetHeader(key) }

// BindJSON decodes the request body into obj.
func (c *Context) BindJSON(obj interface{}) error { return c.ginCtx.ShouldBindJSON(obj) }

func (c *Context) JSON(code int, obj interface{}) { c.ginCtx.JSON(code, obj) }

func (c *Context) SetHeader(key, value string) { c.ginCtx.Header(key, value) }

func (c *Context) ClientIP() string { return c.ginCtx.ClientIP() }

func (c *Context) Method() string { return c.ginCtx.Request.Method }

func (c *Context) Path() string { return c.ginCtx.Request.URL.Path }

func (c *Context) Set(key string, value interface{}) { c.ginCtx.Set(key, value) }

func (c *Context) AbortWithStatus(code int) { c.ginCtx.AbortWithStatus(code) }

func (c *Context) Request() *http.Request { return c.ginCtx.Request }
