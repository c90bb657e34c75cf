package httpapi

import "net/http"

// Response is the envelope every mjserve endpoint replies with.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	CodeSuccess      = 0
	CodeInvalidParam = 10001
	CodeEngineError  = 10002
	CodeServerError  = 10005
)

func NewResponse(code int, message string, data interface{}) *Response {
	return &Response{Code: code, Message: message, Data: data}
}

// Success replies 200 with the engine result as Data.
func (c *Context) Success(data interface{}) {
	c.JSON(http.StatusOK, NewResponse(CodeSuccess, "success", data))
}

// BadRequest replies 400 for a malformed request body.
func (c *Context) BadRequest(message string) {
	c.JSON(http.StatusBadRequest, NewResponse(CodeInvalidParam, message, nil))
}

// EngineError replies 422 for a structured mahjong.Error (malformed
// hand, no-yaku, etc.) — the request was well-formed JSON but the hand
// it described was not a valid case for this operation.
func (c *Context) EngineError(kind string, message string) {
	c.JSON(http.StatusUnprocessableEntity, NewResponse(CodeEngineError, message, map[string]string{"kind": kind}))
}

// InternalServerError replies 500 for anything unexpected.
func (c *Context) InternalServerError(message string) {
	if message == "" {
		message = "internal server error"
	}
	c.JSON(http.StatusInternalServerError, NewResponse(CodeServerError, message, nil))
}
