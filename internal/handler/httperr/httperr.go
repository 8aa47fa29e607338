package httperr

import (
	"github.com/gin-gonic/gin"
)

type Body struct {
	Message string `json:"message"`
}

// Response is the JSON error envelope. Detail carries structured context
// such as the rule kinds a slot failed.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Body{Message: msg}, Detail: detail}
}

// AbortWithError writes the envelope and records err on the context so
// ErrorHandler can log the cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
