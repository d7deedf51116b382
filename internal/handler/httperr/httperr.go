package httperr

import (
	"github.com/gin-gonic/gin"

	"meetup-api/internal/pkg/errs"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		// Code is a stable machine-readable identifier for the rejection;
		// clients branch on it, never on Message.
		Code string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, "", detail)
}

// AbortWithCode attaches a stable error code to the envelope.
func AbortWithCode(c *gin.Context, status int, err error, msg, code string) {
	abort(c, status, err, msg, code, nil)
}

func abort(c *gin.Context, status int, err error, msg, code string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
