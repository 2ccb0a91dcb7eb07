package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const CodeInternal = "INTERNAL"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// AbortWithError derives the code from the status, e.g. 404 becomes NOT_FOUND.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, StatusCode(status), err, msg, detail)
}

// AbortWithCode keeps the original error on the context for logging and
// writes the public response.
func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithCode: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func StatusCode(status int) string {
	if status >= http.StatusInternalServerError {
		return CodeInternal
	}
	text := http.StatusText(status)
	if text == "" {
		return CodeInternal
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
