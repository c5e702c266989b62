package httperr

import (
	"net/http"

	"cashdrawer-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"statusCode"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a classified usecase error onto its HTTP status. Unclassified
// errors become a 500 without leaking their text.
func Abort(c *gin.Context, err error) {
	status := StatusFromError(err)
	msg := "Internal server error"
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg, nil)
}

func StatusFromError(err error) int {
	switch {
	case errs.IsBadRequest(err):
		return http.StatusBadRequest
	case errs.IsForbidden(err):
		return http.StatusForbidden
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
