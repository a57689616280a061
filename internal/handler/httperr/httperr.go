package httperr

import (
	"net/http"

	"foodshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
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

// Abort derives the status from the error taxonomy. Unclassified errors are
// reported as 500 with a generic message so internals never leak.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, msg, nil)
}

// Classify maps err onto an HTTP status and a client-safe message.
func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, innermostMessage(err)
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, innermostMessage(err)
	case errs.Is(err, errs.ErrSelfClaim):
		return http.StatusForbidden, innermostMessage(err)
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, innermostMessage(err)
	case errs.Is(err, errs.ErrAlreadyClaimed):
		return http.StatusConflict, innermostMessage(err)
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		return http.StatusConflict, innermostMessage(err)
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, innermostMessage(err)
	case errs.Is(err, errs.ErrExpired):
		return http.StatusGone, innermostMessage(err)
	case errs.Is(err, errs.ErrIdempotencyMismatch):
		return http.StatusUnprocessableEntity, innermostMessage(err)
	case errs.Is(err, errs.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// innermostMessage drops wrap prefixes so only the root cause is shown.
func innermostMessage(err error) string {
	return errs.Cause(err).Error()
}
