//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodshare/internal/handler/httperr"
	"foodshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation shows innermost message",
			err:        errs.Wrap(errs.Mark(errs.New("title is required"), errs.ErrValidation), "create listing"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "title is required",
		},
		{
			name:       "root message keeps its own separators",
			err:        errs.Wrapf(errs.Mark(errs.New("expiry_time: must be at least 1h ahead"), errs.ErrValidation), "listing %s", "create"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "expiry_time: must be at least 1h ahead",
		},
		{
			name:       "marked cause under several wraps",
			err:        errs.Wrap(errs.Wrap(errs.Mark(errs.New("malformed cursor"), errs.ErrValidation), "decode"), "list open"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "malformed cursor",
		},
		{name: "unauthenticated", err: errs.ErrUnauthenticated, wantStatus: http.StatusUnauthorized, wantMsg: "unauthenticated"},
		{name: "self claim", err: errs.ErrSelfClaim, wantStatus: http.StatusForbidden, wantMsg: "cannot claim own listing"},
		{name: "not found", err: errs.ErrNotFound, wantStatus: http.StatusNotFound, wantMsg: "not found"},
		{name: "already claimed", err: errs.ErrAlreadyClaimed, wantStatus: http.StatusConflict, wantMsg: "listing already claimed"},
		{name: "idempotency in progress", err: errs.ErrIdempotencyInProgress, wantStatus: http.StatusConflict, wantMsg: "idempotency in progress"},
		{name: "conflict", err: errs.ErrConflict, wantStatus: http.StatusConflict, wantMsg: "conflict"},
		{name: "expired", err: errs.ErrExpired, wantStatus: http.StatusGone, wantMsg: "listing expired"},
		{
			name:       "idempotency mismatch",
			err:        errs.ErrIdempotencyMismatch,
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "idempotency key reused with different request",
		},
		{
			name:       "storage unavailable hides details",
			err:        errs.Mark(errs.New("dial tcp 10.0.0.3:5432: connection refused"), errs.ErrStorageUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Service temporarily unavailable",
		},
		{name: "unclassified", err: errs.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.Abort(c, errs.Wrap(errs.New("pq: secret detail"), "load"))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, c.Errors, 1)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"]["message"])
}
