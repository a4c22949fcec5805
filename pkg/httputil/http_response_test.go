package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/limbo/dailyos/pkg/httputil"
	"github.com/stretchr/testify/assert"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	details := errors.Join(errors.New("invalid request"), errors.New("Key: 'Date' failed"))
	httputil.WriteErrorResponse(rr, http.StatusBadRequest, "invalid request", details)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":400,"message":"invalid request","details":"invalid request; Key: 'Date' failed"}`, rr.Body.String())
}

func TestWriteJSONResponse(t *testing.T) {
	t.Run("body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteJSONResponse(rr, http.StatusOK, map[string]int{"total": 3})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"total":3}`, rr.Body.String())
	})
	t.Run("no body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteJSONResponse(rr, http.StatusNoContent, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Zero(t, rr.Body.Len())
	})
}
