package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.0.0", rr.Body.String())
}
