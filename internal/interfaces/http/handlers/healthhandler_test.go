package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatorfund/creatorfund/internal/interfaces/http/handlers/testutil"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

func TestHealthHandler_HealthCheck(t *testing.T) {
	handler := NewHealthHandler(stubPinger{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	handler.HealthCheck(c)
	assert.Equal(t, http.StatusOK, w.Code)

	handler = NewHealthHandler(stubPinger{err: assert.AnError}, testutil.NewMockLogger())
	c, w = testutil.NewTestContext(http.MethodGet, "/health", nil)
	handler.HealthCheck(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthHandler_NilDatabase(t *testing.T) {
	handler := NewHealthHandler(nil, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	handler.HealthCheck(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
