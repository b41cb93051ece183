package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveness(t *testing.T) {
	h := New("test")
	w := httptest.NewRecorder()
	h.HandleLiveness(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestReadinessAllHealthy(t *testing.T) {
	h := New("test")
	h.RegisterCheck("database", func() error { return nil })

	w := httptest.NewRecorder()
	h.HandleReadiness(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "up", resp.Checks["database"])
}

func TestReadinessDependencyDown(t *testing.T) {
	h := New("test")
	h.RegisterCheck("database", func() error { return errors.New("connection refused") })

	w := httptest.NewRecorder()
	h.HandleReadiness(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Contains(t, resp.Checks["database"], "down")
}

func TestStatusReportsEnvironment(t *testing.T) {
	h := New("staging")
	w := httptest.NewRecorder()
	h.HandleStatus(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "staging", resp.Environment)
}
