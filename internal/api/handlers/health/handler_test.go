package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/pkg/logger"
)

func TestHandle(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("healthy", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(map[string]Checker{"database": ok}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, "ok", body.Checks["database"])
	})

	t.Run("degraded", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(map[string]Checker{"database": ok, "redis": down}, logger.Nop()).
			Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "connection refused", body.Checks["redis"])
	})

	t.Run("no checks", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(nil, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
