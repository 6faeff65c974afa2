package availabilityservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/pkg/logger"
)

var testDate = time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)

func TestClient_GetAvailableTimes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/professionals/7/available-times", r.URL.Path)
		assert.Equal(t, "2025-12-03", r.URL.Query().Get("date"))
		assert.Equal(t, "4", r.URL.Query().Get("serviceId"))

		_, _ = w.Write([]byte(`{"date":"2025-12-03","professionalId":7,"serviceId":4,
			"durationMinutes":45,"availableTimes":["09:00","13:30","19:15"]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logger.Nop(), nil)
	result, err := client.GetAvailableTimes(context.Background(), testDate, 7, 4)

	require.NoError(t, err)
	assert.Equal(t, "2025-12-03", result.Date)
	assert.Equal(t, 45, result.DurationMinutes)
	assert.Equal(t, []string{"09:00", "13:30", "19:15"}, result.AvailableTimes)
}

func TestClient_GetAvailableTimes_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"date":"2025-12-03","professionalId":7,"serviceId":4}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logger.Nop(), nil)
	result, err := client.GetAvailableTimes(context.Background(), testDate, 7, 4)

	require.NoError(t, err)
	assert.NotNil(t, result.AvailableTimes)
	assert.Empty(t, result.AvailableTimes)
}

func TestClient_GetAvailableTimes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrProfessionalNotFound},
		{name: "server error", status: http.StatusBadGateway, body: "upstream", wantErr: ErrInvalidResponse},
		{name: "broken json", status: http.StatusOK, body: "[", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second, logger.Nop(), nil)
			_, err := client.GetAvailableTimes(context.Background(), testDate, 7, 4)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
