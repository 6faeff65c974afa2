package stream_now

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	trackNow "github.com/m04kA/SMC-CalendarService/internal/usecase/track_now"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
)

type fakeUseCase struct {
	req     *trackNow.Request
	updates []trackNow.Update
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *trackNow.Request, emit func(trackNow.Update)) error {
	f.req = req
	if f.err != nil {
		return f.err
	}
	for _, u := range f.updates {
		emit(u)
	}
	return nil
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/companies/{companyId}/calendar/now", NewHandler(uc, time.UTC, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Stream(t *testing.T) {
	now := time.Date(2025, 12, 3, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{updates: []trackNow.Update{
		{Time: now, State: calendar.NowState{Visible: true, Offset: 120}},
		{Time: now.Add(time.Minute), State: calendar.Hidden},
	}}

	rec := serve(uc, "/api/v1/companies/1/calendar/now?date=2025-12-03&scope=week&density=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.True(t, rec.Flushed)

	require.NotNil(t, uc.req.Date)
	assert.Equal(t, "2025-12-03", uc.req.Date.Format("2006-01-02"))
	assert.Equal(t, trackNow.ScopeWeek, uc.req.Scope)
	assert.Equal(t, 2.0, *uc.req.Density)

	events := strings.Split(strings.TrimSpace(rec.Body.String()), "\n\n")
	require.Len(t, events, 2)
	assert.Equal(t, "event: now\ndata: {\"time\":\"2025-12-03T10:00:00Z\",\"visible\":true,\"offset\":120}", events[0])
	assert.Equal(t, "event: now\ndata: {\"time\":\"2025-12-03T10:01:00Z\",\"visible\":false,\"offset\":0}", events[1])
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/api/v1/companies/x/calendar/now").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/api/v1/companies/1/calendar/now?date=bad").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{err: trackNow.ErrInvalidInput}, "/api/v1/companies/1/calendar/now?scope=year").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeUseCase{err: trackNow.ErrInternal}, "/api/v1/companies/1/calendar/now").Code)
}
