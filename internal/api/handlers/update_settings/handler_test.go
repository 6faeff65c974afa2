package update_settings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/service/settings"
	"github.com/m04kA/SMC-CalendarService/internal/service/settings/models"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
)

type fakeService struct {
	req *models.UpdateSettingsRequest
	err error
}

func (f *fakeService) Upsert(_ context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SettingsResponse{ID: 10, CompanyID: req.CompanyID, Level: "company", StartHour: *req.StartHour}, nil
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/companies/{companyId}/calendar/settings", NewHandler(svc, logger.Nop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/companies/1/calendar/settings", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, `{"startHour": 9, "layoutMode": "clustered"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), svc.req.CompanyID)
	assert.Equal(t, 9, *svc.req.StartHour)
	assert.Equal(t, "clustered", *svc.req.LayoutMode)
	assert.Nil(t, svc.req.EndHour)
	assert.Contains(t, rec.Body.String(), `"id":10`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"startHour": "nine"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"unknown": 1}`).Code)

	invalid := serve(&fakeService{err: fmt.Errorf("%w: endHour before startHour", settings.ErrInvalidInput)}, `{"startHour": 9}`)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
	assert.Contains(t, invalid.Body.String(), "endHour before startHour")

	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: settings.ErrSettingsNotFound}, `{"startHour": 9}`).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: settings.ErrInternal}, `{"startHour": 9}`).Code)
}
