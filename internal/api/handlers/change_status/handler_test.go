package change_status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	changeStatus "github.com/m04kA/Clinic-SchedulingService/internal/usecase/change_status"
)

type fakeUseCase struct {
	resp *changeStatus.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *changeStatus.Request) (*changeStatus.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc ChangeStatusUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{appointmentId}/status", NewHandler(uc, nopLogger{}).Handle).
		Methods(http.MethodPatch)
	return r
}

func doRequest(t *testing.T, uc ChangeStatusUseCase, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &changeStatus.Response{
			AppointmentID:        42,
			Status:               "completed_seen",
			Changed:              true,
			RequiresClinicalNote: true,
		},
	}

	rec := doRequest(t, uc, "/api/v1/appointments/42/status", `{"status":"completed_seen"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChangeStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Appointment.ID)
	assert.Equal(t, "completed_seen", resp.Appointment.Status)
	assert.True(t, resp.RequiresClinicalNote)
	assert.NotEmpty(t, resp.Message)
}

func TestHandle_InvalidAppointmentID(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "/api/v1/appointments/abc/status", `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "/api/v1/appointments/42/status", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation error", changeStatus.ErrInvalidInput, http.StatusBadRequest},
		{"not found", changeStatus.ErrAppointmentNotFound, http.StatusNotFound},
		{"cancelled terminal", changeStatus.ErrCancelledTerminal, http.StatusConflict},
		{"invalid transition", changeStatus.ErrInvalidTransition, http.StatusConflict},
		{"internal error", errors.New("storage down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, "/api/v1/appointments/42/status", `{"status":"checked_in"}`)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
