package select_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Select(t *testing.T) {
	svc := picker.NewService(nil, domain.PickerConfig{TotalDuration: 60, GridMinutes: 30, PixelsPerMinute: 2},
		time.Hour, nil, nopLogger{})
	created, err := svc.Create(context.Background(), &models.CreateSessionRequest{
		Schedule: &domain.ScheduleData{
			WorkHours: domain.RawRange{From: "09:00", To: "18:00"},
			Breaks:    []domain.RawRange{{From: "13:00", To: "14:00"}},
		},
	})
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/sessions/{sessionId}/select", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)

	post := func(id, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/select", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(created.ID.String(), `{"startTime": "14:30"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"selected":{"startTime":"14:30","endTime":"15:30"}`)
	assert.Contains(t, w.Body.String(), `"source":"tap"`)

	assert.Equal(t, http.StatusConflict, post(created.ID.String(), `{"startTime": "12:30"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(created.ID.String(), `{"startTime": "25:00"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(created.ID.String(), `{`).Code)
	assert.Equal(t, http.StatusBadRequest, post("42", `{"startTime": "14:30"}`).Code)
	assert.Equal(t, http.StatusNotFound, post(uuid.NewString(), `{"startTime": "14:30"}`).Code)
}
