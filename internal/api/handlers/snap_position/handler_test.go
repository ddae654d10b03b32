package snap_position

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleTimeline/internal/infra/storage/schedule"
	snapPosition "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/snap_position"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type emptyRepo struct{}

func (emptyRepo) Get(context.Context, domain.ScheduleKey) (*domain.StoredSchedule, error) {
	return nil, scheduleRepo.ErrScheduleNotFound
}

func post(body string) *httptest.ResponseRecorder {
	uc := snapPosition.NewUseCase(emptyRepo{},
		domain.PickerConfig{TotalDuration: 60, GridMinutes: 30, PixelsPerMinute: 2}, nil, nopLogger{})
	h := NewHandler(uc, nopLogger{})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/snap", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

const schedule = `{
	"workHours": {"from": "09:00", "to": "18:00"},
	"breaks": [{"from": "13:00", "to": "14:00"}],
	"bookings": [{"from": "10:00", "to": "10:30"}]
}`

func TestHandler_Snap(t *testing.T) {
	w := post(`{"schedule": ` + schedule + `, "offset": 450}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"found": true,
		"slot": {"startTime": "12:00", "endTime": "13:00"},
		"slotOffset": 360,
		"pointerMinute": 765,
		"durationMinutes": 60,
		"gridMinutes": 30,
		"pixelsPerMinute": 2
	}`, w.Body.String())
}

func TestHandler_NoFit(t *testing.T) {
	w := post(`{"schedule": ` + schedule + `, "durationMinutes": 600, "offset": 0}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"found":false`)
	assert.NotContains(t, w.Body.String(), `"slot"`)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(`not json`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"providerId": 1, "date": "14/03/2026"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"offset": 10}`).Code)
	assert.Equal(t, http.StatusNotFound, post(`{"providerId": 1, "date": "2026-03-14"}`).Code)
}
