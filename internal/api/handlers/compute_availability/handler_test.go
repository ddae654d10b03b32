package compute_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopRepo struct{}

func (nopRepo) Get(context.Context, domain.ScheduleKey) (*domain.StoredSchedule, error) {
	return nil, nil
}

func newHandler() *Handler {
	uc := getAvailableSlots.NewUseCase(nopRepo{},
		domain.PickerConfig{TotalDuration: 60, GridMinutes: 30, PixelsPerMinute: 2}, nil, nopLogger{})
	return NewHandler(uc, nopLogger{})
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/availability", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandler_ReferenceDay(t *testing.T) {
	w := post(newHandler(), `{
		"schedule": {
			"workHours": {"from": "09:00", "to": "18:00"},
			"breaks": [{"from": "13:00", "to": "14:00"}],
			"bookings": [{"from": "10:00", "to": "10:30"}, {"from": "7:xx", "to": "08:00"}]
		}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Gaps []struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"gaps"`
		Slots []struct {
			StartTime string `json:"startTime"`
		} `json:"slots"`
		Periods []struct {
			Period string `json:"period"`
		} `json:"periods"`
		DefaultSlot struct {
			StartTime string `json:"startTime"`
			EndTime   string `json:"endTime"`
		} `json:"defaultSlot"`
		DroppedIntervals []string `json:"droppedIntervals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Gaps, 3)
	assert.Equal(t, "10:30", body.Gaps[1].From)
	assert.Equal(t, "13:00", body.Gaps[1].To)
	assert.Len(t, body.Slots, 12)
	assert.Equal(t, "09:00", body.DefaultSlot.StartTime)
	assert.Equal(t, "10:00", body.DefaultSlot.EndTime)
	require.Len(t, body.Periods, 3)
	assert.Equal(t, "morning", body.Periods[0].Period)
	assert.Len(t, body.DroppedIntervals, 1)
}

func TestHandler_NoAvailability(t *testing.T) {
	w := post(newHandler(), `{
		"schedule": {"workHours": {"from": "09:00", "to": "10:00"}},
		"durationMinutes": 90
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"durationMinutes": 90,
		"gridMinutes": 30,
		"workHours": {"from": "09:00", "to": "10:00"},
		"gaps": [{"from": "09:00", "to": "10:00"}],
		"slots": [],
		"periods": [],
		"noAvailability": true
	}`, w.Body.String())
}

func TestHandler_BadRequests(t *testing.T) {
	h := newHandler()

	assert.Equal(t, http.StatusBadRequest, post(h, `{"schedule":`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"schedule":{"workHours":{"from":"09:00","to":"18:00"}},"gridMinutes":-1}`).Code)
}
