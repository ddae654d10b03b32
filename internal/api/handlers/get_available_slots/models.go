package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProviderID       int64                `json:"providerId,omitempty"`
	Date             string               `json:"date,omitempty"`
	DurationMinutes  int                  `json:"durationMinutes"`
	GridMinutes      int                  `json:"gridMinutes"`
	WorkHours        domain.TimeRange     `json:"workHours"`
	Gaps             []domain.TimeRange   `json:"gaps"`
	Slots            []domain.Slot        `json:"slots"`
	Periods          []domain.PeriodGroup `json:"periods"`
	DefaultSlot      *domain.Slot         `json:"defaultSlot,omitempty"`
	NoAvailability   bool                 `json:"noAvailability"`
	DroppedIntervals []string             `json:"droppedIntervals,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		ProviderID:       resp.ProviderID,
		DurationMinutes:  resp.DurationMinutes,
		GridMinutes:      resp.GridMinutes,
		WorkHours:        resp.WorkHours,
		Gaps:             resp.Gaps,
		Slots:            resp.Slots,
		Periods:          resp.Periods,
		DefaultSlot:      resp.DefaultSlot,
		NoAvailability:   resp.NoAvailability,
		DroppedIntervals: resp.DroppedIntervals,
	}
	if !resp.Date.IsZero() {
		out.Date = resp.Date.Format(domain.DateFormat)
	}

	// Пустые списки отдаем как [], а не null
	if out.Gaps == nil {
		out.Gaps = []domain.TimeRange{}
	}
	if out.Slots == nil {
		out.Slots = []domain.Slot{}
	}
	if out.Periods == nil {
		out.Periods = []domain.PeriodGroup{}
	}

	return out
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(providerID int64, dateStr, durationStr, gridStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		ProviderID: providerID,
		Date:       date,
	}

	if durationStr != "" {
		if req.DurationMinutes, err = strconv.Atoi(durationStr); err != nil {
			return nil, err
		}
	}
	if gridStr != "" {
		if req.GridMinutes, err = strconv.Atoi(gridStr); err != nil {
			return nil, err
		}
	}

	return req, nil
}
