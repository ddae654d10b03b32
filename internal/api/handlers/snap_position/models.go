package snap_position

import (
	"time"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	snapPosition "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/snap_position"
)

// SnapRequest HTTP request model.
// Расписание передается в schedule или берется из хранилища по providerId и date.
type SnapRequest struct {
	ProviderID      int64                `json:"providerId,omitempty"`
	Date            string               `json:"date,omitempty"` // "2026-03-14"
	Schedule        *domain.ScheduleData `json:"schedule,omitempty"`
	DurationMinutes int                  `json:"durationMinutes,omitempty"`
	GridMinutes     int                  `json:"gridMinutes,omitempty"`
	PixelsPerMinute float64              `json:"pixelsPerMinute,omitempty"`
	Offset          float64              `json:"offset"`
}

// SnapResponse HTTP response model
type SnapResponse struct {
	Found           bool         `json:"found"`
	Slot            *domain.Slot `json:"slot,omitempty"`
	SlotOffset      *float64     `json:"slotOffset,omitempty"`
	PointerMinute   float64      `json:"pointerMinute"`
	DurationMinutes int          `json:"durationMinutes"`
	GridMinutes     int          `json:"gridMinutes"`
	PixelsPerMinute float64      `json:"pixelsPerMinute"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SnapRequest) ToUseCaseRequest() (*snapPosition.Request, error) {
	req := &snapPosition.Request{
		ProviderID:      r.ProviderID,
		Schedule:        r.Schedule,
		DurationMinutes: r.DurationMinutes,
		GridMinutes:     r.GridMinutes,
		PixelsPerMinute: r.PixelsPerMinute,
		Offset:          r.Offset,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *snapPosition.Response) *SnapResponse {
	out := &SnapResponse{
		Found:           resp.Found,
		PointerMinute:   resp.PointerMinute,
		DurationMinutes: resp.DurationMinutes,
		GridMinutes:     resp.GridMinutes,
		PixelsPerMinute: resp.PixelsPerMinute,
	}
	if resp.Found {
		slot, offset := resp.Slot, resp.SlotOffset
		out.Slot = &slot
		out.SlotOffset = &offset
	}
	return out
}
