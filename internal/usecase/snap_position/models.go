package snap_position

import (
	"time"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
)

// Request позиция блока на линейке времени, которую нужно привязать к слоту.
// Offset - пиксели от начала рабочего дня.
type Request struct {
	ProviderID      int64
	Date            time.Time
	Schedule        *domain.ScheduleData // Если nil - расписание из хранилища
	DurationMinutes int
	GridMinutes     int
	PixelsPerMinute float64
	Offset          float64
}

// Response результат привязки
type Response struct {
	Found           bool        // false - ни один промежуток не вмещает услугу
	Slot            domain.Slot // Ближайший допустимый слот
	SlotOffset      float64     // Каноническая позиция слота в пикселях
	PointerMinute   float64     // Время под указателем, минуты от полуночи
	DurationMinutes int
	GridMinutes     int
	PixelsPerMinute float64
}
