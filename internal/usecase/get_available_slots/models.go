package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
)

// Request модель запроса на получение доступных слотов.
// Если Schedule не задан, расписание берется из хранилища по ProviderID и Date.
type Request struct {
	ProviderID      int64                // ID исполнителя
	Date            time.Time            // Дата (без времени)
	Schedule        *domain.ScheduleData // Расписание, переданное в запросе
	DurationMinutes int                  // Длительность услуги, 0 - значение по умолчанию
	GridMinutes     int                  // Шаг сетки, 0 - значение по умолчанию
}

// Response модель ответа с доступностью на день
type Response struct {
	ProviderID       int64
	Date             time.Time
	DurationMinutes  int
	GridMinutes      int
	WorkHours        domain.TimeRange
	Gaps             []domain.TimeRange   // Свободные промежутки
	Slots            []domain.Slot        // Все допустимые слоты по возрастанию
	Periods          []domain.PeriodGroup // Слоты по частям дня, пустые группы опущены
	DefaultSlot      *domain.Slot         // Самый ранний слот, nil если слотов нет
	NoAvailability   bool
	DroppedIntervals []string // Отброшенные некорректные интервалы
}
