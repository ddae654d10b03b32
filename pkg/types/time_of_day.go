package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour

	// MaxTimeOfDay последняя минута суток (23:59)
	MaxTimeOfDay TimeOfDay = MinutesPerDay - 1
)

// ErrInvalidTimeFormat возвращается, если строка не является корректным временем "HH:MM"
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

// TimeOfDay время суток в минутах от полуночи, диапазон [0, 1439].
// Строка "HH:MM" используется только на границах (JSON, входные данные).
type TimeOfDay int

// ParseTimeOfDay разбирает строку "HH:MM" в минуты от полуночи.
// Часы - одна или две цифры в диапазоне [0, 23], минуты - ровно две цифры в диапазоне [0, 59].
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hourStr, minuteStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := parseClockPart(hourStr)
	if err != nil || hour > 23 {
		return 0, fmt.Errorf("%w: %q: hour out of range", ErrInvalidTimeFormat, s)
	}

	if len(minuteStr) != 2 {
		return 0, fmt.Errorf("%w: %q: minutes must have two digits", ErrInvalidTimeFormat, s)
	}
	minute, err := parseClockPart(minuteStr)
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("%w: %q: minute out of range", ErrInvalidTimeFormat, s)
	}

	return TimeOfDay(hour*MinutesPerHour + minute), nil
}

// MustParseTimeOfDay как ParseTimeOfDay, но паникует на ошибке. Только для констант и тестов.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// parseClockPart принимает только 1-2 цифры: без знаков, пробелов и прочего
func parseClockPart(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, ErrInvalidTimeFormat
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidTimeFormat
		}
	}
	return strconv.Atoi(s)
}

// String возвращает время в формате "HH:MM" с ведущими нулями
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/MinutesPerHour, int(t)%MinutesPerHour)
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Hour возвращает час (0-23)
func (t TimeOfDay) Hour() int {
	return int(t) / MinutesPerHour
}

// IsValid проверяет, что значение лежит в пределах суток
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t <= MaxTimeOfDay
}

// AddMinutes сдвигает время на указанное количество минут.
// Результат может выйти за пределы суток - проверка на стороне вызывающего.
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// AlignUp округляет время вверх до ближайшего значения, кратного grid минутам от полуночи
func (t TimeOfDay) AlignUp(grid int) TimeOfDay {
	if grid <= 0 {
		return t
	}
	rem := int(t) % grid
	if rem == 0 {
		return t
	}
	return t + TimeOfDay(grid-rem)
}

// IsAligned проверяет, что время кратно grid минутам от полуночи
func (t TimeOfDay) IsAligned(grid int) bool {
	return grid > 0 && int(t)%grid == 0
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON принимает строку "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value хранит время в БД как целое число минут
func (t TimeOfDay) Value() (driver.Value, error) {
	return int64(t), nil
}

// Scan читает время из БД: целое число минут или строка "HH:MM"
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*t = TimeOfDay(v)
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case nil:
		return fmt.Errorf("%w: NULL value", ErrInvalidTimeFormat)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
	return nil
}

func (t *TimeOfDay) scanString(s string) error {
	if n, err := strconv.Atoi(s); err == nil {
		*t = TimeOfDay(n)
		return nil
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
