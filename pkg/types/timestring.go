package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay количество минут в сутках, "24:00" - допустимый конец рабочего периода
const MinutesPerDay = 24 * 60

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM"
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(MinutesToTime(t.Hour()*60 + t.Minute()))
}

// NewTimeStringFromMinutes создает TimeString из смещения в минутах от полуночи
func NewTimeStringFromMinutes(minutes int) TimeString {
	return TimeString(MinutesToTime(minutes))
}

// NewTimeStringFromString строго парсит "HH:MM" (или "HH:MM:SS" из колонок TIME)
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseClock(s)
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(minutes), nil
}

// Minutes возвращает смещение в минутах от полуночи
func (t TimeString) Minutes() int {
	return TimeToMinutes(string(t))
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// AddMinutes прибавляет минуты, результат должен остаться в пределах суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	result := t.Minutes() + minutes
	if result < 0 || result > MinutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min is outside of the day", ErrInvalidTimeString, t, minutes)
	}
	return NewTimeStringFromMinutes(result), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Scan реализует sql.Scanner для колонок TIME / TEXT
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}

// TimeToMinutes переводит "HH:MM" в минуты от полуночи.
// Пустая или нераспознанная строка дает 0.
func TimeToMinutes(clock string) int {
	minutes, err := parseClock(clock)
	if err != nil {
		return 0
	}
	return minutes
}

// MinutesToTime переводит минуты от полуночи в "HH:MM" с ведущими нулями
func MinutesToTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func parseClock(clock string) (int, error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTimeString)
	}

	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, clock)
	}

	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, clock)
	}
	if hours == 24 && minutes != 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, clock)
	}

	return hours*60 + minutes, nil
}
