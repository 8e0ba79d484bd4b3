package types

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDurationMinutes длительность услуги, если текст длительности не распознан
const DefaultDurationMinutes = 60

var (
	durationPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(hours|hour|min)`)
	numberPattern   = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// ParseDuration переводит длительность в минуты.
//
// Поддерживаемые варианты:
//   - целое число (int, int64, float64) - уже минуты
//   - строка "<число> min|hour|hours" без учета регистра
//   - строка из одного числа ("45")
//
// nil и пустая строка дают 0 ("длительность не задана"),
// всё остальное нераспознанное, отрицательное или длиннее суток - defaultMinutes.
func ParseDuration(value interface{}, defaultMinutes int) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return withinDay(v, defaultMinutes)
	case int32:
		return withinDay(int(v), defaultMinutes)
	case int64:
		if v > MinutesPerDay {
			return defaultMinutes
		}
		return withinDay(int(v), defaultMinutes)
	case float64:
		return floatWithinDay(v, defaultMinutes)
	case *int:
		if v == nil {
			return 0
		}
		return withinDay(*v, defaultMinutes)
	case *string:
		if v == nil {
			return 0
		}
		return parseDurationString(*v, defaultMinutes)
	case string:
		return parseDurationString(v, defaultMinutes)
	default:
		return defaultMinutes
	}
}

func parseDurationString(s string, defaultMinutes int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// только десятичная запись: "1e3", "Inf" и "NaN" не считаются числом минут
	if numberPattern.MatchString(s) {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return defaultMinutes
		}
		return floatWithinDay(n, defaultMinutes)
	}

	match := durationPattern.FindStringSubmatch(s)
	if match == nil {
		return defaultMinutes
	}

	n, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return defaultMinutes
	}

	if strings.HasPrefix(strings.ToLower(match[2]), "hour") {
		n *= 60
	}
	return floatWithinDay(n, defaultMinutes)
}

// floatWithinDay проверяет диапазон до перевода в int, чтобы не было переполнения
func floatWithinDay(minutes float64, defaultMinutes int) int {
	if math.IsNaN(minutes) || minutes < 0 || minutes > MinutesPerDay {
		return defaultMinutes
	}
	return withinDay(int(math.Round(minutes)), defaultMinutes)
}

func withinDay(minutes, defaultMinutes int) int {
	if minutes < 0 || minutes > MinutesPerDay {
		return defaultMinutes
	}
	return minutes
}
