package availability

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает статистику каждого поиска (метрики)
type Observer interface {
	ObserveSearch(duration time.Duration, candidates, slots int)
}
