package middleware

import (
	"net/http"
	"time"
)

// statusRecorder запоминает код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// Status код ответа (200, если обработчик ничего не записал)
func (w *statusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Logging пишет строку access лога на каждый запрос
// 5xx пишутся уровнем Error, 4xx уровнем Warn
func Logging(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			status := rec.Status()
			format := "HTTP %s %s - status=%d, bytes=%d, duration_ms=%d, request_id=%s"
			args := []interface{}{
				r.Method, r.URL.Path, status, rec.bytes,
				time.Since(start).Milliseconds(), RequestIDFromContext(r.Context()),
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Error(format, args...)
			case status >= http.StatusBadRequest:
				log.Warn(format, args...)
			default:
				log.Info(format, args...)
			}
		})
	}
}
