package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// unmatchedRoute метка пути для запросов без маршрута
const unmatchedRoute = "unmatched"

// MetricsMiddleware собирает количество и длительность HTTP запросов
// Путь берется из шаблона маршрута, чтобы ID салонов не раздували кардинальность
func MetricsMiddleware(collector MetricsCollector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			collector.ObserveHTTPRequest(r.Method, routeTemplate(r), rec.Status(), time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}

	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
