package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// HTTPObserver принимает результат обработанного запроса
type HTTPObserver interface {
	ObserveHTTP(method, route, status string, seconds float64)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware записывает количество и длительность HTTP запросов.
// Роут берется из шаблона mux, чтобы id в пути не раздували кардинальность.
func MetricsMiddleware(observer HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			observer.ObserveHTTP(r.Method, route, strconv.Itoa(rec.status), time.Since(start).Seconds())
		})
	}
}
