package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		header     string
		cookie     string
		wantStatus int
	}{
		{name: "header", password: "s3cret", header: "s3cret", wantStatus: http.StatusOK},
		{name: "cookie", password: "s3cret", cookie: "s3cret", wantStatus: http.StatusOK},
		{name: "wrong header", password: "s3cret", header: "nope", wantStatus: http.StatusUnauthorized},
		{name: "wrong cookie", password: "s3cret", cookie: "s3cre", wantStatus: http.StatusUnauthorized},
		{name: "missing", password: "s3cret", wantStatus: http.StatusUnauthorized},
		{name: "empty configured password", password: "", header: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments", nil)
			if tt.header != "" {
				r.Header.Set(AdminPasswordHeader, tt.header)
			}
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: AdminCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()

			AdminAuth(tt.password)(okHandler()).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
