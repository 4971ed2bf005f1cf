package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
)

const (
	// AdminPasswordHeader заголовок с паролем администратора
	AdminPasswordHeader = "X-Admin-Password"
	// AdminCookieName cookie, которую выставляет страница входа панели
	AdminCookieName = "admin_auth"

	msgUnauthorized = "acesso não autorizado"
)

// AdminAuth пропускает запрос только с верным паролем администратора.
// Пароль берется из заголовка X-Admin-Password, затем из cookie admin_auth.
func AdminAuth(password string) func(http.Handler) http.Handler {
	expected := []byte(password)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminPasswordHeader)
			if provided == "" {
				if cookie, err := r.Cookie(AdminCookieName); err == nil {
					provided = cookie.Value
				}
			}

			// пустой пароль в конфиге закрывает админку полностью
			if len(expected) == 0 || provided == "" ||
				subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
