package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-classifieds-discussion/internal/remote/transport"
)

// AuthBearer извлекает Bearer-токен из Authorization и кладёт "сырой" токен
// в контекст по ключу transport.CtxAuthToken: его читают session.FromToken
// (для текущего пользователя) и metadata-обёртка исходящего транспорта
// (для проброса апстриму).
func AuthBearer() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")

			if auth != "" {
				const prefix = "Bearer "
				if strings.HasPrefix(auth, prefix) && len(auth) > len(prefix) {
					token := strings.TrimSpace(auth[len(prefix):])

					if token != "" {
						ctx := context.WithValue(r.Context(), transport.CtxAuthToken, token)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
