// transport предоставляет набор http.RoundTripper-обёрток для исходящих
// вызовов discussion-service (аналог клиентских интерсепторов).
package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-classifieds-discussion/pkg/log"
)

type CtxKey string

const (
	CtxRequestID CtxKey = "request_id"
	CtxAuthToken CtxKey = "auth_token"
)

// roundTripperFunc — адаптер функции к http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// WithMetadata — добавляет в исходящий HTTP-вызов заголовки:
//   - X-Request-Id (если есть в контексте),
//   - Authorization: Bearer <token> (если есть в контексте),
//   - User-Agent (если передан параметром).
func WithMetadata(next http.RoundTripper, userAgent string) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		req := r.Clone(r.Context())

		if v := r.Context().Value(CtxRequestID); v != nil {
			if rid, _ := v.(string); rid != "" {
				req.Header.Set("X-Request-Id", rid)
			}
		}
		if v := r.Context().Value(CtxAuthToken); v != nil {
			if tok, _ := v.(string); tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
		}
		if userAgent != "" {
			req.Header.Set("User-Agent", userAgent)
		}

		return next.RoundTrip(req)
	})
}

// WithLogging — логирование исходящих вызовов.
// Поведение:
//   - вытягивает X-Request-Id из заголовков запроса (или генерирует новый и добавляет);
//   - добавляет поля method/path/target, прокладывает обогащённый логгер в контекст (pkg/log);
//   - пишет одну финальную запись уровня Info: msg="upstream", status, dur.
//
// Безопасность: не логирует payload и чувствительные заголовки.
func WithLogging(next http.RoundTripper, base *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if base == nil {
		base = slog.Default()
	}

	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()

		req := r.Clone(r.Context())

		rid := req.Header.Get("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
			req.Header.Set("X-Request-Id", rid)
		}

		l := base.With(
			slog.String("request_id", rid),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("target", req.URL.Host),
		)
		req = req.WithContext(log.Into(req.Context(), l))

		resp, err := next.RoundTrip(req)

		status := "-"
		if resp != nil {
			status = resp.Status
		}
		if err != nil {
			status = "transport error"
		}

		l.Info("upstream",
			slog.String("status", status),
			slog.Duration("dur", time.Since(start)),
		)

		return resp, err
	})
}

// Chain собирает транспорт: metadata -> logging -> base.
func Chain(base http.RoundTripper, userAgent string, l *slog.Logger) http.RoundTripper {
	return WithMetadata(WithLogging(base, l), userAgent)
}

// WithRequestID кладёт request id в контекст исходящего вызова.
// Используется вне HTTP-обработчиков (фоновые задачи, тесты).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, CtxRequestID, rid)
}

// WithAuthToken кладёт bearer-токен в контекст исходящего вызова.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxAuthToken, token)
}
