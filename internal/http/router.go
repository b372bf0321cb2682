package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-classifieds-discussion/internal/config"
	"github.com/pribylovaa/go-classifieds-discussion/internal/http/handlers"
	"github.com/pribylovaa/go-classifieds-discussion/internal/http/middleware"
	"github.com/pribylovaa/go-classifieds-discussion/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, auth config.AuthConfig, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.AuthBearer(),         // вынимаем Bearer токен в контекст для сессии и апстрима
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc, auth)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// comments
	r.Get("/ads/{ad_id}/comments", h.ListComments)
	r.Post("/ads/{ad_id}/comments", h.PostComment)

	// chats
	r.Get("/chats", h.ListConversations)
	r.Get("/chats/{ad_id}", h.OpenConversation)
	r.Post("/chats/{ad_id}", h.SendMessage)

	// notifications
	r.Get("/notifications", h.ListNotifications)
	r.Post("/notifications/{id}/open", h.OpenNotification)
}
