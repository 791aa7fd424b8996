// http собирает HTTP-роутер сервиса: middleware-цепочку, REST-маршруты
// и служебные эндпойнты (/livez, /healthz, /metrics).
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/service"
	"github.com/fxlibrary/fxlibrary/internal/transport/http/handlers"
	"github.com/fxlibrary/fxlibrary/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
	// Ready возвращает nil, когда зависимости сервиса доступны.
	// nil-функция трактуется как "всегда готов".
	Ready func() error
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчики/гистограммы Prometheus
		middleware.Authenticate(svc),    // проверяем Bearer-токен, личность в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Служебные эндпойнты вне BasePath.
	root.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	root.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if opts.Ready != nil {
			if err := opts.Ready(); err != nil {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	root.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Зависимости хендлеров.
	h := handlers.New(svc)

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
	// auth
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)

	// каталог (публичный)
	r.Get("/assets", h.ListAssets)
	r.Get("/assets/{slug}", h.AssetBySlug)
	r.Get("/tags", h.ListTags)

	// события (анонимные допустимы)
	r.Post("/events", h.TrackEvent)

	// личный кабинет и операции под авторизацией
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth())

		pr.Post("/auth/logout", h.Logout)
		pr.Get("/me", h.Me)

		pr.Post("/collections", h.CreateCollection)
		pr.Get("/collections", h.MyCollections)
		pr.Get("/collections/{id}", h.Collection)
		pr.Post("/collections/{id}/items", h.AddCollectionItem)
		pr.Delete("/collections/{id}/items/{asset_id}", h.RemoveCollectionItem)

		pr.Post("/assets/{id}/versions/{version_id}/download", h.IssueDownload)
	})

	// админ-поверхность
	r.Group(func(ar chi.Router) {
		ar.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin))

		ar.Post("/admin/assets", h.AdminCreateAsset)
		ar.Get("/admin/assets/{slug}", h.AdminAssetBySlug)
		ar.Patch("/admin/assets/{id}", h.AdminUpdateAsset)
		ar.Post("/admin/assets/{id}/status", h.AdminSetAssetStatus)
		ar.Post("/admin/assets/{id}/versions/presign", h.AdminVersionPresign)
		ar.Post("/admin/assets/{id}/versions/confirm", h.AdminVersionConfirm)
		ar.Post("/admin/assets/{id}/previews/presign", h.AdminPreviewPresign)
		ar.Post("/admin/assets/{id}/previews/confirm", h.AdminPreviewConfirm)
	})
}
