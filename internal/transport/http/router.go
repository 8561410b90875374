package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Sc-Mae/squad-service/internal/transport/http/handler"
	customMiddleware "github.com/Sc-Mae/squad-service/internal/transport/http/middleware"
)

// RouterConfig содержит конфигурацию для роутера
type RouterConfig struct {
	SquadHandler      *handler.SquadHandler
	MemberHandler     *handler.MemberHandler
	StatisticsHandler *handler.StatisticsHandler
	ExportHandler     *handler.ExportHandler
	HealthHandler     *handler.HealthHandler
	AdminToken        string
}

// NewRouter создает и настраивает роутер
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logging)

	// Health check
	r.Get("/health", cfg.HealthHandler.Check)

	// Statistics
	r.Get("/statistics", cfg.StatisticsHandler.GetStatistics)

	// Squads
	r.Post("/squad/add", cfg.SquadHandler.CreateSquad)
	r.Get("/squad/get", cfg.SquadHandler.GetSquad)
	r.Post("/squad/import", cfg.SquadHandler.ImportSquads)
	r.Get("/squads/export", cfg.ExportHandler.ExportSquads)

	// Members
	r.Post("/squad/members/add", cfg.MemberHandler.AddMember)
	r.Get("/squad/members/list", cfg.MemberHandler.ListMembers)
	r.With(customMiddleware.AdminAuth(cfg.AdminToken)).Post("/squad/members/remove", cfg.MemberHandler.RemoveMember)

	return r
}
