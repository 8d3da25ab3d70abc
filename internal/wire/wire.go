package wire

import (
	"net/http"

	"referral-service/internal/adaptor"
	"referral-service/internal/data/repository"
	"referral-service/internal/usecase"
	"referral-service/pkg/database"
	"referral-service/pkg/middleware"
	"referral-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, db *database.Mongo, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, utils.NewCodeGenerator(), logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, db, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, db *database.Mongo, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireUser(r, handler.User)
	wireReport(r, handler.Report)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("store unreachable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
