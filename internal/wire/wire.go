package wire

import (
	"context"
	"net/http"
	"time"

	"yamdb/internal/adaptor"
	"yamdb/internal/data/repository"
	"yamdb/internal/usecase"
	"yamdb/pkg/database"
	"yamdb/pkg/mailer"
	"yamdb/pkg/middleware"
	"yamdb/pkg/ratelimit"
	"yamdb/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

// App holds the HTTP router together with the services behind it.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Deps are the process-wide resources the router is built from.
type Deps struct {
	DB       database.PgxIface
	Repo     *repository.Repository
	Tokens   *utils.TokenManager
	Mailer   mailer.Mailer
	Limiter  ratelimit.Limiter
	Registry *prometheus.Registry
}

// Wiring builds services and handlers and mounts every route.
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) (*App, error) {
	service := usecase.NewService(deps.Repo, config, deps.Tokens, deps.Mailer, logger)
	handler := adaptor.NewHandler(service, logger)

	if err := deps.Registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := deps.Registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}
	metrics, err := middleware.NewMetrics(deps.Registry)
	if err != nil {
		return nil, err
	}

	router := setupRouter(handler, deps, metrics, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	deps Deps,
	metrics *middleware.Metrics,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))
	r.Use(metrics.Handler)
	r.Use(chimw.Timeout(requestTimeout))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, r, "Not found")
	})
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health", healthHandler(deps.DB, logger))
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	wireDocs(r)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(deps.Tokens, deps.Repo.User, logger))

		wireAuth(r, handler.Auth, deps.Limiter, logger)
		wireUser(r, handler.User, logger)
		wireCategory(r, handler.Category, logger)
		wireGenre(r, handler.Genre, logger)
		wireTitle(r, handler.Title, handler.Review, handler.Comment, logger)
	})

	return r
}

// healthHandler reports 503 when the database does not answer a ping.
func healthHandler(db database.PgxIface, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, r, http.StatusServiceUnavailable, false, "dependency unavailable", nil, nil)
			return
		}
		utils.ResponseSuccess(w, r, "healthy", nil)
	}
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, r)
}
