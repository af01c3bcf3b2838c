package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/questforge/questledger-backend/api/controllers"
	"github.com/questforge/questledger-backend/api/middleware"
	"github.com/questforge/questledger-backend/internal/items"
	"github.com/questforge/questledger-backend/internal/mastery"
	"github.com/questforge/questledger-backend/internal/templates"
	"github.com/questforge/questledger-backend/internal/treasury"
	"github.com/questforge/questledger-backend/pkg/config"
	"github.com/questforge/questledger-backend/pkg/db"
	"github.com/questforge/questledger-backend/pkg/logger"
	pkgredis "github.com/questforge/questledger-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *pkgredis.Client
	Registry *prometheus.Registry

	Items     items.Service
	Templates templates.Service
	Mastery   mastery.Service
	Treasury  treasury.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, redisPinger(deps.Redis)))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	var idempotencyStore pkgredis.IdempotencyStore
	if deps.Redis != nil {
		idempotencyStore = deps.Redis
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Route("/v1/items", func(r chi.Router) {
			r.Post("/potions", controllers.CraftPotion(deps.Items, logg))
			r.Post("/scrolls", controllers.CraftScroll(deps.Items, logg))
			r.Get("/", controllers.ListItems(deps.Items, logg))
			r.Route("/{kind}/{itemId}", func(r chi.Router) {
				r.Get("/", controllers.GetItem(deps.Items, logg))
				r.Post("/consume", controllers.ConsumeItem(deps.Items, logg))
				r.Post("/sell", controllers.SellItem(deps.Items, logg))
			})
		})

		r.Route("/v1/templates", func(r chi.Router) {
			r.Get("/potions", controllers.ListPotionTemplates(deps.Templates, logg))
			r.Get("/spells", controllers.ListSpellTemplates(deps.Templates, logg))
		})

		r.Get("/v1/treasury", controllers.GetTreasury(deps.Treasury, logg))
		r.Get("/v1/mastery/{characterId}", controllers.CharacterMastery(deps.Mastery, logg))

		r.Route("/gm/v1", func(r chi.Router) {
			r.Use(middleware.RequireRole("gm", logg))
			r.Post("/mastery/award", controllers.GMMasteryAward(deps.Mastery, logg))
			r.Post("/mastery/set", controllers.GMMasterySet(deps.Mastery, logg))
		})
	})

	return r
}

func redisPinger(client *pkgredis.Client) pkgredis.Pinger {
	if client == nil {
		return nil
	}
	return client
}
