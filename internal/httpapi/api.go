package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"crimpqc/internal/bootstrap/config"
	"crimpqc/internal/usecase/auth"
	"crimpqc/internal/usecase/crimping"
)

// API is the HTTP adaptation layer: it maps routes to service calls and
// domain failures to status codes, nothing more.
type API struct {
	auth     *auth.Service
	crimping *crimping.Service
	limiter  *rate.Limiter
	appName  string
}

func New(authSvc *auth.Service, crimpingSvc *crimping.Service, cfg config.Config) *API {
	rps := cfg.HTTP.RateLimitRPS
	if rps <= 0 {
		rps = 50
	}
	burst := cfg.HTTP.RateLimitBurst
	if burst <= 0 {
		burst = rps
	}

	return &API{
		auth:     authSvc,
		crimping: crimpingSvc,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		appName:  cfg.App.Name,
	}
}

func (a *API) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(SecurityHeaders)
	r.Use(a.rateLimit)

	r.Get("/healthz", a.handleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", a.handleLogin)
			r.Post("/check-token", a.handleCheckToken)
			r.Get("/users", a.handleListUsers)
		})

		r.Route("/config", func(r chi.Router) {
			r.Get("/terminals", a.handleListTerminals)
			r.Get("/wires", a.handleListWires)
			r.Get("/tools", a.handleListTools)
			r.Get("/standards", a.handleListStandards)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", a.handleListOrders)
			r.Post("/", a.handleCreateOrder)

			// Static segments win over {orderID} in chi, so these
			// never collide with the order routes below.
			r.Get("/orders/by-creator-employee", a.handleListOrdersByCreator)
			r.Put("/records/{recordID}/audit", a.handleAuditRecord)
			r.Delete("/records/{recordID}", a.handleDeleteRecord)

			r.Route("/{orderID}", func(r chi.Router) {
				r.Get("/", a.handleGetOrder)
				r.Put("/", a.handleUpdateOrder)
				r.Delete("/", a.handleDeleteOrder)
				r.Patch("/close", a.handleToggleClose)
				r.Patch("/tool", a.handleUpdateTool)
				r.Post("/records", a.handleAddRecord)
			})
		})
	})

	return r
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": a.appName,
	})
}
