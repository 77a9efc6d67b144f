// Package api exposes the tripsplit services over an HTTP JSON API.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tripsplit/tripsplit/internal/auth"
	"github.com/tripsplit/tripsplit/internal/middleware"
	"github.com/tripsplit/tripsplit/internal/service"
)

// Server is the tripsplit HTTP API server.
type Server struct {
	auth    *service.AuthService
	trips   *service.TripService
	reports *service.ReportService
	jwt     *auth.JWTManager
}

// NewServer creates a new API server over the given services.
func NewServer(authSvc *service.AuthService, trips *service.TripService, reports *service.ReportService, jwt *auth.JWTManager) *Server {
	return &Server{auth: authSvc, trips: trips, reports: reports, jwt: jwt}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.Logging)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Route("/trips", func(r chi.Router) {
			r.Use(middleware.RequireAuth(s.jwt))

			r.Post("/", s.handleCreateTrip)
			r.Get("/", s.handleListTrips)

			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.handleGetTrip)
				r.Put("/", s.handleUpdateTrip)
				r.Delete("/", s.handleDeleteTrip)
				r.Post("/access", s.handleVerifyPasscode)

				r.Post("/members", s.handleAddMember)
				r.Get("/members", s.handleListMembers)
				r.Put("/members/{memberID}", s.handleRenameMember)
				r.Delete("/members/{memberID}", s.handleRemoveMember)

				r.Post("/expenses", s.handleAddExpense)
				r.Get("/expenses", s.handleListExpenses)
				r.Put("/expenses/{expenseID}", s.handleUpdateExpense)
				r.Delete("/expenses/{expenseID}", s.handleDeleteExpense)

				r.Get("/report", s.handleGetReport)
				r.Get("/settlements", s.handleListSettlements)
				r.Post("/settlements", s.handleRecordSettlement)
				r.Post("/settlements/preview", s.handlePreviewSettlement)
			})
		})
	})

	return r
}
