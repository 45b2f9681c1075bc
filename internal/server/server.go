package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/nathmakers/storesrv/internal/admin"
	"github.com/nathmakers/storesrv/internal/apis"
	"github.com/nathmakers/storesrv/internal/config"
	"github.com/nathmakers/storesrv/internal/db"
	"github.com/nathmakers/storesrv/internal/server/middleware"
	"github.com/nathmakers/storesrv/internal/uploader"
	"github.com/rs/zerolog/log"
)

type StoreServer struct {
	Router *chi.Mux

	cfg      *config.Config
	store    db.Store
	uploader uploader.Uploader
}

func CreateNewServer(cfg *config.Config, store db.Store, up uploader.Uploader) *StoreServer {
	return &StoreServer{
		Router:   chi.NewRouter(),
		cfg:      cfg,
		store:    store,
		uploader: up,
	}
}

func (s *StoreServer) MountHandlers() {
	s.Router.Use(chimiddleware.RequestID)
	s.Router.Use(middleware.RequestLogger)
	s.Router.Use(chimiddleware.Recoverer)
	s.Router.Use(chimiddleware.Timeout(s.cfg.RequestTimeoutDuration()))
	s.Router.Use(s.HandleCORS)
	s.Router.Use(middleware.LoadScopedDB(s.store))

	s.Router.Route("/api", func(r chi.Router) {
		apis.Router(r, &apis.Handlers{Uploader: s.uploader})
	})
	s.Router.Route("/admin", func(r chi.Router) {
		admin.Router(r, admin.NewHandlers(s.cfg.AdminPassword))
	})
}

// HandleCORS answers preflight requests and marks responses for the
// configured cross-origin callers.
func (s *StoreServer) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
		}

		if r.Method == http.MethodOptions {
			log.Ctx(r.Context()).Debug().Msg("OPTIONS request")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *StoreServer) originAllowed(origin string) bool {
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == origin || allowed == "*" {
			return true
		}
	}
	return false
}
