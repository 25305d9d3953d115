package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/SathilaT2001/ceylon-serenity-resort/internal/auth"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/handlers"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/ws"
)

// Config carries the router's cross-cutting settings.
type Config struct {
	JWTSecret  string
	CORSOrigin string
}

// NewRouter creates and configures the HTTP router.
func NewRouter(h *handlers.Handler, hub *ws.Hub, logger *zap.Logger, cfg Config) *mux.Router {
	r := mux.NewRouter()

	r.Use(corsMiddleware(cfg.CORSOrigin))
	r.Use(recoverMiddleware(logger))
	r.Use(accessLogMiddleware(logger))

	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public booking site
	api.HandleFunc("/room-types", h.GetRoomTypes).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/services", h.GetServices).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/reservations", h.CreateReservation).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/reservations/{id}", h.GetReservation).Methods(http.MethodGet, http.MethodOptions)

	// Live feed for the admin dashboard
	api.HandleFunc("/ws/reservations", hub.HandleWebSocket)

	// Staff-only management
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware(cfg.JWTSecret, auth.RoleAdmin, auth.RoleEmployee))
	admin.HandleFunc("/reservations", h.ListReservations).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/guests", h.ListGuests).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/rooms", h.ListRooms).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/rooms", h.CreateRoom).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/rooms/{roomNo}", h.UpdateRoom).Methods(http.MethodPut, http.MethodOptions)
	admin.HandleFunc("/rooms/{roomNo}", h.DeleteRoom).Methods(http.MethodDelete, http.MethodOptions)
	admin.HandleFunc("/services", h.ListServiceRecords).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/services", h.CreateServiceRecord).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/services/{id}", h.UpdateServiceRecord).Methods(http.MethodPut, http.MethodOptions)
	admin.HandleFunc("/services/{id}", h.DeleteServiceRecord).Methods(http.MethodDelete, http.MethodOptions)

	return r
}

func corsMiddleware(origin string) mux.MiddlewareFunc {
	if origin == "" {
		origin = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func accessLogMiddleware(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("access",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("userAgent", r.Header.Get("User-Agent")),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}

func recoverMiddleware(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if re := recover(); re != nil {
					logger.Error("panic in handler",
						zap.Any("panic", re),
						zap.String("path", r.URL.Path),
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
