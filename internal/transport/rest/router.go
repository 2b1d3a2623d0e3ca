package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"adaptiveui/internal/service"
	"adaptiveui/internal/transport/rest/handler"
	"adaptiveui/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AdaptationService *service.AdaptationService
	RuleService       *service.RuleService
	ComponentService  *service.ComponentService
	AnalyticsService  *service.AnalyticsService
	TrackingService   *service.TrackingService
	ExperimentService *service.ExperimentService
	WSHandler         *ws.Handler
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	adaptHandler := handler.NewAdaptHandler(c.AdaptationService)
	ruleHandler := handler.NewRuleHandler(c.RuleService, c.ExperimentService)
	componentHandler := handler.NewComponentHandler(c.ComponentService)
	analyticsHandler := handler.NewAnalyticsHandler(c.AnalyticsService, c.TrackingService)

	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Adaptation surface
	v1.HandleFunc("/adapt", adaptHandler.Adapt).Methods("POST", "OPTIONS")
	v1.HandleFunc("/users/{userId}/context", adaptHandler.GetContext).Methods("GET", "OPTIONS")
	v1.HandleFunc("/users/{userId}/rules", adaptHandler.EvaluateRules).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interactions", analyticsHandler.Track).Methods("POST", "OPTIONS")

	// Rule management
	v1.HandleFunc("/rules", ruleHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rules", ruleHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rules/{ruleId}", ruleHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rules/{ruleId}", ruleHandler.Update).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/rules/{ruleId}", ruleHandler.Delete).Methods("DELETE", "OPTIONS")

	// Component library
	v1.HandleFunc("/components", componentHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/components", componentHandler.List).Methods("GET", "OPTIONS")

	// Analytics and experiments
	v1.HandleFunc("/analytics", analyticsHandler.Report).Methods("GET", "OPTIONS")
	v1.HandleFunc("/experiments/compare", ruleHandler.Compare).Methods("POST", "OPTIONS")

	// Dashboard event feed
	if c.WSHandler != nil {
		v1.HandleFunc("/ws/events", c.WSHandler.EventsWS).Methods("GET")
	}

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
