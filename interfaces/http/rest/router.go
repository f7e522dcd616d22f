package rest

import (
	"io"
	"net/http"

	"migration-schedules/interfaces/gateway"
	"migration-schedules/interfaces/http/rest/middleware"
	"migration-schedules/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// SchedulesPath is the collection route for migration schedules
const SchedulesPath = "/migration-schedules"

// Router exposes the ScheduleRequestHandler over plain HTTP
type Router struct {
	handler       *gateway.ScheduleRequestHandler
	validator     *auth.JWTValidator
	allowedOrigin string
	logger        *zap.Logger
}

// NewRouter creates a new router instance. validator may be nil.
func NewRouter(
	handler *gateway.ScheduleRequestHandler,
	validator *auth.JWTValidator,
	allowedOrigin string,
	logger *zap.Logger,
) *Router {
	return &Router{
		handler:       handler,
		validator:     validator,
		allowedOrigin: allowedOrigin,
		logger:        logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	origin := rt.allowedOrigin
	if origin == "" {
		origin = "*"
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", rt.healthCheck)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator, rt.logger))

		// Every method reaches the handler so unsupported ones get its 400
		r.HandleFunc(SchedulesPath, rt.serve)
		r.HandleFunc(SchedulesPath+"/{"+gateway.MigrationIDParam+"}", rt.serve)
	})

	return router
}

// serve converts the HTTP request into a gateway request and writes the result
func (rt *Router) serve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		rt.logger.Warn("Failed to read request body", zap.Error(err))
		body = nil
	}

	req := gateway.Request{
		Method:     r.Method,
		Body:       string(body),
		Authorizer: middleware.AuthorizerFromContext(r.Context()),
		RequestID:  chimiddleware.GetReqID(r.Context()),
	}
	if id := chi.URLParam(r, gateway.MigrationIDParam); id != "" {
		req.PathParameters = map[string]string{gateway.MigrationIDParam: id}
	}

	resp := rt.handler.Handle(r.Context(), req)

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write([]byte(resp.Body))
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
