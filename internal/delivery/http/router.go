package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "seminarhub/docs"
	"seminarhub/internal/delivery/http/controllers"
	"seminarhub/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(seminarController *controllers.SeminarController) *http.ServeMux {
	mux := http.NewServeMux()

	// Seminars
	mux.HandleFunc("GET /seminars", seminarController.ListSeminars)
	mux.HandleFunc("POST /seminars", seminarController.CreateSeminar)
	mux.HandleFunc("GET /seminars/{id}", seminarController.GetSeminar)
	mux.HandleFunc("PUT /seminars/{id}", seminarController.ReplaceSeminar)
	mux.HandleFunc("DELETE /seminars/{id}", seminarController.DeleteSeminar)

	mux.HandleFunc("GET /health", controllers.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router in the middleware chain: request id, then
// logging, then CORS.
func NewHandler(router http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	return middleware.RequestID(
		middleware.LoggingMiddleware(logger,
			middleware.CORS(allowedOrigins, router),
		),
	)
}
