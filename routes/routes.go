package routes

import (
	"net/http"

	"yaps-proxy/handlers"
)

// InitializeRoutes wires up the proxy and health endpoints.
func InitializeRoutes(client *http.Client, upstream string, userAgent string) *http.ServeMux {
	router := http.NewServeMux()

	// Yaps proxy route
	router.HandleFunc("/api/yaps", handlers.YapsHandler(client, upstream, userAgent))

	// Health check route
	router.HandleFunc("/health", handlers.HealthHandler)

	return router
}
