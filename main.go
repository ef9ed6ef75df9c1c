package main

import (
	"log"
	"net/http"
	"time"

	"yaps-proxy/routes"
)

func main() {
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// One shared client for all upstream calls; the timeout here is the
	// only cancellation the handler relies on
	client := &http.Client{
		Timeout: time.Duration(config.RequestTimeout) * time.Second,
	}

	router := routes.InitializeRoutes(client, config.Upstream, config.UserAgent)
	handler := recoveryMiddleware(loggingMiddleware(router))

	server := newServer(config, handler)

	log.Printf("Starting yaps proxy on :%d (upstream %s)", config.Port, config.Upstream)
	if err := runServer(server, time.Duration(config.ShutdownTimeout)*time.Second); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
