package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
)

// YapsHandler proxies yaps score lookups to the upstream Kaito API.
// It validates the query parameters, forwards the recognized ones, and
// translates upstream failures into generic JSON error envelopes.
func YapsHandler(client *http.Client, upstream string, userAgent string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// CORS headers go on every response, error paths included
		setCORSHeaders(w)

		// Preflight requests are answered without touching upstream
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		username := r.URL.Query().Get("username")
		userID := r.URL.Query().Get("user_id")

		if username == "" && userID == "" {
			writeError(w, http.StatusBadRequest, "username or user_id required")
			return
		}

		// Forward only the parameters that were actually supplied
		query := url.Values{}
		if username != "" {
			query.Set("username", username)
		}
		if userID != "" {
			query.Set("user_id", userID)
		}

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, upstream+"?"+query.Encode(), nil)
		if err != nil {
			log.Printf("Failed to build upstream request: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("Upstream request failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		defer resp.Body.Close()

		// Non-2xx from upstream becomes a 502; the upstream body never
		// reaches the caller, only the log
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			log.Printf("Upstream error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
			writeError(w, http.StatusBadGateway, "Upstream error")
			return
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			log.Printf("Failed to read upstream response: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if !json.Valid(body) {
			log.Printf("Upstream returned invalid JSON (%d bytes)", len(body))
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		// Pass the upstream JSON through untouched
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
