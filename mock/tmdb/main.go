// Mock TMDB server for local development. Serves canned details and
// watch-provider payloads for any id so the API can be exercised without
// a real TMDB key.
package main

import (
	_ "embed"
	"log"
	"net/http"
	"time"
)

//go:embed details.json
var detailsData []byte

//go:embed providers.json
var providersData []byte

func main() {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{type}/{id}/watch/providers", func(w http.ResponseWriter, r *http.Request) {
		// Simulate network latency (50-200ms)
		time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(providersData); err != nil {
			log.Printf("[TMDB] Write error: %v", err)
		}

		log.Printf("[TMDB] %s %s - 200 OK", r.Method, r.URL.Path)
	})

	mux.HandleFunc("GET /{type}/{id}", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

		if t := r.PathValue("type"); t != "movie" && t != "tv" {
			http.NotFound(w, r)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(detailsData); err != nil {
			log.Printf("[TMDB] Write error: %v", err)
		}

		log.Printf("[TMDB] %s %s - 200 OK", r.Method, r.URL.Path)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
			log.Printf("[TMDB] Health write error: %v", err)
		}
	})

	log.Println("Mock TMDB running on :8083")
	server := &http.Server{
		Addr:         ":8083",
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
