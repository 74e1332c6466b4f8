package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/kwv/roomtrace/rooms"
	"github.com/kwv/roomtrace/svgvector"
)

// newHTTPServer creates an HTTP server with the identify and health
// endpoints.
func newHTTPServer(app *App) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[HTTP] /health request from %s", r.RemoteAddr)
		w.Header().Set("Content-Type", "application/json")
		status := struct {
			Status    string    `json:"status"`
			Timestamp time.Time `json:"timestamp"`
		}{Status: "ok", Timestamp: time.Now()}
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.Printf("Error encoding health status: %v", err)
		}
	})

	mux.HandleFunc("/identify", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		log.Printf("[HTTP] /identify request from %s", r.RemoteAddr)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "reading request body", http.StatusBadRequest)
			return
		}

		strokeThresh := app.effectiveStrokeThresh(0)
		if q := r.URL.Query().Get("strokeThresh"); q != "" {
			if v, err := strconv.ParseFloat(q, 64); err == nil {
				strokeThresh = v
			}
		}

		polylines, err := svgvector.Parse(body, strokeThresh)
		if err != nil {
			http.Error(w, "parsing vector document: "+err.Error(), http.StatusBadRequest)
			return
		}

		found, err := rooms.Identify(polylines, app.Tunable)
		if err != nil {
			log.Printf("identify failed: %v", err)
			http.Error(w, "identify failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(toIdentifyResponse(found)); err != nil {
			log.Printf("Error encoding identify response: %v", err)
		}
	})

	return mux
}
