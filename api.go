package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type screenshotResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Filename string `json:"filename,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body screenshotResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// newAPIMux exposes the one remote operation: take a screenshot now. The
// capture callback is expected to hand the request over to the update loop
// and wait; it is never allowed to touch the surface from this goroutine.
func newAPIMux(capture func() (string, error)) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/take_screenshot", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, screenshotResponse{
				Status:  "error",
				Message: "method not allowed",
			})
			return
		}
		path, err := capture()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, screenshotResponse{
				Status:  "error",
				Message: fmt.Sprintf("screenshot failed: %v", err),
			})
			return
		}
		writeJSON(w, http.StatusOK, screenshotResponse{
			Status:   "success",
			Message:  "screenshot taken",
			Filename: path,
		})
	})
	return mux
}

// startAPI serves the trigger endpoint in the background. Failures are
// logged, never fatal; the animation loop does not depend on the API.
func startAPI(port int, capture func() (string, error), logf func(format string, args ...interface{})) {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           newAPIMux(capture),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logf("API endpoint available at http://localhost:%d/api/take_screenshot", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logf("API server stopped: %v", err)
		}
	}()
}
