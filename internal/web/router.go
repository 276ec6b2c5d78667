// Package web exposes the scanner/parser pipeline over HTTP: a single
// POST /analyze endpoint that accepts Ada source and returns the
// adapter.Result JSON payload (spec §6). The router wraps chi, following
// the same Router-over-chi.Router shape as the rest of the example pack's
// web-service tier.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adalang/adafront/internal/adapter"
	"github.com/adalang/adafront/internal/diagnostics"
)

// Router wraps a chi.Router, tagging every request with a generated
// request ID and routing it through the injected logger.
type Router struct {
	mux    chi.Router
	logger diagnostics.Logger
}

// NewRouter constructs a Router with the /analyze endpoint registered.
func NewRouter(logger diagnostics.Logger) *Router {
	if logger == nil {
		logger = diagnostics.NewNop()
	}
	r := &Router{mux: chi.NewRouter(), logger: logger}
	r.mux.Post("/analyze", r.handleAnalyze)
	return r
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// analyzeRequest is the JSON request body for POST /analyze.
type analyzeRequest struct {
	Source           string `json:"source"`
	StopOnError      bool   `json:"stop_on_error"`
	PanicModeRecover bool   `json:"panic_mode_recover"`
	BuildParseTree   bool   `json:"build_parse_tree"`
}

func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) {
	requestID := uuid.NewString()
	log := r.logger

	var body analyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		log.Warn("malformed analyze request", diagnostics.String("request_id", requestID), diagnostics.Err(err))
		http.Error(w, "malformed JSON body", http.StatusBadRequest)
		return
	}

	log.Info("analyze request received",
		diagnostics.String("request_id", requestID),
		diagnostics.Int("source_bytes", len(body.Source)),
	)

	result := adapter.Analyze(body.Source, adapter.Options{
		StopOnError:      body.StopOnError,
		PanicModeRecover: body.PanicModeRecover,
		BuildParseTree:   body.BuildParseTree,
		Logger:           log,
	})

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-Id", requestID)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Error("failed to encode analyze response", diagnostics.String("request_id", requestID), diagnostics.Err(err))
	}
}
