// Package dashboard exposes the aggregated tables to the rendering
// collaborator over HTTP. The renderer owns every visual decision; this
// surface only ever hands out fully aggregated label/count structures and
// canonical CSV, never raw or semi-normalized data.
package dashboard

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/encoding/json"

	"ilm-dashboard/internal/cache"
	"ilm-dashboard/internal/config"
	"ilm-dashboard/internal/ilm"
	"ilm-dashboard/internal/stats"
)

const passwordHeader = "X-Dashboard-Password"

// Server wires the snapshot store to the HTTP API.
type Server struct {
	cfg   *config.AppConfig
	store *cache.Store
}

// NewServer creates the dashboard API server.
func NewServer(cfg *config.AppConfig, store *cache.Store) *Server {
	return &Server{cfg: cfg, store: store}
}

// Handler builds the route table. Everything under /api sits behind the
// password gate; /healthz stays open for liveness probes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/overview", s.gate(s.handleOverview))
	mux.HandleFunc("GET /api/va/summary", s.gate(s.handleVASummary))
	mux.HandleFunc("GET /api/va/matrix", s.gate(s.handleVAMatrix))
	mux.HandleFunc("GET /api/ta/summary", s.gate(s.handleTASummary))
	mux.HandleFunc("GET /api/export/va.csv", s.gate(s.handleExportVA))
	mux.HandleFunc("GET /api/export/ta.csv", s.gate(s.handleExportTA))
	return mux
}

// Start serves the API until the listener fails.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.OpenBrowser {
		go func() {
			if err := browser.OpenURL("http://localhost" + s.cfg.ListenAddr + "/healthz"); err != nil {
				log.Warn().Err(err).Msg("Failed to open browser")
			}
		}()
	}

	log.Info().Str("addr", s.cfg.ListenAddr).Msg("Dashboard API listening")
	return srv.ListenAndServe()
}

// gate enforces the dashboard password with a constant-time comparison. An
// empty configured password disables the gate (local development).
func (s *Server) gate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Password != "" {
			got := r.Header.Get(passwordHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(s.cfg.Password)) != 1 {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "password incorrect"})
				return
			}
		}
		next(w, r)
	}
}

// snapshot resolves the current dataset snapshot, translating a total source
// outage into the "no data available" degradation.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) (*cache.Snapshot, bool) {
	snap, err := s.store.Snapshot(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("No data available")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no data available"})
		return nil, false
	}
	return snap, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status    string `json:"status"`
		Source    string `json:"source,omitempty"`
		FetchedAt string `json:"fetched_at,omitempty"`
		VARecords int    `json:"va_records"`
		TARecords int    `json:"ta_records"`
	}

	h := health{Status: "ok"}
	if snap, err := s.store.Snapshot(r.Context()); err == nil {
		h.Source = string(snap.VA.Source)
		h.FetchedAt = snap.FetchedAt.UTC().Format(time.RFC3339)
		h.VARecords = snap.VA.Len()
		h.TARecords = snap.TA.Len()
	} else {
		h.Status = "degraded"
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	switch r.URL.Query().Get("project") {
	case "ta":
		writeJSON(w, http.StatusOK, stats.SummarizeTAOverview(snap.TA))
	default:
		writeJSON(w, http.StatusOK, stats.SummarizeVAOverview(snap.VA))
	}
}

func (s *Server) handleVASummary(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stats.SummarizeVA(snap.VA))
}

func (s *Server) handleVAMatrix(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stats.BuildImplementationMatrix(snap.VA))
}

func (s *Server) handleTASummary(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stats.SummarizeTA(snap.TA))
}

func (s *Server) handleExportVA(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeCSV(w, snap.VA, "virtual_access.csv")
}

func (s *Server) handleExportTA(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeCSV(w, snap.TA, "transnational_access.csv")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeCSV(w http.ResponseWriter, t *ilm.Table, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := ilm.WriteCSV(w, t); err != nil {
		log.Error().Err(err).Msg("Failed to write export")
	}
}
