// Package httpapi implements C10, the HTTP/JSON surface over the
// analysis pipeline (spec §6): six GET endpoints plus a Prometheus
// metrics endpoint, all served through a chi router.
package httpapi

import (
	"context"
	"math/rand"
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ytniche/cache"
	"ytniche/discovery/competitor"
	"ytniche/discovery/risingstar"
	"ytniche/orchestrator"
)

// Analyzer is the subset of Orchestrator the HTTP layer depends on.
type Analyzer interface {
	Analyze(ctx context.Context, niche string, minDurationMinutes float64) (orchestrator.AnalyzeResult, error)
	Channels(ctx context.Context, niche string, minDurationMinutes float64) (risingstar.Result, error)
	Competitors(ctx context.Context, niche string) (competitor.SaturationReport, error)
	CallCounts() (scraperCalls, trendsCalls int64)
}

// Server holds the process-lifetime state behind /api/stats and
// /api/status (spec §6): uptime, request counters, and the shared cache
// whose hit-rate gets surfaced.
type Server struct {
	orch          Analyzer
	cache         *cache.Cache
	startTime     time.Time
	totalRequests int64
	rng           *rand.Rand
}

// NewServer wires the HTTP surface to its orchestrator and cache.
func NewServer(orch Analyzer, c *cache.Cache) *Server {
	return &Server{orch: orch, cache: c, startTime: time.Now(), rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Router builds the chi handler tree (spec §6: "all endpoints are GET,
// respond with JSON and Access-Control-Allow-Origin: *").
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogging)
	r.Use(recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))
	r.Use(s.countRequest)

	r.Get("/api/analyze", s.handleAnalyze)
	r.Get("/api/channels", s.handleChannels)
	r.Get("/api/competitors", s.handleCompetitors)
	r.Get("/api/suggestions", s.handleSuggestions)
	r.Get("/api/stats", s.handleStats)
	r.Get("/api/status", s.handleStatus)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	})

	return r
}

func (s *Server) countRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.totalRequests, 1)
		next.ServeHTTP(w, r)
	})
}

func minDurationParam(r *http.Request) float64 {
	v := r.URL.Query().Get("min_duration")
	if v == "" {
		return 40
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 40
	}
	return f
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	niche := r.URL.Query().Get("niche")
	if niche == "" {
		writeBadRequest(w, "Please provide a niche")
		return
	}

	res, err := s.orch.Analyze(r.Context(), niche, minDurationParam(r))
	if err != nil {
		writeInternalError(w, "failed to analyze niche")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleChannels(w http.ResponseWriter, r *http.Request) {
	niche := r.URL.Query().Get("niche")
	if niche == "" {
		writeBadRequest(w, "Please provide a niche")
		return
	}

	res, err := s.orch.Channels(r.Context(), niche, minDurationParam(r))
	if err != nil {
		writeInternalError(w, "failed to discover channels")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCompetitors(w http.ResponseWriter, r *http.Request) {
	niche := r.URL.Query().Get("niche")
	if niche == "" {
		writeBadRequest(w, "Please provide a niche")
		return
	}

	report, err := s.orch.Competitors(r.Context(), niche)
	if err != nil {
		writeInternalError(w, "failed to analyze competitors")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pickSuggestions(s.rng, 4))
}

// statsResponse is the /api/stats payload shape (spec §6).
type statsResponse struct {
	UptimeSeconds     float64       `json:"uptime_seconds"`
	TotalRequests     int64         `json:"total_requests"`
	RequestsPerMinute float64       `json:"requests_per_minute"`
	APICalls          apiCallStats `json:"api_calls"`
	Cache             cacheStats   `json:"cache"`
	Memory            memoryStats  `json:"memory"`
}

type apiCallStats struct {
	Scraper int64 `json:"scraper"`
	Trends  int64 `json:"trends"`
	Total   int64 `json:"total"`
}

type cacheStats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Entries int64   `json:"entries"`
	HitRate float64 `json:"hit_rate"`
}

type memoryStats struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	NumGoroutine    int    `json:"num_goroutine"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(s.startTime)
	total := atomic.LoadInt64(&s.totalRequests)

	rpm := 0.0
	if uptime.Minutes() > 0 {
		rpm = float64(total) / uptime.Minutes()
	}

	var cStats cache.Stats
	if s.cache != nil {
		cStats = s.cache.Stats()
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	scraperCalls, trendsCalls := s.orch.CallCounts()

	writeJSON(w, http.StatusOK, statsResponse{
		UptimeSeconds:     uptime.Seconds(),
		TotalRequests:     total,
		RequestsPerMinute: rpm,
		APICalls: apiCallStats{
			Scraper: scraperCalls,
			Trends:  trendsCalls,
			Total:   scraperCalls + trendsCalls,
		},
		Cache: cacheStats{
			Hits:    cStats.Hits,
			Misses:  cStats.Misses,
			Entries: cStats.Entries,
			HitRate: cStats.HitRate(),
		},
		Memory: memoryStats{
			AllocBytes:      mem.Alloc,
			TotalAllocBytes: mem.TotalAlloc,
			NumGoroutine:    runtime.NumGoroutine(),
		},
	})
}

// statusResponse is the /api/status payload shape (spec §6).
type statusResponse struct {
	Status  string  `json:"status"`
	Version string  `json:"version"`
	Caching bool    `json:"caching"`
	Uptime  float64 `json:"uptime"`
}

const version = "1.0.0"

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Version: version,
		Caching: s.cache != nil,
		Uptime:  time.Since(s.startTime).Seconds(),
	})
}
