package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ytniche/cache"
	"ytniche/discovery/competitor"
	"ytniche/discovery/risingstar"
	"ytniche/domain/scorer"
	"ytniche/orchestrator"
)

type fakeAnalyzer struct {
	analyzeErr    error
	channelsErr   error
	competitorErr error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, niche string, minDurationMinutes float64) (orchestrator.AnalyzeResult, error) {
	if f.analyzeErr != nil {
		return orchestrator.AnalyzeResult{}, f.analyzeErr
	}
	return orchestrator.AnalyzeResult{Niche: niche, NicheScore: scorer.NicheScore{Total: 75, Grade: "B+"}}, nil
}

func (f *fakeAnalyzer) Channels(ctx context.Context, niche string, minDurationMinutes float64) (risingstar.Result, error) {
	if f.channelsErr != nil {
		return risingstar.Result{}, f.channelsErr
	}
	return risingstar.Result{Summary: risingstar.Summary{TotalCandidates: 3}}, nil
}

func (f *fakeAnalyzer) Competitors(ctx context.Context, niche string) (competitor.SaturationReport, error) {
	if f.competitorErr != nil {
		return competitor.SaturationReport{}, f.competitorErr
	}
	return competitor.SaturationReport{ChannelCount: 12}, nil
}

func (f *fakeAnalyzer) CallCounts() (int64, int64) { return 5, 2 }

func newTestServer(a *fakeAnalyzer) *Server {
	return NewServer(a, cache.New(0))
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeMissingNicheReturns200WithError(t *testing.T) {
	s := newTestServer(&fakeAnalyzer{})
	rec := doGet(t, s.Router(), "/api/analyze")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected HTTP 200 for missing niche, got %d", rec.Code)
	}
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Error == "" {
		t.Fatalf("expected non-empty error message")
	}
}

func TestAnalyzeInternalFailureReturns500(t *testing.T) {
	s := newTestServer(&fakeAnalyzer{analyzeErr: errBoom})
	rec := doGet(t, s.Router(), "/api/analyze?niche=ai+tutorials")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected HTTP 500, got %d", rec.Code)
	}
}

func TestAnalyzeSuccessReturnsNicheScore(t *testing.T) {
	s := newTestServer(&fakeAnalyzer{})
	rec := doGet(t, s.Router(), "/api/analyze?niche=ai+tutorials")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected HTTP 200, got %d", rec.Code)
	}
	var res orchestrator.AnalyzeResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if res.NicheScore.Total != 75 {
		t.Fatalf("expected total 75, got %f", res.NicheScore.Total)
	}
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	s := newTestServer(&fakeAnalyzer{})
	rec := doGet(t, s.Router(), "/api/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected HTTP 404, got %d", rec.Code)
	}
}

func TestSuggestionsReturnsFourCategories(t *testing.T) {
	s := newTestServer(&fakeAnalyzer{})
	rec := doGet(t, s.Router(), "/api/suggestions")
	var cats []CategorySuggestion
	if err := json.Unmarshal(rec.Body.Bytes(), &cats); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(cats) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(cats))
	}
	for _, c := range cats {
		if len(c.Niches) != 3 {
			t.Fatalf("expected 3 niches per category, got %d", len(c.Niches))
		}
	}
}

func TestStatsReportsAPICallCounts(t *testing.T) {
	s := newTestServer(&fakeAnalyzer{})
	rec := doGet(t, s.Router(), "/api/stats")
	var stats statsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if stats.APICalls.Scraper != 5 || stats.APICalls.Trends != 2 {
		t.Fatalf("unexpected api call counts: %+v", stats.APICalls)
	}
}

func TestStatusReportsOK(t *testing.T) {
	s := newTestServer(&fakeAnalyzer{})
	rec := doGet(t, s.Router(), "/api/status")
	var status statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if status.Status != "ok" {
		t.Fatalf("expected status ok, got %s", status.Status)
	}
}

var errBoom = &boomError{}

type boomError struct{}

func (e *boomError) Error() string { return "boom" }
