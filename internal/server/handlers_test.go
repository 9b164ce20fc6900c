package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryar001/Stock-GPT/internal/common"
	"github.com/ryar001/Stock-GPT/internal/services/analysis"
)

// fakeGenerator streams canned chunks.
type fakeGenerator struct {
	chunks []string
	err    error
}

func (f *fakeGenerator) GenerateContentStream(ctx context.Context, prompt string, emit func(chunk string) error) (string, error) {
	var full strings.Builder
	for _, c := range f.chunks {
		full.WriteString(c)
		if emit != nil {
			if err := emit(c); err != nil {
				return full.String(), err
			}
		}
	}
	return full.String(), f.err
}

func newTestServer(t *testing.T, gen analysis.Generator) *Server {
	t.Helper()
	logger := common.NewSilentLogger()
	svc := analysis.NewService(gen, logger)
	return NewServer(common.NewDefaultConfig(), svc, logger)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestVersionEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version"`)
}

func TestAnalyzeStreamsSSE(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{chunks: []string{"## Overview\n", "chips."}})
	body := strings.NewReader(`{"ticker":"NVDA","kind":"quick"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	out := rec.Body.String()
	assert.Contains(t, out, `data: "## Overview\n"`)
	assert.Contains(t, out, "event: done")
	assert.Contains(t, out, `"## Overview\nchips."`)
}

func TestAnalyzeDefaultsToChatKind(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{chunks: []string{"answer"}})
	body := strings.NewReader(`{"ticker":"NVDA","question":"moat?"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "event: done")
}

func TestAnalyzeValidation(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{chunks: []string{"x"}})

	tests := []struct {
		name string
		body string
	}{
		{"missing ticker", `{"kind":"quick"}`},
		{"bad kind", `{"ticker":"NVDA","kind":"astrology"}`},
		{"not json", `ticker=NVDA`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAnalyzeGeneratorFailureEmitsErrorEvent(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{err: errors.New("quota")})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"ticker":"NVDA","kind":"quick"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	// stream already started, failure travels in-band
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, "event: error")
	assert.NotContains(t, out, "quota", "provider details must not leak to the client")
}

func TestExportReturnsPDF(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{})
	body := strings.NewReader(`{"ticker":"nvda","markdown":"## Overview\n\n- point one"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/export", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=NVDA_Financial_Analysis.pdf", rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"), "body is not a PDF")
}

func TestExportValidation(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{})
	req := httptest.NewRequest(http.MethodPost, "/api/export", strings.NewReader(`{"ticker":"NVDA"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportFailureIsGeneric(t *testing.T) {
	logger := common.NewSilentLogger()
	cfg := common.NewDefaultConfig()
	cfg.Report.FontFamily = "Wingdings" // renderer rejects non-core fonts
	svc := analysis.NewService(&fakeGenerator{}, logger)
	srv := NewServer(cfg, svc, logger)

	req := httptest.NewRequest(http.MethodPost, "/api/export", strings.NewReader(`{"ticker":"NVDA","markdown":"text"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), pdfErrorNotice)
	assert.NotContains(t, rec.Body.String(), "font", "renderer details must not leak to the client")
}

func TestIndexServed(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "StockGPT")

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonsense", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/analyze", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
