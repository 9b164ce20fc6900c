package server

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	stockgpt "github.com/ryar001/Stock-GPT"
	"github.com/ryar001/Stock-GPT/internal/common"
	"github.com/ryar001/Stock-GPT/internal/services/analysis"
	"github.com/ryar001/Stock-GPT/pdf"
)

// pdfErrorNotice is the only failure detail export clients see;
// specifics go to the log.
const pdfErrorNotice = "An error occurred while creating the PDF file"

// AnalyzeRequest is the POST /api/analyze body.
type AnalyzeRequest struct {
	Ticker       string                 `json:"ticker"`
	Kind         string                 `json:"kind"`
	Question     string                 `json:"question,omitempty"`
	Fundamentals *stockgpt.Fundamentals `json:"fundamentals,omitempty"`
}

// ExportRequest is the POST /api/export body.
type ExportRequest struct {
	Ticker   string    `json:"ticker"`
	Markdown string    `json:"markdown"`
	Prices   []float64 `json:"prices,omitempty"`
}

// handleAnalyze streams generated analysis chunks as server-sent
// events, ending with a "done" event carrying the full report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req AnalyzeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	areq := analysis.Request{
		Ticker:       req.Ticker,
		Kind:         analysis.Kind(req.Kind),
		Question:     req.Question,
		Fundamentals: req.Fundamentals,
	}
	if areq.Kind == "" {
		areq.Kind = analysis.KindChat
	}
	if err := areq.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	emit := func(chunk string) error {
		data, err := sonic.Marshal(chunk)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	report, err := s.analysis.Analyze(r.Context(), areq, emit)
	if err != nil {
		// headers are gone; surface the failure in-stream
		s.logger.Error().Err(err).Str("ticker", req.Ticker).Msg("Analysis failed")
		fmt.Fprintf(w, "event: error\ndata: %q\n\n", "analysis failed")
		flusher.Flush()
		return
	}

	data, _ := sonic.Marshal(report)
	fmt.Fprintf(w, "event: done\ndata: %s\n\n", data)
	flusher.Flush()
}

// handleExport renders Markdown into a downloadable PDF report. The
// document is built in memory first so a render failure never leaks a
// partial download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req ExportRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Ticker == "" || req.Markdown == "" {
		WriteError(w, http.StatusBadRequest, "ticker and markdown are required")
		return
	}

	var buf bytes.Buffer
	err := pdf.Render(pdf.RenderRequest{
		Ticker:   req.Ticker,
		Markdown: req.Markdown,
		Writer:   &buf,
		Config:   s.pdfConfig,
		Prices:   req.Prices,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("ticker", req.Ticker).Msg("PDF export failed")
		WriteError(w, http.StatusInternalServerError, pdfErrorNotice)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", pdf.Filename(req.Ticker)))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.Build,
		"commit":  common.GitCommit,
	})
}
