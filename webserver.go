package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

const maxRequestBytes = 1 << 20

// WebServer serves the single-page UI and the JSON API
type WebServer struct {
	config   *Config
	router   *chi.Mux
	exporter *ReportExporter
	log      zerolog.Logger
}

// NewWebServer creates a web server using config for defaults and exporter
// for saved reports
func NewWebServer(config *Config, exporter *ReportExporter, log zerolog.Logger) *WebServer {
	ws := &WebServer{
		config:   config,
		router:   chi.NewRouter(),
		exporter: exporter,
		log:      log.With().Str("component", "server").Logger(),
	}
	ws.setupMiddleware()
	ws.setupRoutes()
	return ws
}

// Handler exposes the router, mainly for tests
func (ws *WebServer) Handler() http.Handler {
	return ws.router
}

func (ws *WebServer) setupMiddleware() {
	ws.router.Use(middleware.Recoverer)
	ws.router.Use(middleware.RequestID)
	ws.router.Use(middleware.RealIP)
	ws.router.Use(ws.loggingMiddleware)
	ws.router.Use(middleware.Timeout(30 * time.Second))

	origins := ws.config.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	ws.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))
}

func (ws *WebServer) setupRoutes() {
	ws.router.Get("/health", ws.handleLiveness)
	ws.router.Get("/", ws.handleIndex)

	ws.router.Route("/api", func(r chi.Router) {
		r.Get("/config", ws.handleGetConfig)

		r.Route("/health", func(r chi.Router) {
			r.Post("/score", ws.handleHealthScore)
			r.Post("/reset", ws.handleHealthReset)
			r.Post("/pdf", ws.handleHealthPDF)
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Post("/analyze", ws.handlePortfolioAnalyze)
			r.Post("/pdf", ws.handlePortfolioPDF)
			r.Post("/csv", ws.handlePortfolioCSV)
		})

		r.Post("/export", ws.handleExport)
	})
}

// Start listens on addr and serves until ctx is cancelled. Use port 0 to let
// the OS pick one.
func (ws *WebServer) Start(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	url := browserURL(listener.Addr().String())
	ws.log.Info().Str("addr", listener.Addr().String()).Str("url", url).Msg("starting web server")
	if ws.config.Server.OpenBrowser {
		go openBrowser(url)
	}

	server := &http.Server{
		Handler:      ws.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	ws.log.Info().Msg("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// browserURL turns a listener address into a URL a browser can open
func browserURL(addr string) string {
	if strings.HasPrefix(addr, ":") || strings.HasPrefix(addr, "0.0.0.0:") || strings.HasPrefix(addr, "[::]:") {
		return "http://localhost:" + addr[strings.LastIndex(addr, ":")+1:]
	}
	return "http://" + addr
}

// loggingMiddleware logs HTTP requests
func (ws *WebServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		ws.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

// API payloads

// AssetView is an asset class with its ideal target, for the UI tables
type AssetView struct {
	Asset        AssetClass `json:"asset"`
	AssetInfo
	IdealPercent float64 `json:"ideal_percent"`
	RangeLabel   string  `json:"range_label"`
}

// ConfigResponse carries everything the UI needs before the first request
type ConfigResponse struct {
	Currency          Currency      `json:"currency"`
	Assets            []AssetView   `json:"assets"`
	DefaultHealthForm HealthForm    `json:"default_health_form"`
	HealthForm        HealthForm    `json:"health_form"`
	PortfolioForm     PortfolioForm `json:"portfolio_form"`
}

// HealthResponse is the result of scoring a health form
type HealthResponse struct {
	Success bool         `json:"success"`
	Form    *HealthForm  `json:"form,omitempty"`
	Report  HealthReport `json:"report"`
}

// AllocationView is one analysed asset class with display text
type AllocationView struct {
	AllocationResult
	Label      string `json:"label"`
	Color      string `json:"color"`
	StatusNote string `json:"status_note"`
	ActionText string `json:"action_text"`
}

// RecommendationView is one recommendation with its sentence
type RecommendationView struct {
	Recommendation
	Text string `json:"text"`
}

// PortfolioResponse is the result of analysing a portfolio
type PortfolioResponse struct {
	Success         bool                 `json:"success"`
	TotalPortfolio  float64              `json:"total_portfolio"`
	TotalFormatted  string               `json:"total_formatted"`
	RiskProfile     RiskProfile          `json:"risk_profile"`
	RiskLabel       string               `json:"risk_label"`
	RiskColor       string               `json:"risk_color"`
	RiskSummary     string               `json:"risk_summary"`
	Allocations     []AllocationView     `json:"allocations"`
	Recommendations []RecommendationView `json:"recommendations"`
}

// ExportRequest asks for a report to be written to the exports directory
type ExportRequest struct {
	Kind      string        `json:"kind"`   // health or portfolio
	Format    string        `json:"format"` // pdf (default), html or csv
	Health    HealthForm    `json:"health"`
	Portfolio PortfolioForm `json:"portfolio"`
}

// ExportResponse reports where an export was written
type ExportResponse struct {
	Success  bool   `json:"success"`
	FilePath string `json:"file_path,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Handlers

func (ws *WebServer) handleLiveness(w http.ResponseWriter, r *http.Request) {
	ws.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, webUIHTML)
}

func (ws *WebServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	assets := make([]AssetView, 0, len(AssetClasses))
	for _, asset := range AssetClasses {
		assets = append(assets, AssetView{
			Asset:        asset,
			AssetInfo:    AssetCatalog[asset],
			IdealPercent: IdealAllocation[asset],
			RangeLabel:   IdealRanges[asset].Label(),
		})
	}
	ws.writeJSON(w, http.StatusOK, ConfigResponse{
		Currency:          ws.config.App.Currency,
		Assets:            assets,
		DefaultHealthForm: DefaultHealthForm(),
		HealthForm:        ws.config.Health,
		PortfolioForm:     ws.config.Portfolio,
	})
}

func (ws *WebServer) handleHealthScore(w http.ResponseWriter, r *http.Request) {
	var form HealthForm
	if !ws.decode(w, r, &form) {
		return
	}
	ws.writeJSON(w, http.StatusOK, HealthResponse{
		Success: true,
		Report:  EvaluateHealth(form.Inputs()),
	})
}

func (ws *WebServer) handleHealthReset(w http.ResponseWriter, r *http.Request) {
	form := DefaultHealthForm()
	ws.writeJSON(w, http.StatusOK, HealthResponse{
		Success: true,
		Form:    &form,
		Report:  EvaluateHealth(form.Inputs()),
	})
}

func (ws *WebServer) handlePortfolioAnalyze(w http.ResponseWriter, r *http.Request) {
	var form PortfolioForm
	if !ws.decode(w, r, &form) {
		return
	}
	outcome := ComputeAllocation(form.Inputs())
	if !outcome.Analyzable() {
		ws.writeError(w, http.StatusUnprocessableEntity, ErrInsufficientData.Error())
		return
	}
	ws.writeJSON(w, http.StatusOK, ws.portfolioResponse(outcome))
}

func (ws *WebServer) handleHealthPDF(w http.ResponseWriter, r *http.Request) {
	var form HealthForm
	if !ws.decode(w, r, &form) {
		return
	}
	data, err := GenerateHealthPDFReport(EvaluateHealth(form.Inputs()), ws.config.App.Currency, NewReportMeta(time.Now()))
	if err != nil {
		ws.fail(w, err)
		return
	}
	writeDownload(w, "application/pdf", "Financial_Health_Report.pdf", data)
}

func (ws *WebServer) handlePortfolioPDF(w http.ResponseWriter, r *http.Request) {
	var form PortfolioForm
	if !ws.decode(w, r, &form) {
		return
	}
	data, err := GeneratePortfolioPDFReport(ComputeAllocation(form.Inputs()), ws.config.App.Currency, NewReportMeta(time.Now()))
	if err != nil {
		ws.fail(w, err)
		return
	}
	writeDownload(w, "application/pdf", "Portfolio_Analysis_Report.pdf", data)
}

func (ws *WebServer) handlePortfolioCSV(w http.ResponseWriter, r *http.Request) {
	var form PortfolioForm
	if !ws.decode(w, r, &form) {
		return
	}
	var buf strings.Builder
	if err := WriteAllocationCSV(&buf, ComputeAllocation(form.Inputs())); err != nil {
		ws.fail(w, err)
		return
	}
	writeDownload(w, "text/csv; charset=utf-8", "Portfolio_Analysis.csv", []byte(buf.String()))
}

func (ws *WebServer) handleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if !ws.decode(w, r, &req) {
		return
	}

	now := time.Now()
	var path string
	var err error
	switch req.Kind + "/" + strings.ToLower(req.Format) {
	case "health/", "health/pdf":
		path, err = ws.exporter.ExportHealth(EvaluateHealth(req.Health.Inputs()), now)
	case "health/html":
		path, err = ws.exporter.ExportHealthHTML(EvaluateHealth(req.Health.Inputs()), now)
	case "portfolio/", "portfolio/pdf":
		path, err = ws.exporter.ExportPortfolio(ComputeAllocation(req.Portfolio.Inputs()), now)
	case "portfolio/html":
		path, err = ws.exporter.ExportPortfolioHTML(ComputeAllocation(req.Portfolio.Inputs()), now)
	case "portfolio/csv":
		path, err = ws.exporter.ExportPortfolioCSV(ComputeAllocation(req.Portfolio.Inputs()), now)
	default:
		ws.writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported export %q as %q", req.Kind, req.Format))
		return
	}
	if err != nil {
		ws.fail(w, err)
		return
	}

	if abs, absErr := filepath.Abs(path); absErr == nil {
		path = abs
	}
	ws.writeJSON(w, http.StatusOK, ExportResponse{
		Success:  true,
		FilePath: path,
		Message:  "Report saved to " + path,
	})
}

func (ws *WebServer) portfolioResponse(outcome AllocationOutcome) PortfolioResponse {
	c := ws.config.App.Currency
	resp := PortfolioResponse{
		Success:        true,
		TotalPortfolio: outcome.TotalPortfolio,
		TotalFormatted: c.Format(outcome.TotalPortfolio, 2),
		RiskProfile:    outcome.RiskProfile,
		RiskLabel:      outcome.RiskProfile.Label(),
		RiskColor:      riskColors[outcome.RiskProfile],
		RiskSummary:    outcome.RiskSummary(),
	}
	for _, res := range outcome.Results {
		info := AssetCatalog[res.Asset]
		resp.Allocations = append(resp.Allocations, AllocationView{
			AllocationResult: res,
			Label:            info.ShortLabel,
			Color:            info.Color,
			StatusNote:       res.StatusNote(c),
			ActionText:       res.ActionText(c),
		})
	}
	for _, rec := range outcome.Recommendations() {
		resp.Recommendations = append(resp.Recommendations, RecommendationView{Recommendation: rec, Text: rec.Text(c)})
	}
	return resp
}

// decode reads a JSON body into v, answering 400 on failure
func (ws *WebServer) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		ws.writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}

// fail maps an error to a JSON error response
func (ws *WebServer) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInsufficientData) {
		ws.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	ws.log.Error().Err(err).Msg("request failed")
	ws.writeError(w, http.StatusInternalServerError, err.Error())
}

// writeJSON encodes v before writing the header; an encoding failure is
// logged and answered with a 500
func (ws *WebServer) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		ws.log.Error().Err(err).Int("status", status).Msg("failed to encode response")
		status = http.StatusInternalServerError
		buf.Reset()
		json.NewEncoder(&buf).Encode(errorResponse{Success: false, Error: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ws.log.Debug().Err(err).Msg("failed to write response")
	}
}

func (ws *WebServer) writeError(w http.ResponseWriter, status int, message string) {
	ws.writeJSON(w, status, errorResponse{Success: false, Error: message})
}

func writeDownload(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Write(data)
}
