// Package httpapi exposes the offer engine over HTTP: the strategy catalog,
// offer generation, and PDF export. Numeric correctness lives in the
// offers package; handlers here only translate shapes and statuses.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"offersheet/internal/catalog"
	"offersheet/internal/offers"
	"offersheet/internal/pdfexport"
)

type Generator interface {
	Generate(ctx context.Context, raw map[string]any) (offers.OfferPair, error)
}

type PDFRenderer interface {
	Render(ctx context.Context, pair offers.OfferPair, format string) ([]byte, error)
}

type Server struct {
	catalog   *catalog.Catalog
	generator Generator
	renderer  PDFRenderer
	logger    *slog.Logger
}

func NewServer(cat *catalog.Catalog, generator Generator, renderer PDFRenderer, logger *slog.Logger, allowedOrigins []string) http.Handler {
	s := &Server{
		catalog:   cat,
		generator: generator,
		renderer:  renderer,
		logger:    logger,
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP, requestLogger(logger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/strategies", s.handleStrategies)
	r.Post("/api/generate", s.handleGenerate)
	r.Post("/api/export-pdf", s.handleExportPDF)
	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(started).Round(time.Millisecond).String(),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var oe *offers.Error
	if errors.As(err, &oe) {
		writeJSON(w, oe.Status, map[string]any{
			"error": map[string]any{"code": oe.Code, "message": oe.Message},
		})
		return
	}
	s.logger.Error("internal error", "err", err)
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error": map[string]any{"code": offers.CodeInternal, "message": "internal error"},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Entries())
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": "invalid_json", "message": "request body must be a JSON object"},
		})
		return
	}

	pair, err := s.generator.Generate(r.Context(), raw)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Offers *offers.OfferPair `json:"offers"`
		Format string            `json:"format"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": "invalid_json", "message": "request body must be a JSON object"},
		})
		return
	}
	if req.Offers == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": "missing_offers", "message": "offers is required"},
		})
		return
	}
	format := pdfexport.FormatBranded
	if req.Format == pdfexport.FormatPro {
		format = pdfexport.FormatPro
	}

	pdf, err := s.renderer.Render(r.Context(), *req.Offers, format)
	if err != nil {
		s.logger.Error("pdf render failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": map[string]any{"code": "pdf_render_failed", "message": "failed to render PDF"},
		})
		return
	}

	filename := fmt.Sprintf("offer_comparison_%s_%s.pdf", format, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
