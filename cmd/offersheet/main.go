package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"offersheet/internal/catalog"
	"offersheet/internal/httpapi"
	"offersheet/internal/offers"
	"offersheet/internal/pdfexport"
)

func main() {
	var (
		addr = flag.String("addr", ":8080", "HTTP listen address")
	)
	flag.Parse()

	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))

	drafter, err := offers.NewAnthropicDrafterFromEnv()
	if err != nil {
		log.Fatalf("drafting service: %v", err)
	}

	cat := catalog.New()
	generator := offers.NewGenerator(cat, drafter, draftTimeoutFromEnv())
	renderer := pdfexport.NewChromiumRenderer()
	handler := httpapi.NewServer(cat, generator, renderer, logger, allowedOriginsFromEnv())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Info("offersheet listening", "addr", *addr)
	srv := &http.Server{Addr: *addr, Handler: handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func draftTimeoutFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("DRAFT_TIMEOUT_SECONDS"))
	if raw == "" {
		return 60 * time.Second
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(seconds) * time.Second
}

func allowedOriginsFromEnv() []string {
	raw := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(origin); v != "" {
			origins = append(origins, v)
		}
	}
	return origins
}
