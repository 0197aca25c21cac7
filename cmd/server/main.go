package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"califica-tu-profe/auth"
	"califica-tu-profe/internal"
	"califica-tu-profe/moderation"
	"califica-tu-profe/observability"
	"califica-tu-profe/providers"
	"califica-tu-profe/repositories"
	"califica-tu-profe/sentiment"
	"califica-tu-profe/server"
	"califica-tu-profe/services"
	"califica-tu-profe/topics"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern keeps 'defer' statements (database cleanup) effective on every exit path and
// decouples initialization from the entry point.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Moderation pipeline
	detector, err := moderation.NewDetector(moderation.DefaultWordlist(), charReplacement)
	if err != nil {
		return exitConfig, fmt.Errorf("detector init failed: %w", err)
	}

	var externalProviders []providers.Provider
	if config.PerspectiveAPIKey != "" {
		externalProviders = append(externalProviders, providers.NewPerspective(providers.PerspectiveConfig{
			APIKey:  config.PerspectiveAPIKey,
			BaseURL: config.PerspectiveBaseURL,
			Timeout: config.ProviderTimeout,
		}))
	}
	if config.OpenAIAPIKey != "" {
		externalProviders = append(externalProviders, providers.NewOpenAIModeration(providers.OpenAIConfig{
			APIKey:  config.OpenAIAPIKey,
			BaseURL: config.OpenAIBaseURL,
			Timeout: config.ProviderTimeout,
		}))
	}
	logger.Info("External moderation providers configured", "count", len(externalProviders))

	monitor := observability.NewMonitor(logger)
	aggregator := providers.NewAggregator(externalProviders, config.ProviderTimeout, logger).
		WithFailureRecorder(monitor)

	store := repositories.NewDocumentStore(db, logger)
	auditRepository := repositories.NewAuditRepository(blugeWriter, logger)

	engine := moderation.NewEngine(detector, aggregator, auditRepository,
		config.ToxicityThreshold, config.AuditExcerptLen, logger)

	// 4. Services & HTTP surface
	analysisService := services.NewAnalysisService(
		sentiment.NewScorer(sentiment.DefaultLexicon()),
		topics.NewClassifier(topics.DefaultClusters(), topics.DefaultMarkers(), topics.DefaultCategoryRules()),
		logger)
	reportService := services.NewReportService(
		repositories.NewReportRepository(store),
		repositories.NewContentRepository(store),
		logger)
	tokens := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration)

	srv := server.NewServer(engine, reportService, analysisService, auditRepository, monitor, tokens, logger)

	if logger.Enabled(ctx, slog.LevelDebug) {
		debugPort := lo.FromPtrOr(config.DebugPort, 8081)
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", debugPort, endpoint))
		internal.StartDebugServer(db, debugPort, endpoint, internal.ReportMapper, func() map[string]any {
			snapshot := monitor.Snapshot()
			return map[string]any{
				"Checks":           snapshot.ChecksTotal,
				"Blocked":          snapshot.BlockedTotal,
				"Reports":          snapshot.ReportsTotal,
				"ProviderFailures": snapshot.ProviderFailures,
				"AllocMb":          snapshot.AllocMemMb,
				"Goroutines":       snapshot.NumGoroutine,
			}
		})
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: srv.Handler()}

	go func() {
		logger.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("HTTP shutdown error: %w", err)
	}
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
