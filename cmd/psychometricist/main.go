package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/config"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/db"
	dbRedis "github.com/Recognifygeneral/Psychometricist-AI/internal/db/redis"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	logpkg "github.com/Recognifygeneral/Psychometricist-AI/internal/logger"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/metrics"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/repository/checkpoint"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/repository/embcache"
	proberepo "github.com/Recognifygeneral/Psychometricist-AI/internal/repository/probe"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/repository/sessionlog"
	chiTransport "github.com/Recognifygeneral/Psychometricist-AI/internal/transport/chi"
	openaiTransport "github.com/Recognifygeneral/Psychometricist-AI/internal/transport/openai"
	healthuc "github.com/Recognifygeneral/Psychometricist-AI/internal/usecase/health"
	interviewuc "github.com/Recognifygeneral/Psychometricist-AI/internal/usecase/interview"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/usecase/scoring"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting assessment API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register metrics explicitly (no init())
	metrics.RegisterProviderMetrics()
	metrics.RegisterSessionMetrics()

	thresholds := domain.Thresholds{
		Low:  cfg.Scoring.LowThreshold,
		High: cfg.Scoring.HighThreshold,
	}

	// Provider clients. The completer drives both question generation
	// and the generative judge; the embedder drives similarity scoring.
	provCfg := &openaiTransport.Config{
		APIKey:         cfg.Providers.OpenAI.APIKey,
		BaseURL:        cfg.Providers.OpenAI.BaseURL,
		ChatModel:      cfg.Providers.OpenAI.ChatModel,
		EmbeddingModel: cfg.Providers.OpenAI.EmbeddingModel,
		Timeout:        time.Duration(cfg.Providers.OpenAI.TimeoutSec) * time.Second,
		Logger:         logger,
	}
	completer := openaiTransport.NewCompleter(provCfg)

	// Similarity scorer uses the embedder behind the cache decorator.
	// Vignette embeddings are stable, so the cache eliminates repeat
	// provider calls.
	var similarity *scoring.SimilarityScorer
	var embedderCheck healthuc.ProviderChecker
	if cfg.Scoring.SimilarityEnabled() {
		baseEmbedder := openaiTransport.NewEmbedder(provCfg)
		cached := embcache.New(baseEmbedder, store, metrics.EmbeddingCacheTotal, logger)
		similarity = scoring.NewSimilarityScorer(
			cached, cached, thresholds, cfg.Scoring.SimilarityMinWords, logger,
		)
		embedderCheck = baseEmbedder
	}

	var judgment *scoring.JudgmentScorer
	if cfg.Scoring.JudgmentEnabled() {
		judgment = scoring.NewJudgmentScorer(completer, thresholds, logger)
	}

	var rule *scoring.RuleScorer
	if cfg.Scoring.RuleEnabled() {
		rule = scoring.NewRuleScorer(thresholds)
	}

	fuser := newFuser(rule, similarity, judgment, thresholds, cfg.Scoring, logger)

	// Probe pool
	probes, err := buildProbeRepo(ctx, cfg.Probes.Driver, store, logger)
	if err != nil {
		logger.Fatal("Failed to build probe pool", zap.Error(err))
	}

	// Repositories
	checkpoints := checkpoint.New(store, time.Duration(cfg.Interview.SessionTTLSec)*time.Second)
	logs := sessionlog.New(store)

	questioner := interviewuc.NewLLMQuestioner(completer)

	interviewSvc := interviewuc.New(
		probes, checkpoints, logs, questioner, fuser,
		interviewuc.Config{
			MaxTurns:      cfg.Interview.MaxTurns,
			MaxReplyBytes: cfg.Interview.MaxReplyBytes,
			HistoryWindow: cfg.Interview.HistoryWindow,
		},
		logger,
	)

	healthSvc := healthuc.New(store, map[string]healthuc.ProviderChecker{
		"embedding": embedderCheck,
		"chat":      completer,
	})

	server := chiTransport.NewServer(interviewSvc, logs, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newFuser wires the enabled scorers into the ensemble.
// Pass nil interface (not typed nil pointer!) for disabled methods.
// Go gotcha: (*scoring.RuleScorer)(nil) wrapped in an interface != nil.
func newFuser(
	rule *scoring.RuleScorer,
	similarity *scoring.SimilarityScorer,
	judgment *scoring.JudgmentScorer,
	thresholds domain.Thresholds,
	scoringCfg config.ScoringConfig,
	logger *zap.Logger,
) *scoring.Fuser {
	opts := scoring.Options{
		RunRule:       scoringCfg.RuleEnabled() && rule != nil,
		RunSimilarity: scoringCfg.SimilarityEnabled() && similarity != nil,
		RunJudgment:   scoringCfg.JudgmentEnabled() && judgment != nil,
		ScoreFacets:   scoringCfg.ScoreFacets,
	}

	var ruleArg scoring.RuleMethod
	if rule != nil {
		ruleArg = rule
	}
	var simArg scoring.SimilarityMethod
	if similarity != nil {
		simArg = similarity
	}
	var judgeArg scoring.JudgmentMethod
	if judgment != nil {
		judgeArg = judgment
	}

	return scoring.NewFuser(ruleArg, simArg, judgeArg, thresholds, opts, logger)
}

// buildProbeRepo selects the probe pool backend. The redis driver seeds
// the default pool on first start and lets operators edit it afterwards.
func buildProbeRepo(
	ctx context.Context,
	driver string,
	store db.Store,
	logger *zap.Logger,
) (interviewuc.ProbeStore, error) {
	switch driver {
	case "redis":
		repo := proberepo.NewRedis(store, logger)
		if err := repo.Seed(ctx, proberepo.DefaultProbes); err != nil {
			return nil, fmt.Errorf("seed probe pool: %w", err)
		}
		return repo, nil
	case "builtin":
		return proberepo.NewBuiltin(), nil
	default:
		return nil, fmt.Errorf("unknown probes driver %q", driver)
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
