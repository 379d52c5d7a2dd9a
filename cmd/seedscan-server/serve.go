package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seedscan/internal/api"
	"seedscan/internal/config"
	"seedscan/internal/engine"
	"seedscan/internal/events"
	"seedscan/internal/health"
	"seedscan/internal/logging"
	"seedscan/internal/metrics"
	"seedscan/internal/oracle"
	"seedscan/internal/ratelimit"
	"seedscan/internal/wsstream"
)

// redisPinger adapts *redis.Client to health.Pinger.
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the seed-search HTTP and WebSocket server",
}

func init() {
	v := viper.New()
	config.BindFlags(serveCmd.Flags(), v)
	serveCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runServe(v)
	}
}

func runServe(v *viper.Viper) error {
	logging.InitLogger()

	cfg, err := config.Load(v)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable at startup, rate limiting will fail open")
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = nats.Connect(cfg.NATSURL)
		if err != nil {
			log.Warn().Err(err).Msg("nats unreachable at startup, scan-completed events will be dropped")
			natsConn = nil
		} else {
			defer natsConn.Close()
		}
	}

	o := oracle.NewSyntheticOracle()
	eng := engine.New(o).WithWorkerCap(cfg.WorkerCap)
	pub := events.NewPublisher(natsConn, log.Logger)
	m := metrics.NewMetrics()
	m.Register(prometheus.DefaultRegisterer)
	limiter := ratelimit.New(redisClient, log.Logger)
	verifier := api.NewTokenVerifier(cfg.JWTSigningKey)

	var natsHealth health.NATSConn
	if natsConn != nil {
		natsHealth = natsConn
	}
	checker := health.NewChecker(redisPinger{redisClient}, natsHealth)

	handlers := api.New(eng, o, pub, m)
	streamHandler := wsstream.New(eng, o, pub, m)

	c := cron.New()
	c.AddFunc("@every 1m", func() {
		status := checker.Check(ctx)
		log.Info().Fields(map[string]interface{}{"health": status}).Msg("scheduled health snapshot")
	})
	c.Start()
	defer c.Stop()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", checker.Handler())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/structures", api.ListStructures)
	r.Get("/biomes", api.ListBiomes)

	r.Group(func(r chi.Router) {
		r.Use(api.RequireAuth(verifier))
		r.Use(api.RateLimitByIP(limiter, cfg.RateLimit, cfg.RateLimitWindow))

		r.Post("/search", handlers.Search)
		r.Get("/stream", streamHandler.ServeHTTP)
	})

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // streaming connections can run far longer than a fixed write timeout allows
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info().Msg("shutting down server")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}

	log.Info().Msg("server stopped")
	return nil
}
