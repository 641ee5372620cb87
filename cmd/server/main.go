package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/tcg-trading-api/internal/config"
	"github.com/sbilibin2017/tcg-trading-api/internal/grpcserver"
	"github.com/sbilibin2017/tcg-trading-api/internal/jwt"
	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/middlewares"
	"github.com/sbilibin2017/tcg-trading-api/internal/repositories"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title tcg-trading-api API
// @version 1.0.0
// @description Trading card collection and trading backend
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// newKafkaWriter returns nil when no brokers are configured, which disables trade events.
func newKafkaWriter(cfg *config.Config) *kafka.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// run connects PostgreSQL, Redis and Kafka, starts the gRPC health server
// and the HTTP server, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}
	defer rdb.Close()

	// Trade events
	var tradeEvents services.KafkaWriter
	if w := newKafkaWriter(cfg); w != nil {
		logger.Log.Infow("publishing trade events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
		defer w.Close()
		tradeEvents = w
	} else {
		logger.Log.Warnw("KAFKA_BROKERS not set, trade events are disabled")
	}

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userRepo := repositories.NewUserRepository(db, txGetter)
	userCardRepo := repositories.NewUserCardRepository(db, txGetter)
	wishlistRepo := repositories.NewWishlistRepository(db, txGetter)
	tradeRepo := repositories.NewTradeRepository(db, txGetter)
	statusRepo := repositories.NewStatusRepository(db, txGetter)
	denylist := repositories.NewTokenDenylistRepository(rdb)

	// Initialize services
	userService := services.NewUserService(userRepo,
		repositories.NewUserRelationsRepository(userCardRepo, wishlistRepo, tradeRepo))

	deps := routerDeps{
		DB:       db,
		Tokener:  tokens,
		Denylist: denylist,
		Admins:   userService,

		Auth:       services.NewAuthService(userRepo, tokens, denylist),
		Cards:      services.NewCardService(repositories.NewCardRepository(db, txGetter)),
		Sets:       services.NewSetService(repositories.NewSetRepository(db, txGetter)),
		Rarities:   services.NewRarityService(repositories.NewRarityRepository(db, txGetter)),
		Conditions: services.NewConditionService(repositories.NewConditionRepository(db, txGetter)),
		Statuses:   services.NewStatusService(statusRepo),
		Users:      userService,
		UserCards:  services.NewUserCardService(userCardRepo),
		Wishlists:  services.NewWishlistService(wishlistRepo),
		Trades:     services.NewTradeService(tradeRepo, statusRepo, tradeEvents),

		SwaggerURL: fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr()),
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: newRouter(deps),
	}

	grpcLis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	health := grpcserver.New()

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		if err := health.Serve(grpcLis); err != nil {
			errChan <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()
	health.SetServing(true)

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
	}

	health.SetServing(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	health.Stop()

	logger.Log.Info("servers stopped gracefully")
	return serveErr
}
