package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codetrial.net/internal/adapter/crypto"
	"gitlab.com/codetrial.net/internal/adapter/postgres/attemptrepository"
	"gitlab.com/codetrial.net/internal/adapter/postgres/challengerepository"
	"gitlab.com/codetrial.net/internal/adapter/postgres/userrepository"
	"gitlab.com/codetrial.net/internal/adapter/redis/windowport"
	"gitlab.com/codetrial.net/internal/adapter/sandbox"
	"gitlab.com/codetrial.net/internal/config"
	"gitlab.com/codetrial.net/internal/core/ports/secondary"
	"gitlab.com/codetrial.net/internal/core/services/attempt"
	auth2 "gitlab.com/codetrial.net/internal/core/services/auth"
	"gitlab.com/codetrial.net/internal/core/services/challenge"
	"gitlab.com/codetrial.net/internal/core/services/evaluation"
	"gitlab.com/codetrial.net/internal/core/services/leaderboard"
	logger2 "gitlab.com/codetrial.net/internal/global/logger"
	http2 "gitlab.com/codetrial.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting assessment platform service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	challengeRepo := challengerepository.NewChallengeRepository(db, logger)
	attemptRepo := attemptrepository.NewAttemptRepository(db, logger)
	userPort := userrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	windowStore := windowport.NewWindowStore(redisClient, logger)

	var remote secondary.CodeEvaluator
	if sysCfg.SandboxConfig.Enabled {
		remote = sandbox.NewClient(sysCfg.SandboxConfig, logger)
	} else {
		logger.Warn("Sandbox disabled, all execution uses the local evaluator")
	}

	// primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// services
	executionSvc := evaluation.NewExecutionService(remote, evaluation.NewFallbackEvaluator(), logger)
	challengeSvc := challenge.NewChallengeService(challengeRepo, windowStore, logger)
	attemptSvc := attempt.NewAttemptService(challengeRepo, attemptRepo, executionSvc, windowStore, logger)
	leaderboardSvc := leaderboard.NewLeaderboardService(challengeRepo, attemptRepo, userPort, logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider, sysCfg.GGAuthConfig)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider)
	serviceProvider := http2.NewServiceProvider(challengeSvc, attemptSvc, leaderboardSvc, jwtProvider, ggAuth, localAuth)

	// server
	httpServer := http2.NewServer(8082, "assessmentPlatform", *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
