package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/services/attempt"
	auth2 "gitlab.com/codetrial.net/internal/core/services/auth"
	"gitlab.com/codetrial.net/internal/core/services/challenge"
	"gitlab.com/codetrial.net/internal/core/services/leaderboard"
	"gitlab.com/codetrial.net/internal/handlers"
	"gitlab.com/codetrial.net/internal/handlers/attempts"
	"gitlab.com/codetrial.net/internal/handlers/auth"
	"gitlab.com/codetrial.net/internal/handlers/challenges"
	leaderboardhandler "gitlab.com/codetrial.net/internal/handlers/leaderboard"
	"gitlab.com/codetrial.net/internal/handlers/response"
)

type ServiceProvider struct {
	challengeService   challenge.IChallengeService
	attemptService     attempt.IAttemptService
	leaderboardService leaderboard.ILeaderboardService

	jwtService primary.JWTService
	ggAuth     auth2.IAuthService
	localAuth  auth2.IAuthService
}

func NewServiceProvider(
	challengeService challenge.IChallengeService,
	attemptService attempt.IAttemptService,
	leaderboardService leaderboard.ILeaderboardService,
	jwtService primary.JWTService,
	ggAuth auth2.IAuthService,
	localAuth auth2.IAuthService,
) *ServiceProvider {
	return &ServiceProvider{
		challengeService:   challengeService,
		attemptService:     attemptService,
		leaderboardService: leaderboardService,
		jwtService:         jwtService,
		ggAuth:             ggAuth,
		localAuth:          localAuth,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	mw := handlers.New(s.ServiceProvider.jwtService, s.logger)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.WriteSuccess(w, map[string]string{"status": "ok", "service": s.ServiceName})
	}).Methods("GET")

	challenges.NewHandler(s.ServiceProvider.challengeService, s.logger).RegisterRoutes(r, mw)
	attempts.NewHandler(s.ServiceProvider.attemptService, s.logger).RegisterRoutes(r, mw)
	leaderboardhandler.NewHandler(s.ServiceProvider.leaderboardService, s.logger).RegisterRoutes(r, mw)
	auth.NewHandler(s.logger).RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	})
	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Failed to shut down http server", "error", err)
	}
}
