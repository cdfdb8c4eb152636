// Package server runs one service: the REST API on HTTP and a gRPC health
// endpoint, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"qualifygym/internal/common"
	"qualifygym/internal/config"
)

const apiPrefix = "/api/v1"

// RouteRegistrar is implemented by every resource handler.
type RouteRegistrar interface {
	RegisterRoutes(r *mux.Router)
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	handler    http.Handler
	httpServer *http.Server
	grpcServer *grpc.Server
	health     *health.Server
	closers    []func(context.Context) error
}

func New(cfg *config.Config, logger *slog.Logger, registrars ...RouteRegistrar) *Server {
	router := mux.NewRouter()
	router.Use(common.RecoverMiddleware, common.RequestIDMiddleware, common.LoggingMiddleware)

	router.HandleFunc("/health", healthHandler(cfg.Server.Name)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix(apiPrefix).Subrouter()
	for _, r := range registrars {
		r.RegisterRoutes(api)
	}

	// Also answers method mismatches under /api/v1: a sibling route sharing
	// the prefix clears mux's mismatch error.
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		common.RespondJSON(w, http.StatusNotFound, common.ErrorResponse{Error: "route not found", Code: string(common.KindNotFound)})
	})

	// CORS wraps the router so preflight requests reach it even though no
	// route matches OPTIONS.
	handler := common.CORSMiddleware(router)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(common.LoggingInterceptor()))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		grpcServer: grpcServer,
		health:     healthServer,
	}
}

func healthHandler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.RespondJSON(w, http.StatusOK, HealthResponse{Status: "UP", Service: service})
	}
}

// Handler exposes the full HTTP stack for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// OnShutdown registers fn to run after both servers have stopped, in
// reverse registration order.
func (s *Server) OnShutdown(fn func(context.Context) error) {
	s.closers = append(s.closers, fn)
}

// Run serves until SIGINT/SIGTERM or a listener failure.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.RunContext(ctx)
}

func (s *Server) RunContext(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if s.cfg.Server.GRPCPort != "" {
		lis, err := net.Listen("tcp", ":"+s.cfg.Server.GRPCPort)
		if err != nil {
			return fmt.Errorf("failed to listen on grpc port %s: %w", s.cfg.Server.GRPCPort, err)
		}
		s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		s.health.SetServingStatus(s.cfg.Server.Name, healthpb.HealthCheckResponse_SERVING)

		go func() {
			s.logger.Info("gRPC health server listening", "addr", lis.Addr().String())
			if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info("shutting down server")
	case runErr = <-errCh:
		s.logger.Error("server failed", "error", runErr)
	}

	if err := s.shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	s.health.Shutdown()
	s.grpcServer.GracefulStop()

	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}

	s.logger.Info("server stopped")
	return errors.Join(errs...)
}
