// ABOUTME: Gateway orchestrator that coordinates GRPC and HTTP servers
// ABOUTME: Owns the entity store, registers the bulletin services, and serves health and metrics

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	_ "github.com/2389/bulletin-gateway/internal/api" // application/grpc+json codec
	"github.com/2389/bulletin-gateway/internal/config"
	"github.com/2389/bulletin-gateway/internal/metrics"
	"github.com/2389/bulletin-gateway/internal/service"
	"github.com/2389/bulletin-gateway/internal/store"
	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

// Gateway orchestrates the bulletin-gateway server components.
// It manages the GRPC server for the entity services and the HTTP server for
// health checks and metrics.
type Gateway struct {
	config     *config.Config
	store      *store.Store
	metrics    *metrics.Metrics
	grpcServer *grpc.Server
	httpServer *http.Server
	logger     *slog.Logger
}

// initStore creates the entity store from the configured strategy and seed file.
func initStore(cfg *config.Config) (*store.Store, error) {
	opts := store.Options{IDStrategy: cfg.Store.IDStrategy}
	if cfg.Store.SeedPath != "" {
		seed, err := store.LoadSeed(cfg.Store.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("initializing store: %w", err)
		}
		opts.Seed = seed
	}

	s, err := store.New(opts)
	if err != nil {
		return nil, fmt.Errorf("initializing store: %w", err)
	}
	return s, nil
}

// createGRPCServer creates a gRPC server with logging and, when enabled, metrics interceptors.
func createGRPCServer(m *metrics.Metrics, logger *slog.Logger) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		LoggingUnaryInterceptor(logger.With("component", "grpc")),
	}
	if m != nil {
		interceptors = append(interceptors, m.UnaryInterceptor())
	}

	return grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    15 * time.Second,
			Timeout: 5 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.ChainUnaryInterceptor(interceptors...),
	)
}

// registerGRPCServices registers the news, post and user services.
func registerGRPCServices(grpcServer *grpc.Server, s *store.Store, logger *slog.Logger) {
	logger = logger.With("component", "service")
	pb.RegisterNewsServiceServer(grpcServer, service.NewNewsService(s.News, logger))
	pb.RegisterPostServiceServer(grpcServer, service.NewPostService(s.Posts, logger))
	pb.RegisterUserServiceServer(grpcServer, service.NewUserService(s.Users, logger))
}

// New creates a new Gateway instance with the given configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s, err := initStore(cfg)
	if err != nil {
		return nil, err
	}

	gw := &Gateway{
		config: cfg,
		store:  s,
		logger: logger.With("component", "gateway"),
	}

	if cfg.Metrics.Enabled {
		gw.metrics = metrics.New(
			[]string{s.News.Name(), s.Posts.Name(), s.Users.Name()},
			s.Counts,
		)
	}

	gw.grpcServer = createGRPCServer(gw.metrics, logger)
	registerGRPCServices(gw.grpcServer, s, logger)

	// Create HTTP server for health checks and metrics
	mux := http.NewServeMux()
	mux.HandleFunc(config.HealthPath, gw.handleHealth)
	mux.HandleFunc(config.ReadyPath, gw.handleReady)
	if gw.metrics != nil {
		mux.Handle(cfg.Metrics.Path, gw.metrics.Handler())
		logger.Info("metrics enabled", "path", cfg.Metrics.Path)
	}

	gw.httpServer = &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	counts := s.Counts()
	logger.Info("store ready",
		"id_strategy", cfg.Store.IDStrategy,
		"news", counts[s.News.Name()],
		"posts", counts[s.Posts.Name()],
		"users", counts[s.Users.Name()],
	)

	return gw, nil
}

// Store returns the gateway's entity store.
func (g *Gateway) Store() *store.Store {
	return g.store
}

// setupListeners creates TCP listeners for gRPC and HTTP.
func (g *Gateway) setupListeners() (grpcLn, httpLn net.Listener, err error) {
	g.logger.Info("starting gateway",
		"grpc_addr", g.config.Server.GRPCAddr,
		"http_addr", g.config.Server.HTTPAddr,
	)

	grpcLn, err = net.Listen("tcp", g.config.Server.GRPCAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listening on gRPC address: %w", err)
	}

	httpLn, err = net.Listen("tcp", g.config.Server.HTTPAddr)
	if err != nil {
		_ = grpcLn.Close()
		return nil, nil, fmt.Errorf("listening on HTTP address: %w", err)
	}

	return grpcLn, httpLn, nil
}

// startServers starts gRPC and HTTP servers in goroutines, returning error channel.
func (g *Gateway) startServers(grpcLn, httpLn net.Listener) chan error {
	errCh := make(chan error, 2)

	go func() {
		g.logger.Info("gRPC server listening", "addr", grpcLn.Addr().String())
		if err := g.grpcServer.Serve(grpcLn); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	go func() {
		g.logger.Info("HTTP server listening", "addr", httpLn.Addr().String())
		if err := g.httpServer.Serve(httpLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	return errCh
}

// waitForShutdownSignal waits for context cancellation or server error.
func (g *Gateway) waitForShutdownSignal(ctx context.Context, errCh chan error) error {
	select {
	case <-ctx.Done():
		g.logger.Info("context canceled, initiating shutdown")
		return nil
	case err := <-errCh:
		g.logger.Error("server error", "error", err)
		g.drainErrors(errCh)
		return err
	}
}

// drainErrors drains any remaining errors from the channel.
func (g *Gateway) drainErrors(errCh chan error) {
	select {
	case additionalErr := <-errCh:
		g.logger.Error("additional server error", "error", additionalErr)
	default:
	}
}

// Run starts both servers and blocks until ctx is canceled or a server fails.
func (g *Gateway) Run(ctx context.Context) error {
	grpcListener, httpListener, err := g.setupListeners()
	if err != nil {
		return err
	}

	errCh := g.startServers(grpcListener, httpListener)
	serverErr := g.waitForShutdownSignal(ctx, errCh)

	shutdownErr := g.gracefulShutdown()

	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// gracefulShutdown performs shutdown with a fresh context and the configured timeout.
// Uses context.Background() since the original context is already canceled.
func (g *Gateway) gracefulShutdown() error {
	timeout := g.config.Shutdown.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return g.Shutdown(ctx)
}

// shutdownGRPCServer gracefully stops the gRPC server or force-stops on context cancel.
func (g *Gateway) shutdownGRPCServer(ctx context.Context) {
	stopped := make(chan struct{})
	go func() {
		g.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.grpcServer.Stop()
	}
}

// Shutdown gracefully stops all gateway servers.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.logger.Info("shutting down gateway")

	var errs []error
	if err := g.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("HTTP shutdown: %w", err))
	}

	g.shutdownGRPCServer(ctx)

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}

// handleHealth returns 200 OK if the server is alive.
func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// readyResponse is the body of /health/ready.
type readyResponse struct {
	Status string         `json:"status"`
	Counts map[string]int `json:"counts"`
}

// handleReady reports the number of entities held in each collection.
func (g *Gateway) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(readyResponse{
		Status: "ready",
		Counts: g.store.Counts(),
	})
}
