package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	proxy "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/peer"

	"github.com/spacemeshos/rpow/ledger"
	"github.com/spacemeshos/rpow/logging"
	api "github.com/spacemeshos/rpow/release/proto/go/rpc/api/v1"
	"github.com/spacemeshos/rpow/rpc"
)

type Server struct {
	ledger *ledger.Ledger
	cfg    Config

	rpcListener     net.Listener
	restListener    net.Listener
	metricsListener net.Listener
}

func listen(rawAddr string) (net.Listener, error) {
	addr, err := net.ResolveTCPAddr("tcp", rawAddr)
	if err != nil {
		return nil, err
	}
	l, err := net.Listen(addr.Network(), addr.String())
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}
	return l, nil
}

func New(ctx context.Context, cfg Config, opts ...ledger.Option) (*Server, error) {
	var listeners []net.Listener
	closeListeners := func(err error) error {
		for _, l := range listeners {
			err = multierror.Append(err, l.Close())
		}
		return err
	}

	// Resolve the RPC listener
	rpcListener, err := listen(cfg.RawRPCListener)
	if err != nil {
		return nil, err
	}
	listeners = append(listeners, rpcListener)

	// Resolve the REST listener
	restListener, err := listen(cfg.RawRESTListener)
	if err != nil {
		return nil, closeListeners(err)
	}
	listeners = append(listeners, restListener)

	var metricsListener net.Listener
	if cfg.MetricsPort != nil {
		metricsListener, err = listen(fmt.Sprintf(":%d", *cfg.MetricsPort))
		if err != nil {
			return nil, closeListeners(err)
		}
		listeners = append(listeners, metricsListener)
	}

	if _, err := os.Stat(cfg.DbDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.DbDir, 0o700); err != nil {
			return nil, closeListeners(err)
		}
	}

	opts = append([]ledger.Option{ledger.WithConfig(cfg.Ledger)}, opts...)
	l, err := ledger.Open(ctx, cfg.DbDir, opts...)
	if err != nil {
		return nil, closeListeners(fmt.Errorf("opening ledger: %w", err))
	}

	return &Server{
		ledger: l,
		cfg:    cfg,

		rpcListener:     rpcListener,
		restListener:    restListener,
		metricsListener: metricsListener,
	}, nil
}

// Close releases the ledger and the listeners that Start didn't consume.
func (s *Server) Close() error {
	var result *multierror.Error
	if err := s.ledger.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("closing ledger: %w", err))
	}
	for _, l := range []net.Listener{s.rpcListener, s.restListener, s.metricsListener} {
		if l == nil {
			continue
		}
		if err := l.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			result = multierror.Append(result, fmt.Errorf("closing listener %s: %w", l.Addr(), err))
		}
	}
	return result.ErrorOrNil()
}

// GrpcAddr returns the address that server is listening on for GRPC.
func (s *Server) GrpcAddr() net.Addr {
	return s.rpcListener.Addr()
}

// GrpcRestProxyAddr returns the address that REST endpoints are served on.
func (s *Server) GrpcRestProxyAddr() net.Addr {
	return s.restListener.Addr()
}

// MetricsAddr returns the address of the metrics endpoint, if enabled.
func (s *Server) MetricsAddr() net.Addr {
	if s.metricsListener == nil {
		return nil
	}
	return s.metricsListener.Addr()
}

// Ledger returns the ledger backing the server.
func (s *Server) Ledger() *ledger.Ledger {
	return s.ledger
}

// Start starts the RPC server.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()
	serverGroup, ctx := errgroup.WithContext(ctx)

	logger := logging.FromContext(ctx)
	logger.Info("starting rpow node", zap.Object("ledger", s.cfg.Ledger))

	rpcServer := rpc.NewServer(s.ledger)
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(loggerInterceptor(logger)),
		grpc.MaxSendMsgSize(s.cfg.MaxGrpcRespSize),
		// XXX: this is done to prevent routers from cleaning up our connections (e.g aws load balances..)
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     time.Minute * 120,
			MaxConnectionAge:      time.Minute * 180,
			MaxConnectionAgeGrace: time.Minute * 10,
			Time:                  time.Minute,
			Timeout:               time.Minute * 3,
		}),
	)
	api.RegisterPowServiceServer(grpcServer, rpcServer)

	// Start the gRPC server listening for HTTP/2 connections.
	serverGroup.Go(func() error {
		logger.Sugar().Infof("GRPC server listening on %s", s.rpcListener.Addr())
		return grpcServer.Serve(s.rpcListener)
	})

	// Start the REST proxy for the gRPC server above.
	mux := proxy.NewServeMux()
	err := api.RegisterPowServiceHandlerFromEndpoint(
		ctx,
		mux,
		s.rpcListener.Addr().String(),
		[]grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(s.cfg.MaxGrpcRespSize)),
		},
	)
	if err != nil {
		grpcServer.Stop()
		return err
	}
	servers := []*http.Server{{Handler: mux, ReadHeaderTimeout: time.Second * 5}}
	listeners := []net.Listener{s.restListener}

	if s.metricsListener != nil {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		servers = append(servers, &http.Server{Handler: metricsMux, ReadHeaderTimeout: time.Second * 5})
		listeners = append(listeners, s.metricsListener)
	}

	for i, server := range servers {
		server, listener := server, listeners[i]
		serverGroup.Go(func() error {
			logger.Sugar().Infof("HTTP server starts listening on %s", listener.Addr())
			err := server.Serve(listener)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		})
	}

	// Wait for the server to shut down gracefully
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	grpcServer.GracefulStop()
	for _, server := range servers {
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Sugar().Errorf("failed to shutdown server: %s", err)
		}
	}
	if err := serverGroup.Wait(); err != nil {
		logger.Sugar().Errorf("error when waiting to shutdown servers: %s", err)
	}
	return nil
}

// loggerInterceptor returns UnaryServerInterceptor handler to log all RPC server incoming requests.
func loggerInterceptor(
	logger *zap.Logger,
) func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		peer, _ := peer.FromContext(ctx)

		logger := logger.Named(info.FullMethod).With(zap.Stringer("request_id", uuid.New()))
		ctx = logging.NewContext(ctx, logger)

		if msg, ok := req.(fmt.Stringer); ok && peer != nil {
			logger.Debug("new GRPC", zap.Stringer("from", peer.Addr), zap.Stringer("message", msg))
		}

		resp, err := handler(ctx, req)
		if err != nil {
			logger.Info("FAILURE", zap.Error(err))
		}
		return resp, err
	}
}
