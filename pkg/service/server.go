package service

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const pingTimeout = 2 * time.Second

type instance struct {
	pool          *sql.DB
	grpcServer    *grpc.Server
	health        *health.Server
	adminServer   *http.Server
	grpcListener  net.Listener
	adminListener net.Listener
	registry      *prometheus.Registry
	serviceNames  []string
}

// NewServerInstance wires the six services over repos. pool is only used for
// health checks and statistics; its lifecycle belongs to the caller.
func NewServerInstance(
	repos *store.Repositories,
	pool *sql.DB,
	grpcListener net.Listener,
	adminListener net.Listener,
	corsOrigins []string,
) *instance {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(pool, "tunnel_manager"),
	)
	m := newMetrics(registry)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			accessLogInterceptor,
			m.interceptor,
			recoveryInterceptor,
		),
	)
	messages.RegisterAgentServer(grpcServer, NewAgentService(repos.Agents))
	messages.RegisterRouterServer(grpcServer, NewRouterService(repos.Routers))
	messages.RegisterTunnelServer(grpcServer, NewTunnelService(repos.Tunnels))
	messages.RegisterUserServer(grpcServer, NewUserService(repos.Users))
	messages.RegisterPermissionServer(grpcServer, NewPermissionService(repos.Permissions))
	messages.RegisterPermissionMembershipServer(grpcServer, NewPermissionMembershipService(repos.Memberships))

	healthServer := health.NewServer()
	healthgrpc.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	t := &instance{
		pool:          pool,
		grpcServer:    grpcServer,
		health:        healthServer,
		grpcListener:  grpcListener,
		adminListener: adminListener,
		registry:      registry,
		serviceNames: []string{
			messages.Agent_ServiceDesc.ServiceName,
			messages.Router_ServiceDesc.ServiceName,
			messages.Tunnel_ServiceDesc.ServiceName,
			messages.User_ServiceDesc.ServiceName,
			messages.Permission_ServiceDesc.ServiceName,
			messages.PermissionMembership_ServiceDesc.ServiceName,
		},
	}
	t.adminServer = &http.Server{
		Handler:           t.adminRouter(corsOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return t
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	for _, origin := range origins {
		if origin == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	return config
}

func (t *instance) adminRouter(corsOrigins []string) http.Handler {
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Debug().Msgf("endpoint %v %v %v %v", httpMethod, absolutePath, handlerName, nuHandlers)
	}
	r := gin.New()
	r.Use(gin.Recovery(), cors.New(corsConfig(corsOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		if err := t.pool.PingContext(ctx); err != nil {
			log.Warn().Err(err).Msg("Database ping failed")
			c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":  "unavailable",
				"message": "database unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})))
	r.GET("/stats", func(c *gin.Context) {
		stats := t.pool.Stats()
		c.JSON(http.StatusOK, map[string]interface{}{
			"maxOpenConnections": stats.MaxOpenConnections,
			"openConnections":    stats.OpenConnections,
			"inUse":              stats.InUse,
			"idle":               stats.Idle,
			"waitCount":          stats.WaitCount,
			"waitDuration":       stats.WaitDuration.String(),
			"maxIdleClosed":      stats.MaxIdleClosed,
			"maxIdleTimeClosed":  stats.MaxIdleTimeClosed,
			"maxLifetimeClosed":  stats.MaxLifetimeClosed,
		})
	})
	return r
}

// Start serves gRPC and the admin HTTP server and blocks until both stop.
// When either fails the other is stopped and the first error is returned.
func (t *instance) Start() error {
	for _, name := range t.serviceNames {
		t.health.SetServingStatus(name, healthgrpc.HealthCheckResponse_SERVING)
	}
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr != nil {
			return
		}
		firstErr = err
		t.health.Shutdown()
		t.grpcServer.Stop()
		t.adminServer.Close()
	}
	wg.Add(2)
	go func() {
		defer wg.Done()
		log.Info().Msgf("gRPC server listening on %s", t.grpcListener.Addr().String())
		if err := t.grpcServer.Serve(t.grpcListener); err != nil {
			log.Error().Err(err).Msg("Failed to start gRPC server")
			setErr(errors.Wrap(err, "grpc server"))
		}
	}()
	go func() {
		defer wg.Done()
		log.Info().Msgf("Admin server listening on %s", t.adminListener.Addr().String())
		if err := t.adminServer.Serve(t.adminListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start admin server")
			setErr(errors.Wrap(err, "admin server"))
		}
	}()
	wg.Wait()
	return firstErr
}

// Stop drains in-flight calls until ctx expires, then closes every
// connection. The database pool is left open.
func (t *instance) Stop(ctx context.Context) error {
	t.health.Shutdown()
	done := make(chan struct{})
	go func() {
		t.grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		log.Info().Msg("gRPC server stopped gracefully")
	case <-ctx.Done():
		log.Warn().Msg("gRPC server forced to shutdown")
		t.grpcServer.Stop()
	}
	if err := t.adminServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "failed to stop admin server")
	}
	return nil
}
