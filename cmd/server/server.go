package server

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kfsoftware/tunnel-manager/pkg/config"
	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/kfsoftware/tunnel-manager/pkg/service"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const shutdownTimeout = 10 * time.Second

type serverCmd struct {
	configFile      string
	envFile         string
	addr            string
	adminAddr       string
	databaseURL     string
	maxPoolSize     int
	maxIdleConns    int
	connMaxLifetime time.Duration
	corsOrigins     []string
}

func (c *serverCmd) validate() error {
	if c.envFile != "" {
		if _, err := os.Stat(c.envFile); err != nil {
			return errors.Wrapf(err, "env file %s", c.envFile)
		}
	}
	return nil
}

// settings resolves the configuration, letting explicit flags win over the
// file and the environment.
func (c *serverCmd) settings(flags *pflag.FlagSet) (*config.Config, error) {
	if c.envFile != "" {
		if err := config.LoadEnvFile(c.envFile); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return nil, err
	}
	if flags.Changed("addr") {
		cfg.Addr = c.addr
	}
	if flags.Changed("admin-addr") {
		cfg.AdminAddr = c.adminAddr
	}
	if flags.Changed("database-url") {
		cfg.DatabaseURL = c.databaseURL
	}
	if flags.Changed("max-pool-size") {
		cfg.MaxPoolSize = c.maxPoolSize
	}
	if flags.Changed("max-idle-conns") {
		cfg.MaxIdleConns = c.maxIdleConns
	}
	if flags.Changed("conn-max-lifetime") {
		cfg.ConnMaxLifetime = c.connMaxLifetime
	}
	if flags.Changed("cors-origins") {
		cfg.CORSOrigins = c.corsOrigins
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *serverCmd) run(ctx context.Context, flags *pflag.FlagSet) error {
	cfg, err := c.settings(flags)
	if err != nil {
		return err
	}
	gormDB, pool, err := db.Open(ctx, cfg.DatabaseURL, db.PoolOptions{
		MaxOpenConns:    cfg.MaxPoolSize,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := pool.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database pool")
			return
		}
		log.Info().Msg("Database pool closed")
	}()
	if err := db.Migrate(ctx, gormDB); err != nil {
		return err
	}

	grpcListener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", cfg.Addr)
	}
	adminListener, err := net.Listen("tcp", cfg.AdminAddr)
	if err != nil {
		grpcListener.Close()
		return errors.Wrapf(err, "failed to listen on %s", cfg.AdminAddr)
	}

	i := service.NewServerInstance(
		store.NewRepositories(gormDB),
		pool,
		grpcListener,
		adminListener,
		cfg.CORSOrigins,
	)
	errCh := make(chan error, 1)
	go func() {
		errCh <- i.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var serveErr error
	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	case serveErr = <-errCh:
		log.Error().Err(serveErr).Msg("Server stopped unexpectedly")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := i.Stop(stopCtx); err != nil {
		return err
	}
	return serveErr
}

func NewServerCmd() *cobra.Command {
	c := &serverCmd{}
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Serve the management API over gRPC",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.validate(); err != nil {
				return err
			}
			return c.run(cmd.Context(), cmd.Flags())
		},
	}
	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&c.configFile, "config", "c", "", "Path to a YAML configuration file")
	flags.StringVarP(&c.envFile, "env-file", "", "", "Path to a .env file exported before reading the environment")
	flags.StringVarP(&c.addr, "addr", "", defaults.Addr, "Address to listen for gRPC requests")
	flags.StringVarP(&c.adminAddr, "admin-addr", "", defaults.AdminAddr, "Address of the health and metrics endpoints")
	flags.StringVarP(&c.databaseURL, "database-url", "", "", "PostgreSQL connection string")
	flags.IntVarP(&c.maxPoolSize, "max-pool-size", "", defaults.MaxPoolSize, "Maximum number of open database connections")
	flags.IntVarP(&c.maxIdleConns, "max-idle-conns", "", defaults.MaxIdleConns, "Maximum number of idle database connections")
	flags.DurationVarP(&c.connMaxLifetime, "conn-max-lifetime", "", defaults.ConnMaxLifetime, "Maximum lifetime of a database connection")
	flags.StringSliceVarP(&c.corsOrigins, "cors-origins", "", defaults.CORSOrigins, "Origins allowed to call the admin endpoints")
	return cmd
}
