package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vadiminshakov/coindash/config"
	"github.com/vadiminshakov/coindash/internal/clients"
	"github.com/vadiminshakov/coindash/internal/services/dashboard"
	"github.com/vadiminshakov/coindash/internal/web"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger)
		},
	}
}

func newDashboardService(cfg config.Config, logger *zap.Logger) *dashboard.Service {
	client := clients.NewCoinGeckoClient(cfg.APIKey,
		clients.WithBaseURL(cfg.APIBaseURL),
		clients.WithLogger(logger),
	)
	return dashboard.NewService(client, cfg.TopN, logger)
}

func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if cfg.APIKey == "" {
		logger.Warn("COINGECKO_API_KEY is not set, upstream requests are unauthenticated")
	}

	srv := web.NewServer(cfg.Addr, newDashboardService(cfg, logger), cfg.DefaultDays, cfg.CORSOrigins, logger)

	logger.Info("coindash started",
		zap.String("addr", cfg.Addr),
		zap.Int("top_n", cfg.TopN),
		zap.Bool("auto_tls", cfg.AutoTLS),
	)
	if cfg.AutoTLS {
		return srv.StartWithAutoTLS(ctx, cfg.Domains, cfg.CertCacheDir)
	}
	return srv.Start(ctx)
}
