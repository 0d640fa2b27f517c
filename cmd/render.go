package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/vadiminshakov/coindash/internal/domain"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		coins string
		days  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch market data once and print the dashboard render model as JSON",
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

			d, err := domain.ParseDays(days, cfg.DefaultDays)
			if err != nil {
				return err
			}
			req := domain.SelectionRequest{
				Coins:    domain.ParseCoinList(coins),
				Explicit: cmd.Flags().Changed("coins"),
				Days:     d,
			}

			model := newDashboardService(cfg, logger).Render(cmd.Context(), req)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(model)
		},
	}

	cmd.Flags().StringVar(&coins, "coins", "", "comma separated coin ids, defaults to the top coin")
	cmd.Flags().StringVar(&days, "days", "", "day range: 1, 7, 14, 30, 90, 180 or 365")
	return cmd
}
