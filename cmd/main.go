// Command coindash serves the crypto market dashboard backed by the
// CoinGecko API.
//
// Usage:
//
//	coindash serve --config config.yaml
//	coindash render --coins bitcoin,ethereum --days 7
//	coindash setup
//
// Environment variables:
//
//	COINGECKO_API_KEY  demo API key sent with every upstream request
//	COINDASH_ADDR      listen address, overrides the config file
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vadiminshakov/coindash/config"
)

type rootOptions struct {
	configPath string
	addr       string
	topN       int
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "coindash",
		Short:         "Interactive crypto market dashboard",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to yaml config")
	cmd.PersistentFlags().StringVar(&opts.addr, "addr", "", "listen address, e.g. :8080")
	cmd.PersistentFlags().IntVar(&opts.topN, "top-n", 0, "number of coins listed by market cap")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newServeCmd(opts),
		newRenderCmd(opts),
		newSetupCmd(),
	)
	return cmd
}

// load reads the config and applies flags set on the command line.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Get(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = o.addr
	}
	if flags.Changed("top-n") {
		cfg.TopN = o.topN
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}
