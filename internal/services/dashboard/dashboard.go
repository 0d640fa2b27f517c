// Package dashboard assembles one render pass of the market dashboard: a
// Fetch step that performs all upstream I/O and a pure Build step that turns
// the fetched snapshot into the render model shown by the page.
package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/vadiminshakov/coindash/internal/domain"
)

// MarketData is the subset of the market-data client used by the dashboard.
type MarketData interface {
	TopCoins(ctx context.Context, n int) ([]domain.CoinSummary, error)
	OHLC(ctx context.Context, coinID string, days int) ([]domain.OHLCPoint, error)
}

// Snapshot market data fetched for one render pass.
type Snapshot struct {
	Coins []domain.CoinSummary
	// OHLC holds candlesticks per selected coin id; empty series are absent.
	OHLC map[string][]domain.OHLCPoint
}

// Service renders the dashboard from live market data.
type Service struct {
	client MarketData
	topN   int
	logger *zap.Logger
}

// NewService creates a dashboard service listing the top topN coins.
func NewService(client MarketData, topN int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		topN:   topN,
		logger: logger.With(zap.String("service", "dashboard")),
	}
}

// Render fetches market data for the request and builds the render model.
func (s *Service) Render(ctx context.Context, req domain.SelectionRequest) RenderModel {
	sel, snap := s.Fetch(ctx, req)
	return Build(sel, snap)
}

// Fetch resolves the selection against the current listing and loads the
// candlesticks of every selected coin. Calls are sequential: the listing
// first, then one OHLC request per coin in selection order. Upstream errors
// degrade to empty data.
func (s *Service) Fetch(ctx context.Context, req domain.SelectionRequest) (domain.Selection, Snapshot) {
	coins, err := s.client.TopCoins(ctx, s.topN)
	if err != nil {
		s.logger.Error("failed to load top coins", zap.Int("top_n", s.topN), zap.Error(err))
		coins = nil
	}

	sel := req.Resolve(domain.CoinIDs(coins))
	snap := Snapshot{
		Coins: coins,
		OHLC:  make(map[string][]domain.OHLCPoint, len(sel.Coins)),
	}

	for _, id := range sel.Coins {
		points, err := s.client.OHLC(ctx, id, sel.Days)
		if err != nil {
			s.logger.Error("failed to load ohlc", zap.String("coin", id), zap.Int("days", sel.Days), zap.Error(err))
			continue
		}
		if len(points) == 0 {
			s.logger.Debug("no ohlc data", zap.String("coin", id), zap.Int("days", sel.Days))
			continue
		}
		snap.OHLC[id] = points
	}

	return sel, snap
}
