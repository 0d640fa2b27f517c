// Package domain defines core data structures used throughout the dashboard.
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CoinSummary market snapshot of a single coin from the top-N listing.
type CoinSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	// CurrentPrice is the last price in USD.
	CurrentPrice decimal.Decimal `json:"current_price"`
	// MarketCap is the market capitalization in USD.
	MarketCap decimal.Decimal `json:"market_cap"`
	// TotalVolume is the trading volume over the last 24 hours in USD.
	TotalVolume decimal.Decimal `json:"total_volume"`
	// PriceChangePercentage24h is null upstream for freshly listed coins.
	PriceChangePercentage24h decimal.NullDecimal `json:"price_change_percentage_24h"`
}

// Ticker returns the upper-cased symbol.
func (c CoinSummary) Ticker() string {
	return strings.ToUpper(c.Symbol)
}

// CoinIDs returns the ids of coins in listing order.
func CoinIDs(coins []CoinSummary) []string {
	ids := make([]string, 0, len(coins))
	for _, c := range coins {
		ids = append(ids, c.ID)
	}
	return ids
}
