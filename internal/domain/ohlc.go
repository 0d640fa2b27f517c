package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// OHLCPoint single candlestick of the OHLC series.
type OHLCPoint struct {
	Timestamp time.Time       `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
}

// PricePoint single sample of the historical price series.
type PricePoint struct {
	Timestamp time.Time       `json:"timestamp"`
	Price     decimal.Decimal `json:"price"`
}

// SortOHLC orders points ascending by timestamp.
func SortOHLC(points []OHLCPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
}

// SortPrices orders points ascending by timestamp.
func SortPrices(points []PricePoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
}
