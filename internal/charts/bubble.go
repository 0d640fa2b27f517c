package charts

import (
	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/coindash/internal/domain"
	"github.com/vadiminshakov/coindash/internal/services/normalize"
)

const (
	// maxBubbleDiameter is the diameter in pixels of the largest bubble.
	maxBubbleDiameter = 100
	minBubbleSize     = 5
)

// Bubble builds the market cap vs price figure of the given coins. Bubble area
// is proportional to 24h volume; colors maps coin id to fill color.
func Bubble(coins []domain.CoinSummary, colors map[string]string) Figure {
	showScale := false
	trace := Trace{
		Type:         "scatter",
		Mode:         "markers+text",
		X:            make([]any, 0, len(coins)),
		Y:            make([]any, 0, len(coins)),
		Text:         make([]string, 0, len(coins)),
		TextPosition: "middle center",
		TextFont:     &Font{Color: "white", Size: 11},
		HoverText:    make([]string, 0, len(coins)),
		HoverInfo:    "text",
		Marker: &Marker{
			Size:      make([]float64, 0, len(coins)),
			SizeMode:  "area",
			SizeMin:   minBubbleSize,
			Color:     make([]string, 0, len(coins)),
			ShowScale: &showScale,
		},
	}

	maxVolume := decimal.Zero
	for _, c := range coins {
		trace.X = append(trace.X, c.MarketCap.InexactFloat64())
		trace.Y = append(trace.Y, c.CurrentPrice.InexactFloat64())
		trace.Text = append(trace.Text, c.Ticker())
		trace.HoverText = append(trace.HoverText, normalize.HoverText(c))
		trace.Marker.Size = append(trace.Marker.Size, c.TotalVolume.InexactFloat64())
		trace.Marker.Color = append(trace.Marker.Color, colors[c.ID])
		maxVolume = decimal.Max(maxVolume, c.TotalVolume)
	}
	trace.Marker.SizeRef = SizeRef(maxVolume)

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Title:  title("Market Cap vs Current Price (Bubble Size = Trading Volume)"),
			XAxis:  Axis{Title: title("Market Cap (USD)"), Type: "linear", TickFormat: "$~s"},
			YAxis:  Axis{Title: title("Current Price (USD)"), Type: "linear", TickFormat: "$~s"},
			Margin: &Margin{L: 40, R: 40, T: 60, B: 40},
		},
	}
}

// SizeRef scales area-mode markers so that maxVolume maps to maxBubbleDiameter.
func SizeRef(maxVolume decimal.Decimal) float64 {
	return 2 * maxVolume.InexactFloat64() / (maxBubbleDiameter * maxBubbleDiameter)
}
