package charts

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/coindash/internal/domain"
	"github.com/vadiminshakov/coindash/internal/services/normalize"
)

func testCoins() []domain.CoinSummary {
	return []domain.CoinSummary{
		{
			ID: "bitcoin", Name: "Bitcoin", Symbol: "btc",
			CurrentPrice: decimal.NewFromInt(67000),
			MarketCap:    decimal.NewFromInt(1300000000000),
			TotalVolume:  decimal.NewFromInt(40000),
		},
		{
			ID: "ethereum", Name: "Ethereum", Symbol: "eth",
			CurrentPrice: decimal.NewFromInt(3500),
			MarketCap:    decimal.NewFromInt(420000000000),
			TotalVolume:  decimal.NewFromInt(10000),
		},
	}
}

func TestCandlestick(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	points := []domain.OHLCPoint{
		{Timestamp: base, Open: decimal.NewFromInt(1), High: decimal.NewFromInt(4), Low: decimal.NewFromInt(1), Close: decimal.NewFromInt(3)},
		{Timestamp: base.Add(4 * time.Hour), Open: decimal.NewFromInt(3), High: decimal.NewFromInt(5), Low: decimal.NewFromInt(2), Close: decimal.NewFromInt(2)},
	}

	fig := Candlestick(points)

	require.Len(t, fig.Data, 1)
	trace := fig.Data[0]
	assert.Equal(t, "candlestick", trace.Type)
	assert.Equal(t, []any{base, base.Add(4 * time.Hour)}, trace.X)
	assert.Equal(t, []float64{1, 3}, trace.Open)
	assert.Equal(t, []float64{4, 5}, trace.High)
	assert.Equal(t, []float64{1, 2}, trace.Low)
	assert.Equal(t, []float64{3, 2}, trace.Close)
	assert.Equal(t, "Date", fig.Layout.XAxis.Title.Text)
	assert.Equal(t, "Price (USD)", fig.Layout.YAxis.Title.Text)
	require.NotNil(t, fig.Layout.XAxis.RangeSlider)
	assert.False(t, fig.Layout.XAxis.RangeSlider.Visible)
}

func TestCandlestick_RangeSliderSerialized(t *testing.T) {
	payload, err := json.Marshal(Candlestick(nil))
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"rangeslider":{"visible":false}`)
}

func TestBubble(t *testing.T) {
	coins := testCoins()
	colors := normalize.AssignColors(domain.CoinIDs(coins))

	fig := Bubble(coins, colors)

	require.Len(t, fig.Data, 1)
	trace := fig.Data[0]
	assert.Equal(t, "scatter", trace.Type)
	assert.Equal(t, "markers+text", trace.Mode)
	assert.Equal(t, []any{1300000000000.0, 420000000000.0}, trace.X)
	assert.Equal(t, []any{67000.0, 3500.0}, trace.Y)
	assert.Equal(t, []string{"BTC", "ETH"}, trace.Text)
	assert.Equal(t, "middle center", trace.TextPosition)
	assert.Equal(t, "white", trace.TextFont.Color)
	assert.Equal(t, "text", trace.HoverInfo)
	assert.Equal(t, normalize.HoverText(coins[1]), trace.HoverText[1])

	require.NotNil(t, trace.Marker)
	assert.Equal(t, "area", trace.Marker.SizeMode)
	assert.Equal(t, []float64{40000, 10000}, trace.Marker.Size)
	assert.InDelta(t, 8.0, trace.Marker.SizeRef, 1e-9)
	assert.Equal(t, float64(minBubbleSize), trace.Marker.SizeMin)
	assert.Equal(t, []string{"#636EFA", "#EF553B"}, trace.Marker.Color)
	require.NotNil(t, trace.Marker.ShowScale)
	assert.False(t, *trace.Marker.ShowScale)

	assert.Equal(t, "linear", fig.Layout.XAxis.Type)
	assert.Equal(t, "$~s", fig.Layout.YAxis.TickFormat)
}

func TestSizeRef(t *testing.T) {
	// area-mode: the largest volume is drawn with a 100px diameter
	assert.InDelta(t, 2.0, SizeRef(decimal.NewFromInt(10000)), 1e-12)
	assert.Zero(t, SizeRef(decimal.Zero))
}

func TestVolumeShareBar(t *testing.T) {
	shares := normalize.VolumeShares(testCoins())

	tests := []struct {
		name     string
		sel      domain.Selection
		expected []string
	}{
		{
			name:     "selected coin highlighted",
			sel:      domain.Selection{Coins: []string{"ethereum"}, Days: 30},
			expected: []string{MutedBarColor, SelectedBarColor},
		},
		{
			name:     "no selection mutes every bar",
			sel:      domain.Selection{Coins: []string{}, Days: 30},
			expected: []string{MutedBarColor, MutedBarColor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig := VolumeShareBar(shares, tt.sel)

			require.Len(t, fig.Data, 1)
			trace := fig.Data[0]
			assert.Equal(t, "bar", trace.Type)
			assert.Equal(t, []any{"Bitcoin", "Ethereum"}, trace.X)
			assert.Equal(t, []any{80.0, 20.0}, trace.Y)
			assert.Equal(t, []string{"80.00%", "20.00%"}, trace.Text)
			assert.Equal(t, tt.expected, trace.Marker.Color)
			assert.Equal(t, "Cryptocurrency: %{x}<br>Volume Share: %{text}<extra></extra>", trace.HoverTemplate)
			assert.Equal(t, ".0f", fig.Layout.YAxis.TickFormat)
			assert.Equal(t, "Trading Volume Share (Top Two Cryptocurrencies)", fig.Layout.Title.Text)
		})
	}
}
