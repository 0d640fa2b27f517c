package dashboard

import (
	"fmt"
	"strings"

	"github.com/vadiminshakov/coindash/internal/charts"
	"github.com/vadiminshakov/coindash/internal/domain"
	"github.com/vadiminshakov/coindash/internal/services/normalize"
)

// Tab identifiers, in display order.
const (
	TabPriceOverview    = "price-overview"
	TabMarketComparison = "market-comparison"
	TabVolumeAnalysis   = "volume-analysis"
)

// Notices shown in place of charts.
const (
	NoDataMessage             = "No market data available. Please try again later."
	NoCandlestickSelection    = "Please select at least one coin to see candlestick chart."
	NoBubbleSelection         = "Please select at least one coin to view bubble chart."
	DashboardTitle            = "Crypto Market Dashboard"
	filterTitle               = "Coin Filters"
	filterDescription         = "Select one or more coins to visualize their market trends, trading volume, etc."
	filterLabel               = "Select Coin(s) to Display"
	daysLabel                 = "Select number of days for OHLC data"
	bubbleCaption             = "For better comparison, select multiple coins from the filter."
	barCaption                = "The highlighted color in the bar chart indicates the coin(s) selected from the sidebar filter."
	candlestickTabSubheader   = "Price Movement (Candlestick Chart)"
	bubbleTabSubheader        = "Market Cap and Current Price Comparison (Bubble Size = Trading Volume)"
	metricDirectionUp         = "up"
	metricDirectionDown       = "down"
)

// RenderModel everything the page needs to draw one state of the dashboard.
type RenderModel struct {
	Title     string           `json:"title"`
	Selection domain.Selection `json:"selection"`
	Sidebar   Sidebar          `json:"sidebar"`
	Tabs      []Tab            `json:"tabs"`
}

// Sidebar overview metrics and filter controls.
type Sidebar struct {
	Header            string   `json:"header,omitempty"`
	Description       string   `json:"description,omitempty"`
	Metrics           []Metric `json:"metrics"`
	FilterTitle       string   `json:"filter_title"`
	FilterDescription string   `json:"filter_description"`
	FilterLabel       string   `json:"filter_label"`
	Options           []Option `json:"options"`
	MaxSelected       int      `json:"max_selected"`
	DaysLabel         string   `json:"days_label"`
	DayOptions        []int    `json:"day_options"`
}

// Metric one coin's price card.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
	// Direction is "up", "down" or empty when the change is unknown or flat.
	Direction string `json:"direction,omitempty"`
}

// Option a selectable coin.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Tab one content tab.
type Tab struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Subheader string  `json:"subheader"`
	Caption   string  `json:"caption,omitempty"`
	Notice    string  `json:"notice,omitempty"`
	Charts    []Chart `json:"charts"`
}

// Chart a figure with its heading.
type Chart struct {
	Subheader string        `json:"subheader,omitempty"`
	Figure    charts.Figure `json:"figure"`
}

// Build turns a selection and its fetched snapshot into a render model.
// It performs no I/O.
func Build(sel domain.Selection, snap Snapshot) RenderModel {
	top := normalize.CountWord(len(snap.Coins))

	model := RenderModel{
		Title:     DashboardTitle,
		Selection: sel,
		Sidebar:   buildSidebar(snap.Coins, top),
	}

	if len(snap.Coins) == 0 {
		model.Tabs = []Tab{
			{ID: TabPriceOverview, Title: "Price Overview", Subheader: candlestickTabSubheader, Notice: NoDataMessage, Charts: []Chart{}},
			{ID: TabMarketComparison, Title: "Market Comparison", Subheader: bubbleTabSubheader, Notice: NoDataMessage, Charts: []Chart{}},
			{ID: TabVolumeAnalysis, Title: "Volume Analysis", Subheader: "Cryptocurrencies by Trading Volume Share", Notice: NoDataMessage, Charts: []Chart{}},
		}
		return model
	}

	model.Tabs = []Tab{
		candlestickTab(sel, snap),
		bubbleTab(sel, snap.Coins),
		volumeTab(sel, snap.Coins, top),
	}
	return model
}

func buildSidebar(coins []domain.CoinSummary, top string) Sidebar {
	sidebar := Sidebar{
		Metrics:           make([]Metric, 0, len(coins)),
		FilterTitle:       filterTitle,
		FilterDescription: filterDescription,
		FilterLabel:       filterLabel,
		Options:           make([]Option, 0, len(coins)),
		MaxSelected:       domain.MaxSelectedCoins,
		DaysLabel:         daysLabel,
		DayOptions:        domain.DayRanges,
	}
	if len(coins) == 0 {
		return sidebar
	}

	sidebar.Header = fmt.Sprintf("Top %s Cryptocurrencies Overview", top)
	sidebar.Description = fmt.Sprintf(
		"View the current price and 24-hour price change for the top %s cryptocurrencies by market cap.",
		strings.ToLower(top))

	for _, c := range coins {
		metric := Metric{
			Label: normalize.MetricLabel(c),
			Value: normalize.FormatUSD(c.CurrentPrice, 2),
			Delta: normalize.FormatChange(c.PriceChangePercentage24h),
		}
		if change := c.PriceChangePercentage24h; change.Valid {
			switch change.Decimal.Sign() {
			case 1:
				metric.Direction = metricDirectionUp
			case -1:
				metric.Direction = metricDirectionDown
			}
		}
		sidebar.Metrics = append(sidebar.Metrics, metric)
		sidebar.Options = append(sidebar.Options, Option{ID: c.ID, Label: c.Name})
	}

	return sidebar
}

func candlestickTab(sel domain.Selection, snap Snapshot) Tab {
	tab := Tab{
		ID:        TabPriceOverview,
		Title:     "Price Overview",
		Subheader: candlestickTabSubheader,
		Charts:    []Chart{},
	}
	if sel.IsEmpty() {
		tab.Notice = NoCandlestickSelection
		return tab
	}

	for _, id := range sel.Coins {
		points := snap.OHLC[id]
		if len(points) == 0 {
			continue
		}
		tab.Charts = append(tab.Charts, Chart{
			Subheader: fmt.Sprintf("%s Price Trend (Last %d Days)", normalize.Capitalize(id), sel.Days),
			Figure:    charts.Candlestick(points),
		})
	}
	return tab
}

func bubbleTab(sel domain.Selection, coins []domain.CoinSummary) Tab {
	tab := Tab{
		ID:        TabMarketComparison,
		Title:     "Market Comparison",
		Subheader: bubbleTabSubheader,
		Caption:   bubbleCaption,
		Charts:    []Chart{},
	}

	selected := make([]domain.CoinSummary, 0, len(sel.Coins))
	for _, c := range coins {
		if sel.Contains(c.ID) {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		tab.Notice = NoBubbleSelection
		return tab
	}

	colors := normalize.AssignColors(domain.CoinIDs(selected))
	tab.Charts = append(tab.Charts, Chart{Figure: charts.Bubble(selected, colors)})
	return tab
}

func volumeTab(sel domain.Selection, coins []domain.CoinSummary, top string) Tab {
	return Tab{
		ID:        TabVolumeAnalysis,
		Title:     "Volume Analysis",
		Subheader: barSubheader(top),
		Caption:   barCaption,
		Charts: []Chart{
			{Figure: charts.VolumeShareBar(normalize.VolumeShares(coins), sel)},
		},
	}
}

func barSubheader(top string) string {
	return fmt.Sprintf("Top %s Cryptocurrencies by Trading Volume Share", top)
}
