// Package normalize shapes raw market data into chart-ready series: calendar
// timestamps, volume shares, per-coin colors and display strings.
package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vadiminshakov/coindash/internal/domain"
)

// Palette colors assigned to selected coins, in selection order.
var Palette = []string{"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A"}

var (
	hundred = decimal.NewFromInt(100)
	printer = message.NewPrinter(language.English)
)

// TimeFromEpochMillis converts an epoch timestamp in milliseconds to UTC time.
func TimeFromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// VolumeShare a coin's 24h volume as a percentage of the listing total.
type VolumeShare struct {
	Coin    domain.CoinSummary
	Percent decimal.Decimal
}

// VolumeShares computes the share of each coin's volume in the summed volume
// of coins, sorted descending by share. Equal shares keep listing order.
// A zero total yields zero shares.
func VolumeShares(coins []domain.CoinSummary) []VolumeShare {
	total := decimal.Zero
	for _, c := range coins {
		total = total.Add(c.TotalVolume)
	}

	shares := make([]VolumeShare, 0, len(coins))
	for _, c := range coins {
		percent := decimal.Zero
		if !total.IsZero() {
			percent = c.TotalVolume.Div(total).Mul(hundred)
		}
		shares = append(shares, VolumeShare{Coin: c, Percent: percent})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percent.GreaterThan(shares[j].Percent)
	})

	return shares
}

// AssignColors maps each id to a palette color by position, wrapping around
// when there are more ids than colors.
func AssignColors(ids []string) map[string]string {
	colors := make(map[string]string, len(ids))
	for i, id := range ids {
		colors[id] = Palette[i%len(Palette)]
	}
	return colors
}

// HoverText renders the bubble chart tooltip for a coin.
func HoverText(c domain.CoinSummary) string {
	return fmt.Sprintf("<b>%s</b><br>"+
		"Current Price: %s<br>"+
		"Market Cap: %s<br>"+
		"Trading Volume in Past 24 Hours (USD): %s<br>"+
		"Price Change Over Last 24 Hours: %s",
		c.Name,
		FormatUSD(c.CurrentPrice, 2),
		FormatUSD(c.MarketCap, 0),
		FormatUSD(c.TotalVolume, 0),
		FormatChange(c.PriceChangePercentage24h),
	)
}

// FormatUSD formats an amount as dollars with thousands separators, e.g. $1,234.50.
func FormatUSD(amount decimal.Decimal, places int32) string {
	value := amount.Round(places).InexactFloat64()
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	return sign + "$" + printer.Sprintf(fmt.Sprintf("%%.%df", places), value)
}

// FormatPercent formats a percentage with two decimals, e.g. 13.33%.
func FormatPercent(percent decimal.Decimal) string {
	return percent.StringFixed(2) + "%"
}

// FormatChange formats a 24h change, N/A when upstream had no value.
func FormatChange(change decimal.NullDecimal) string {
	if !change.Valid {
		return "N/A"
	}
	return FormatPercent(change.Decimal)
}

// MetricLabel renders the sidebar label, e.g. "Bitcoin (BTC)".
func MetricLabel(c domain.CoinSummary) string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Ticker())
}

var countWords = []string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten"}

// CountWord spells out counts up to ten, e.g. "Five"; larger counts stay numeric.
func CountWord(n int) string {
	if n >= 0 && n < len(countWords) {
		return countWords[n]
	}
	return strconv.Itoa(n)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
