package charts

import (
	"fmt"

	"github.com/vadiminshakov/coindash/internal/domain"
	"github.com/vadiminshakov/coindash/internal/services/normalize"
)

const (
	// SelectedBarColor highlights coins picked in the filter.
	SelectedBarColor = "steelblue"
	// MutedBarColor fills coins that are not selected.
	MutedBarColor = "lightgray"
)

// VolumeShareBar builds the volume share figure over the whole listing,
// highlighting selected coins. shares are plotted in the order given.
func VolumeShareBar(shares []normalize.VolumeShare, sel domain.Selection) Figure {
	trace := Trace{
		Type:          "bar",
		X:             make([]any, 0, len(shares)),
		Y:             make([]any, 0, len(shares)),
		Text:          make([]string, 0, len(shares)),
		TextPosition:  "auto",
		Marker:        &Marker{Color: make([]string, 0, len(shares))},
		HoverTemplate: "Cryptocurrency: %{x}<br>Volume Share: %{text}<extra></extra>",
	}

	for _, s := range shares {
		trace.X = append(trace.X, s.Coin.Name)
		trace.Y = append(trace.Y, s.Percent.InexactFloat64())
		trace.Text = append(trace.Text, normalize.FormatPercent(s.Percent))

		color := MutedBarColor
		if sel.Contains(s.Coin.ID) {
			color = SelectedBarColor
		}
		trace.Marker.Color = append(trace.Marker.Color, color)
	}

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Title: title(fmt.Sprintf("Trading Volume Share (Top %s Cryptocurrencies)", normalize.CountWord(len(shares)))),
			XAxis: Axis{Title: title("Cryptocurrency")},
			YAxis: Axis{Title: title("Volume Share (%)"), TickFormat: ".0f"},
		},
	}
}
