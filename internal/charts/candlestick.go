package charts

import "github.com/vadiminshakov/coindash/internal/domain"

// Candlestick builds the price trend figure of one coin.
func Candlestick(points []domain.OHLCPoint) Figure {
	trace := Trace{
		Type:  "candlestick",
		X:     make([]any, 0, len(points)),
		Open:  make([]float64, 0, len(points)),
		High:  make([]float64, 0, len(points)),
		Low:   make([]float64, 0, len(points)),
		Close: make([]float64, 0, len(points)),
	}
	for _, p := range points {
		trace.X = append(trace.X, p.Timestamp)
		trace.Open = append(trace.Open, p.Open.InexactFloat64())
		trace.High = append(trace.High, p.High.InexactFloat64())
		trace.Low = append(trace.Low, p.Low.InexactFloat64())
		trace.Close = append(trace.Close, p.Close.InexactFloat64())
	}

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			XAxis: Axis{Title: title("Date"), RangeSlider: &RangeSlider{Visible: false}},
			YAxis: Axis{Title: title("Price (USD)")},
		},
	}
}
