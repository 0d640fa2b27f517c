// Package charts builds declarative Plotly figures for the dashboard tabs.
// Every builder is a pure function of its inputs.
package charts

// Figure Plotly figure: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace a single Plotly trace. Only the fields used by the dashboard are modelled.
type Trace struct {
	Type string `json:"type"`
	X    []any  `json:"x,omitempty"`
	Y    []any  `json:"y,omitempty"`

	Open  []float64 `json:"open,omitempty"`
	High  []float64 `json:"high,omitempty"`
	Low   []float64 `json:"low,omitempty"`
	Close []float64 `json:"close,omitempty"`

	Mode          string   `json:"mode,omitempty"`
	Text          []string `json:"text,omitempty"`
	TextPosition  string   `json:"textposition,omitempty"`
	TextFont      *Font    `json:"textfont,omitempty"`
	Marker        *Marker  `json:"marker,omitempty"`
	HoverText     []string `json:"hovertext,omitempty"`
	HoverInfo     string   `json:"hoverinfo,omitempty"`
	HoverTemplate string   `json:"hovertemplate,omitempty"`
}

// Marker trace marker styling.
type Marker struct {
	Size      []float64 `json:"size,omitempty"`
	SizeMode  string    `json:"sizemode,omitempty"`
	SizeRef   float64   `json:"sizeref,omitempty"`
	SizeMin   float64   `json:"sizemin,omitempty"`
	Color     []string  `json:"color,omitempty"`
	ShowScale *bool     `json:"showscale,omitempty"`
}

// Font text styling.
type Font struct {
	Color string  `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

// Title Plotly title object.
type Title struct {
	Text string `json:"text"`
}

// RangeSlider axis range slider toggle.
type RangeSlider struct {
	Visible bool `json:"visible"`
}

// Axis layout axis.
type Axis struct {
	Title       *Title       `json:"title,omitempty"`
	Type        string       `json:"type,omitempty"`
	TickFormat  string       `json:"tickformat,omitempty"`
	RangeSlider *RangeSlider `json:"rangeslider,omitempty"`
}

// Margin plot margins in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Layout figure layout.
type Layout struct {
	Title  *Title  `json:"title,omitempty"`
	XAxis  Axis    `json:"xaxis"`
	YAxis  Axis    `json:"yaxis"`
	Margin *Margin `json:"margin,omitempty"`
}

func title(text string) *Title {
	return &Title{Text: text}
}
