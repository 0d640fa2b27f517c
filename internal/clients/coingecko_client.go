package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vadiminshakov/coindash/internal/domain"
	"github.com/vadiminshakov/coindash/internal/services/normalize"
)

const (
	// DefaultBaseURL is the public CoinGecko v3 API.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	// APIKeyHeader carries the demo-plan credential.
	APIKeyHeader = "x-cg-demo-api-key"

	vsCurrency = "usd"
)

// CoinGeckoClient issues single-attempt requests to the market-data API.
// Non-success responses and transport failures yield an empty result and a
// nil error; only a malformed success body is reported as an error.
type CoinGeckoClient struct {
	client *resty.Client
	logger *zap.Logger
}

// Option configures the CoinGeckoClient.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithHTTPClient sets the underlying http client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithLogger sets the logger used for upstream failures.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// NewCoinGeckoClient creates a client that authenticates with apiKey.
// An empty key is sent as is.
func NewCoinGeckoClient(apiKey string, opts ...Option) *CoinGeckoClient {
	o := &options{
		baseURL: DefaultBaseURL,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	var client *resty.Client
	if o.httpClient != nil {
		client = resty.NewWithClient(o.httpClient)
	} else {
		client = resty.New()
	}
	client.SetBaseURL(o.baseURL).
		SetHeader(APIKeyHeader, apiKey).
		SetHeader("Accept", "application/json")

	return &CoinGeckoClient{
		client: client,
		logger: o.logger.With(zap.String("client", "coingecko")),
	}
}

type coinMarketRecord struct {
	ID                       *string             `json:"id"`
	Name                     *string             `json:"name"`
	Symbol                   *string             `json:"symbol"`
	CurrentPrice             *decimal.Decimal    `json:"current_price"`
	MarketCap                *decimal.Decimal    `json:"market_cap"`
	TotalVolume              *decimal.Decimal    `json:"total_volume"`
	PriceChangePercentage24h decimal.NullDecimal `json:"price_change_percentage_24h"`
}

type marketChartResponse struct {
	Prices *[][]*decimal.Decimal `json:"prices"`
}

// TopCoins returns the top n coins by market capitalization.
func (c *CoinGeckoClient) TopCoins(ctx context.Context, n int) ([]domain.CoinSummary, error) {
	body, ok := c.get(ctx, "/coins/markets", nil, map[string]string{
		"vs_currency": vsCurrency,
		"order":       "market_cap_desc",
		"per_page":    strconv.Itoa(n),
		"page":        "1",
	})
	if !ok {
		return nil, nil
	}

	var records []coinMarketRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrapf(domain.ErrMalformedResponse, "decode coin markets: %v", err)
	}

	coins := make([]domain.CoinSummary, 0, len(records))
	for i, r := range records {
		coin, err := r.toDomain()
		if err != nil {
			return nil, errors.Wrapf(err, "coin markets row %d", i)
		}
		coins = append(coins, coin)
	}

	return coins, nil
}

// OHLC returns candlesticks of coinID over the last days, ascending by time.
func (c *CoinGeckoClient) OHLC(ctx context.Context, coinID string, days int) ([]domain.OHLCPoint, error) {
	body, ok := c.get(ctx, "/coins/{id}/ohlc", map[string]string{"id": coinID}, map[string]string{
		"vs_currency": vsCurrency,
		"days":        strconv.Itoa(days),
	})
	if !ok {
		return nil, nil
	}

	var rows [][]*decimal.Decimal
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, errors.Wrapf(domain.ErrMalformedResponse, "decode ohlc for %s: %v", coinID, err)
	}

	points := make([]domain.OHLCPoint, 0, len(rows))
	for i, row := range rows {
		if err := checkRow(row, 5); err != nil {
			return nil, errors.Wrapf(err, "ohlc row %d for %s", i, coinID)
		}
		points = append(points, domain.OHLCPoint{
			Timestamp: normalize.TimeFromEpochMillis(row[0].IntPart()),
			Open:      *row[1],
			High:      *row[2],
			Low:       *row[3],
			Close:     *row[4],
		})
	}
	domain.SortOHLC(points)

	return points, nil
}

// MarketChart returns the historical price series of coinID over the last days.
func (c *CoinGeckoClient) MarketChart(ctx context.Context, coinID string, days int) ([]domain.PricePoint, error) {
	body, ok := c.get(ctx, "/coins/{id}/market_chart", map[string]string{"id": coinID}, map[string]string{
		"vs_currency": vsCurrency,
		"days":        strconv.Itoa(days),
	})
	if !ok {
		return nil, nil
	}

	var resp marketChartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrapf(domain.ErrMalformedResponse, "decode market chart for %s: %v", coinID, err)
	}
	if resp.Prices == nil {
		return nil, errors.Wrapf(domain.ErrMalformedResponse, "market chart for %s has no prices", coinID)
	}

	points := make([]domain.PricePoint, 0, len(*resp.Prices))
	for i, row := range *resp.Prices {
		if err := checkRow(row, 2); err != nil {
			return nil, errors.Wrapf(err, "price row %d for %s", i, coinID)
		}
		points = append(points, domain.PricePoint{
			Timestamp: normalize.TimeFromEpochMillis(row[0].IntPart()),
			Price:     *row[1],
		})
	}
	domain.SortPrices(points)

	return points, nil
}

// get performs one GET and returns the body of a 2xx response.
func (c *CoinGeckoClient) get(ctx context.Context, path string, pathParams, query map[string]string) ([]byte, bool) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		c.logger.Warn("request failed", zap.String("path", path), zap.Any("params", pathParams), zap.Error(err))
		return nil, false
	}

	if !resp.IsSuccess() {
		c.logger.Warn("non-success status",
			zap.String("path", path),
			zap.Any("params", pathParams),
			zap.Int("status", resp.StatusCode()))
		return nil, false
	}

	return resp.Body(), true
}

func (r coinMarketRecord) toDomain() (domain.CoinSummary, error) {
	switch {
	case r.ID == nil:
		return domain.CoinSummary{}, missingField("id")
	case r.Name == nil:
		return domain.CoinSummary{}, missingField("name")
	case r.Symbol == nil:
		return domain.CoinSummary{}, missingField("symbol")
	case r.CurrentPrice == nil:
		return domain.CoinSummary{}, missingField("current_price")
	case r.MarketCap == nil:
		return domain.CoinSummary{}, missingField("market_cap")
	case r.TotalVolume == nil:
		return domain.CoinSummary{}, missingField("total_volume")
	}

	return domain.CoinSummary{
		ID:                       *r.ID,
		Name:                     *r.Name,
		Symbol:                   *r.Symbol,
		CurrentPrice:             *r.CurrentPrice,
		MarketCap:                *r.MarketCap,
		TotalVolume:              *r.TotalVolume,
		PriceChangePercentage24h: r.PriceChangePercentage24h,
	}, nil
}

func checkRow(row []*decimal.Decimal, width int) error {
	if len(row) != width {
		return errors.Wrapf(domain.ErrMalformedResponse, "expected %d values, got %d", width, len(row))
	}
	for i, v := range row {
		if v == nil {
			return errors.Wrapf(domain.ErrMalformedResponse, "value %d is null", i)
		}
	}
	return nil
}

func missingField(name string) error {
	return errors.Wrapf(domain.ErrMalformedResponse, "missing field %q", name)
}
