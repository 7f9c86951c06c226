package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"QuoteTracker/internal/model"
)

// VsTraderFetcher implements Fetcher using the vstrader REST API.
type VsTraderFetcher struct {
	Client *resty.Client
}

// NewVsTraderFetcher creates a new fetcher with optional proxy support.
func NewVsTraderFetcher(baseURL, apiKey, proxyURL string) *VsTraderFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &VsTraderFetcher{Client: client}
}

func (f *VsTraderFetcher) Name() string { return "vstrader" }

// vsBar is the expected JSON shape from the vstrader API.
type vsBar struct {
	Timestamp int64    `json:"timestamp"`
	Close     float64  `json:"close"`
	AdjClose  *float64 `json:"adj_close"`
}

func (f *VsTraderFetcher) FetchQuotes(ctx context.Context, symbol string, start, end time.Time) ([]model.PricePoint, error) {
	resp, err := f.Client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol": symbol,
			"from":   strconv.FormatInt(start.Unix(), 10),
			"to":     strconv.FormatInt(end.Unix(), 10),
		}).
		Get("/api/v1/bars/daily")
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode(), resp.String())
	}

	var bars []vsBar
	if err := json.Unmarshal(resp.Body(), &bars); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	points := make([]model.PricePoint, len(bars))
	for i, b := range bars {
		c := b.Close
		if b.AdjClose != nil {
			c = *b.AdjClose
		}
		points[i] = model.PricePoint{Time: time.Unix(b.Timestamp, 0).UTC(), Close: c}
	}
	return points, nil
}
