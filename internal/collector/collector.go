package collector

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"QuoteTracker/internal/calculator"
	"QuoteTracker/internal/model"
)

// StaticFetcher returns controllable fixed data for offline runs and testing.
type StaticFetcher struct {
	Price  float64
	Points []model.PricePoint
	Err    error
}

func (m *StaticFetcher) Name() string { return "mock" }

func (m *StaticFetcher) FetchQuotes(_ context.Context, _ string, start, end time.Time) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Points != nil {
		return m.Points, nil
	}
	return generateDailyPoints(m.Price, start, end), nil
}

// generateDailyPoints produces one point per day in [start, end), newest first
// so that callers exercise ordering.
func generateDailyPoints(basePrice float64, start, end time.Time) []model.PricePoint {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return []model.PricePoint{}
	}
	points := make([]model.PricePoint, days)
	for i := 0; i < days; i++ {
		p := basePrice * (1 + float64(i-days/2)*0.001)
		points[days-1-i] = model.PricePoint{
			Time:  start.AddDate(0, 0, i),
			Close: p,
		}
	}
	return points
}

// Collector orchestrates quote fetching and statistics computation.
type Collector struct {
	Fetcher     Fetcher
	Window      int
	Concurrency int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, window, concurrency int) *Collector {
	return &Collector{Fetcher: fetcher, Window: window, Concurrency: concurrency}
}

// Summarize fetches the quotes of ticker between start and end and computes
// its summary. Fetch and parse failures are returned as *ProviderError.
func (c *Collector) Summarize(ctx context.Context, start, end time.Time, ticker string) (*model.QuoteSummary, error) {
	points, err := c.Fetcher.FetchQuotes(ctx, ticker, start, end)
	if err != nil {
		log.Printf("[WARN] %s fetch %s failed: %v", c.Fetcher.Name(), ticker, err)
		return nil, newProviderError(c.Fetcher, ticker, err)
	}
	log.Printf("[INFO] %s: %d quotes from %s", ticker, len(points), c.Fetcher.Name())

	closes := calculator.SortedCloses(points)
	return calculator.Summarize(ticker, closes, c.Window), nil
}

// SummarizeAll summarizes every ticker, running at most Concurrency fetches at
// once. Results are returned in ticker order; one ticker failing does not
// affect the others.
func (c *Collector) SummarizeAll(ctx context.Context, start, end time.Time, tickers []string) []model.SummaryResult {
	results := make([]model.SummaryResult, len(tickers))

	limit := c.Concurrency
	if limit < 1 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, ticker := range tickers {
		results[i].Ticker = ticker
		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			results[i].Summary, results[i].Err = c.Summarize(gctx, start, end, ticker)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
