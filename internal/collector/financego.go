package collector

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"

	"QuoteTracker/internal/model"
)

// FinanceGoFetcher implements Fetcher through the finance-go chart client.
type FinanceGoFetcher struct{}

func NewFinanceGoFetcher() *FinanceGoFetcher { return &FinanceGoFetcher{} }

func (f *FinanceGoFetcher) Name() string { return "financego" }

func (f *FinanceGoFetcher) FetchQuotes(ctx context.Context, symbol string, start, end time.Time) ([]model.PricePoint, error) {
	params := &chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)
	var points []model.PricePoint
	for iter.Next() {
		bar := iter.Bar()
		points = append(points, model.PricePoint{
			Time:  time.Unix(int64(bar.Timestamp), 0).UTC(),
			Close: adjustedClose(bar.AdjClose, bar.Close),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("finance-go chart %s: %w", symbol, err)
	}
	return points, nil
}

// adjustedClose falls back to the raw close when Yahoo omitted the adjusted one.
func adjustedClose(adj, raw decimal.Decimal) float64 {
	if adj.IsZero() {
		adj = raw
	}
	f, _ := adj.Float64()
	return f
}
