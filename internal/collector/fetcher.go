package collector

import (
	"context"
	"time"

	"QuoteTracker/internal/model"
)

// Fetcher defines the interface for fetching quote history.
//
//go:generate mockgen -package=collector_test -destination=mock_fetcher_test.go -source=fetcher.go Fetcher
type Fetcher interface {
	// FetchQuotes returns the price points of symbol between start and end.
	// The points are not required to be in time order.
	FetchQuotes(ctx context.Context, symbol string, start, end time.Time) ([]model.PricePoint, error)
	Name() string
}

// ProviderError reports that quotes for a symbol could not be fetched or parsed.
// Its message is the provider's own description.
type ProviderError struct {
	Provider string
	Symbol   string
	Reason   string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Reason
}

func (e *ProviderError) Unwrap() error { return e.Err }

func newProviderError(f Fetcher, symbol string, err error) *ProviderError {
	return &ProviderError{
		Provider: f.Name(),
		Symbol:   symbol,
		Reason:   err.Error(),
		Err:      err,
	}
}
