package calculator

import (
	"strings"

	"QuoteTracker/internal/model"
)

// Summarize packages the statistics of an ordered close series.
// Every field is computed independently; an empty series yields a summary
// with all fields absent.
func Summarize(ticker string, closes []float64, window int) *model.QuoteSummary {
	return &model.QuoteSummary{
		Ticker:    strings.Clone(ticker),
		Max:       Max(closes),
		Min:       Min(closes),
		LastPrice: LastPrice(closes),
		PriceDiff: PriceDifference(closes),
		SMA:       SMA(closes, window),
	}
}
