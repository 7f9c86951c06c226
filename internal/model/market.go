package model

import "time"

// PricePoint is a single timestamped price observation for a ticker.
type PricePoint struct {
	Time  time.Time
	Close float64 // adjusted close
}

// PriceDiff is the change from the first to the last close of a series.
type PriceDiff struct {
	Absolute float64
	Relative float64 // fraction of the first close, not a percentage
}

// QuoteSummary holds the statistics computed for one ticker.
type QuoteSummary struct {
	Ticker    string
	Max       Optional[float64]
	Min       Optional[float64]
	LastPrice Optional[float64]
	PriceDiff Optional[PriceDiff]
	SMA       Optional[[]float64]
}

// SummaryResult is the outcome of summarizing one ticker: either a summary
// or the provider error that prevented it.
type SummaryResult struct {
	Ticker  string
	Summary *QuoteSummary
	Err     error
}
