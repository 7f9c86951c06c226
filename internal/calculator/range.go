package calculator

import (
	"math"

	"QuoteTracker/internal/model"
)

// Max returns the largest close, or absent for an empty series.
// NaN closes are skipped; a series of only NaN yields -Inf.
func Max(closes []float64) model.Optional[float64] {
	if len(closes) == 0 {
		return model.None[float64]()
	}
	high := math.Inf(-1)
	for _, c := range closes {
		if c > high {
			high = c
		}
	}
	return model.Some(high)
}

// Min returns the smallest close, or absent for an empty series.
// NaN closes are skipped; a series of only NaN yields +Inf.
func Min(closes []float64) model.Optional[float64] {
	if len(closes) == 0 {
		return model.None[float64]()
	}
	low := math.Inf(1)
	for _, c := range closes {
		if c < low {
			low = c
		}
	}
	return model.Some(low)
}

// LastPrice returns the final close, or absent for an empty series.
// An empty series has no last price; presentation shows it as 0 via Or(0).
func LastPrice(closes []float64) model.Optional[float64] {
	if len(closes) == 0 {
		return model.None[float64]()
	}
	return model.Some(closes[len(closes)-1])
}

// PriceDifference returns the absolute and relative change between the
// first and last close. A first close of exactly zero divides by 1 instead.
func PriceDifference(closes []float64) model.Optional[model.PriceDiff] {
	if len(closes) == 0 {
		return model.None[model.PriceDiff]()
	}
	first, last := closes[0], closes[len(closes)-1]
	abs := last - first
	denom := first
	if denom == 0 {
		denom = 1
	}
	return model.Some(model.PriceDiff{Absolute: abs, Relative: abs / denom})
}
