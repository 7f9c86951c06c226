package calculator

import "QuoteTracker/internal/model"

// DefaultSMAWindow is the moving average width used when none is configured.
const DefaultSMAWindow = 30

// SMA computes the simple moving average over every contiguous window of
// n closes, sliding by one. The result has len(closes)-n+1 values, or is
// present but empty when the series is shorter than the window.
// It is absent when closes is empty or n <= 1.
func SMA(closes []float64, n int) model.Optional[[]float64] {
	if len(closes) == 0 || n <= 1 {
		return model.None[[]float64]()
	}
	if len(closes) < n {
		return model.Some([]float64{})
	}

	out := make([]float64, 0, len(closes)-n+1)
	for i := 0; i+n <= len(closes); i++ {
		out = append(out, mean(closes[i:i+n]))
	}
	return model.Some(out)
}

func mean(window []float64) float64 {
	sum := 0.0
	for _, c := range window {
		sum += c
	}
	return sum / float64(len(window))
}
