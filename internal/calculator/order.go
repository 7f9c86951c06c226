package calculator

import (
	"slices"

	"QuoteTracker/internal/model"
)

// SortedCloses returns the closes of points in ascending time order.
// Points sharing a timestamp keep their input order. The input is not modified.
func SortedCloses(points []model.PricePoint) []float64 {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b model.PricePoint) int {
		return a.Time.Compare(b.Time)
	})

	closes := make([]float64, len(sorted))
	for i, p := range sorted {
		closes[i] = p.Close
	}
	return closes
}
