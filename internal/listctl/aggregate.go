package listctl

import (
	"strconv"

	"github.com/glowdesk/medspa-console/internal/models"
)

// StatusCounts tallies records per status. Every known status is present in
// the result, zero-valued when absent from the data, so summary cards never
// render a missing key.
func StatusCounts[T any](items []T, status func(T) string, known []string) map[string]int {
	counts := make(map[string]int, len(known))
	for _, s := range known {
		counts[s] = 0
	}
	for _, item := range items {
		counts[status(item)]++
	}
	return counts
}

// TreatmentSummary is the header aggregate on the treatments screen.
type TreatmentSummary struct {
	Completed int
	Pending   int
	TotalCost float64
}

// SummarizeTreatments counts completed/pending records and sums costs.
// A missing or non-numeric cost contributes 0.
func SummarizeTreatments(items []models.TreatmentRecord) TreatmentSummary {
	var sum TreatmentSummary
	for _, t := range items {
		switch t.Status {
		case models.TreatmentCompleted:
			sum.Completed++
		case models.TreatmentPending:
			sum.Pending++
		}
		if cost, err := strconv.ParseFloat(t.Cost, 64); err == nil {
			sum.TotalCost += cost
		}
	}
	return sum
}
