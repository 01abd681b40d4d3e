package listctl

import (
	"testing"

	"github.com/glowdesk/medspa-console/internal/models"
)

func TestStatusCountsDefaultsEveryKnownStatus(t *testing.T) {
	items := []models.Appointment{
		{ID: "1", Status: "pending"},
		{ID: "2", Status: "completed"},
		{ID: "3", Status: "pending"},
	}

	counts := StatusCounts(items,
		func(a models.Appointment) string { return a.Status },
		models.AppointmentStatuses,
	)

	want := map[string]int{
		"pending": 2, "scheduled": 0, "completed": 1,
		"cancelled": 0, "no_show": 0, "rescheduled": 0,
	}
	for status, n := range want {
		if counts[status] != n {
			t.Errorf("counts[%q] = %d, want %d", status, counts[status], n)
		}
	}
}

func TestStatusCountsEmptyCollection(t *testing.T) {
	counts := StatusCounts(nil,
		func(a models.Appointment) string { return a.Status },
		models.AppointmentStatuses,
	)

	if len(counts) != len(models.AppointmentStatuses) {
		t.Fatalf("expected %d keys, got %d", len(models.AppointmentStatuses), len(counts))
	}
	for status, n := range counts {
		if n != 0 {
			t.Errorf("empty collection should count 0 for %q, got %d", status, n)
		}
	}
}

func TestSummarizeTreatments(t *testing.T) {
	items := []models.TreatmentRecord{
		{Status: models.TreatmentCompleted, Cost: "420.00"},
		{Status: models.TreatmentPending, Cost: "180.50"},
		{Status: models.TreatmentCompleted, Cost: "not-a-number"},
		{Status: models.TreatmentCanceled, Cost: ""},
	}

	sum := SummarizeTreatments(items)
	if sum.Completed != 2 {
		t.Errorf("Completed = %d, want 2", sum.Completed)
	}
	if sum.Pending != 1 {
		t.Errorf("Pending = %d, want 1", sum.Pending)
	}
	if sum.TotalCost != 600.50 {
		t.Errorf("TotalCost = %v, want 600.50", sum.TotalCost)
	}
}
