package listctl

import (
	"reflect"
	"testing"

	"github.com/glowdesk/medspa-console/internal/models"
)

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: "1", Name: "Emma Johnson", Email: "emma@example.com", Status: models.AppointmentCompleted},
		{ID: "2", Name: "Sarah Davis", Email: "sarah@example.com", Status: models.AppointmentPending},
		{ID: "3", Name: "Maya Patel", Email: "maya@example.com", Status: models.AppointmentPending, Notes: "laser follow-up"},
	}
}

func TestFilterMatchesAnyField(t *testing.T) {
	res := Appointments()
	items := sampleAppointments()

	got := Filter(items, res, "emma", FilterAll, FilterAll)
	if len(got) != 1 || got[0].Name != "Emma Johnson" {
		t.Fatalf("expected only Emma Johnson, got %+v", got)
	}

	// Term matching is case-insensitive and reaches the notes field.
	got = Filter(items, res, "LASER", FilterAll, FilterAll)
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected notes match for record 3, got %+v", got)
	}
}

func TestFilterStatusGate(t *testing.T) {
	res := Appointments()
	items := sampleAppointments()

	got := Filter(items, res, "", models.AppointmentPending, FilterAll)
	if len(got) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(got))
	}
	for _, a := range got {
		if a.Status != models.AppointmentPending {
			t.Errorf("status gate leaked %q", a.Status)
		}
	}
}

func TestFilterEmptyTermMatchesEverything(t *testing.T) {
	res := Appointments()
	items := sampleAppointments()

	got := Filter(items, res, "", FilterAll, FilterAll)
	if len(got) != len(items) {
		t.Fatalf("expected all %d records, got %d", len(items), len(got))
	}
}

func TestFilterIsPureAndSubset(t *testing.T) {
	res := Appointments()
	items := sampleAppointments()

	first := Filter(items, res, "a", models.AppointmentPending, FilterAll)
	second := Filter(items, res, "a", models.AppointmentPending, FilterAll)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different outputs")
	}

	for _, got := range first {
		found := false
		for _, in := range items {
			if in.ID == got.ID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("result %q is not a member of the input collection", got.ID)
		}
	}
}

func TestFilterProviderGate(t *testing.T) {
	res := Treatments()
	items := []models.TreatmentRecord{
		{ID: "a", Notes: "x", ProviderName: "Dana Reyes", Status: models.TreatmentCompleted},
		{ID: "b", Notes: "y", ProviderName: "Lee Chan", Status: models.TreatmentCompleted},
	}

	got := Filter(items, res, "", FilterAll, "Dana Reyes")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("provider gate failed: %+v", got)
	}
}
