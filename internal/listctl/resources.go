package listctl

import (
	"net/url"

	"github.com/glowdesk/medspa-console/internal/models"
)

// Resource definitions for each screen. The searchable field set per type is
// fixed; adding a field here changes what the search box matches.

// Appointments lists the admin/provider appointment view; Bookings lists the
// signed-in user's own.
func Appointments() Resource[models.Appointment] {
	return appointmentResource("/appointments", nil)
}

func Bookings() Resource[models.Appointment] {
	return appointmentResource("/bookings", url.Values{"mine": {"true"}})
}

func appointmentResource(path string, query url.Values) Resource[models.Appointment] {
	return Resource[models.Appointment]{
		Path:  path,
		Query: query,
		SearchText: func(a models.Appointment) []string {
			return []string{a.Name, a.Email, a.Phone, a.Notes, a.ID}
		},
		Status: func(a models.Appointment) string { return a.Status },
	}
}

func Treatments() Resource[models.TreatmentRecord] {
	return Resource[models.TreatmentRecord]{
		Path: "/treatments",
		SearchText: func(t models.TreatmentRecord) []string {
			return []string{t.ClientRef, t.TreatmentType, t.Notes, t.ProviderName, t.ID}
		},
		Status:   func(t models.TreatmentRecord) string { return t.Status },
		Provider: func(t models.TreatmentRecord) string { return t.ProviderName },
	}
}

// SOAPNotes lists notes, optionally scoped to one client.
func SOAPNotes(clientID string) Resource[models.SOAPNote] {
	var query url.Values
	if clientID != "" {
		query = url.Values{"client_id": {clientID}}
	}
	return Resource[models.SOAPNote]{
		Path:  "/soap-notes",
		Query: query,
		SearchText: func(n models.SOAPNote) []string {
			return []string{n.ClientName, n.Subjective, n.ID}
		},
		Provider: func(n models.SOAPNote) string { return n.ProviderName },
	}
}

func Clients() Resource[models.Client] {
	return Resource[models.Client]{
		Path: "/clients",
		SearchText: func(c models.Client) []string {
			return []string{c.Name, c.Email, c.Phone, c.ID}
		},
	}
}
