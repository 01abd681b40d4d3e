package demoapi

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowdesk/medspa-console/internal/models"
)

// Demo accounts. These exist only in this backend; the console itself has
// no built-in credentials.
const (
	DemoAdminEmail    = "admin@glowdesk.demo"
	DemoProviderEmail = "dana@glowdesk.demo"
	DemoClientEmail   = "emma@glowdesk.demo"
	DemoPassword      = "demo-password"
)

// SeededStore builds a store pre-populated with a believable day at the spa.
func SeededStore() *Store {
	s := NewStore()
	now := time.Now()

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err) // static input, cannot fail
	}

	admin := models.User{ID: uuid.NewString(), Name: "Alex Moreau", Email: DemoAdminEmail, Phone: "555-0100", Role: models.RoleAdmin, CreatedAt: now}
	provider := models.User{ID: uuid.NewString(), Name: "Dana Reyes", Email: DemoProviderEmail, Phone: "555-0101", Role: models.RoleProvider, CreatedAt: now}
	clientUser := models.User{ID: uuid.NewString(), Name: "Emma Johnson", Email: DemoClientEmail, Phone: "555-0102", Role: models.RoleClient, CreatedAt: now}
	for _, u := range []models.User{admin, provider, clientUser} {
		s.users = append(s.users, storedUser{User: u, PasswordHash: string(hashed)})
	}

	emma := models.Client{ID: uuid.NewString(), Name: "Emma Johnson", Phone: "555-0102", Email: "emma.johnson@example.com", CreatedAt: now}
	sarah := models.Client{ID: uuid.NewString(), Name: "Sarah Davis", Phone: "555-0103", Email: "sarah.davis@example.com", CreatedAt: now}
	maya := models.Client{ID: uuid.NewString(), Name: "Maya Patel", Phone: "555-0104", Email: "maya.patel@example.com", CreatedAt: now}
	s.clients = append(s.clients, emma, sarah, maya)

	appts := []struct {
		client models.Client
		owner  string
		status string
		notes  string
		age    time.Duration
	}{
		{emma, clientUser.ID, models.AppointmentCompleted, "Hydrafacial, sensitive skin", 72 * time.Hour},
		{sarah, "", models.AppointmentPending, "First visit, consultation requested", 48 * time.Hour},
		{maya, "", models.AppointmentScheduled, "Laser session 2 of 6", 24 * time.Hour},
		{emma, clientUser.ID, models.AppointmentPending, "Follow-up botox touch-up", 12 * time.Hour},
		{sarah, "", models.AppointmentCancelled, "Cancelled by phone", 6 * time.Hour},
	}
	for _, a := range appts {
		appt := models.Appointment{
			ID:        uuid.NewString(),
			Name:      a.client.Name,
			Email:     a.client.Email,
			Phone:     a.client.Phone,
			Notes:     a.notes,
			Status:    a.status,
			CreatedAt: now.Add(-a.age),
		}
		s.appointments = append(s.appointments, appt)
		if a.owner != "" {
			s.bookingOwner[appt.ID] = a.owner
		}
	}

	s.treatments = append(s.treatments,
		models.TreatmentRecord{
			ID:            uuid.NewString(),
			AppointmentID: s.appointments[0].ID,
			ProviderID:    provider.ID,
			ProviderName:  provider.Name,
			ClientRef:     emma.Name,
			Notes:         "Full face, 24 units. No adverse reaction.",
			TreatmentType: "Botox",
			Cost:          "420.00",
			Description:   "Glabellar lines and crow's feet",
			Status:        models.TreatmentCompleted,
			TreatmentDate: now.Add(-72 * time.Hour).Format("2006-01-02"),
			CreatedAt:     now.Add(-72 * time.Hour),
			UpdatedAt:     now.Add(-72 * time.Hour),
		},
		models.TreatmentRecord{
			ID:            uuid.NewString(),
			AppointmentID: s.appointments[2].ID,
			ProviderID:    provider.ID,
			ProviderName:  provider.Name,
			ClientRef:     maya.Name,
			Notes:         "Session 2 scheduled, patch test OK.",
			TreatmentType: "Laser hair removal",
			Cost:          "180.00",
			Description:   "Underarm, 6-session package",
			Status:        models.TreatmentPending,
			TreatmentDate: now.Add(24 * time.Hour).Format("2006-01-02"),
			CreatedAt:     now.Add(-24 * time.Hour),
			UpdatedAt:     now.Add(-24 * time.Hour),
		},
	)

	s.soapNotes = append(s.soapNotes, models.SOAPNote{
		ID:            uuid.NewString(),
		ClientID:      emma.ID,
		ClientName:    emma.Name,
		AppointmentID: s.appointments[0].ID,
		ProviderID:    provider.ID,
		ProviderName:  provider.Name,
		NoteDate:      now.Add(-72 * time.Hour).Format("2006-01-02"),
		Subjective:    "Client reports mild tightness post-facial, no pain.",
		Objective:     "Skin clear, slight erythema on cheeks, resolving.",
		Assessment:    "Normal post-hydrafacial response.",
		Plan:          "Moisturize twice daily, SPF 30+, review in 2 weeks.",
		CreatedAt:     now.Add(-72 * time.Hour),
		UpdatedAt:     now.Add(-72 * time.Hour),
	})

	return s
}
