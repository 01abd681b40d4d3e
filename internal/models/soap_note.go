package models

import "time"

// SOAPNote is a clinical note structured as Subjective / Objective /
// Assessment / Plan. All four narrative fields are mandatory.
type SOAPNote struct {
	ID            string `json:"id"`
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name"`
	AppointmentID string `json:"appointment_id,omitempty"`
	ProviderID    string `json:"provider_id"`
	ProviderName  string `json:"provider_name"`
	NoteDate      string `json:"note_date"`

	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
