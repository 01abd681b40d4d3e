package models

import "time"

// ===============================
// Treatment Status
// ===============================

const (
	TreatmentCompleted = "completed"
	TreatmentPending   = "pending"
	TreatmentCanceled  = "canceled"
)

var TreatmentStatuses = []string{
	TreatmentCompleted,
	TreatmentPending,
	TreatmentCanceled,
}

// TreatmentRecord is a clinical treatment entry. Cost travels as a decimal
// string; photo refs point into backend-owned storage and are never fetched
// by this client.
type TreatmentRecord struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointment_id"`
	ProviderID    string `json:"provider_id"`
	ProviderName  string `json:"provider_name"`
	ClientRef     string `json:"client_ref"`
	Notes         string `json:"notes"`
	TreatmentType string `json:"treatment_type"`
	Cost          string `json:"cost"`
	Description   string `json:"description"`
	Status        string `json:"status"`

	BeforePhotoRef string `json:"before_photo"`
	AfterPhotoRef  string `json:"after_photo"`

	TreatmentDate string `json:"treatment_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
