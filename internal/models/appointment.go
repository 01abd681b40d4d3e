package models

import "time"

// ===============================
// Appointment Status
// ===============================

const (
	AppointmentPending     = "pending"
	AppointmentScheduled   = "scheduled"
	AppointmentCompleted   = "completed"
	AppointmentCancelled   = "cancelled"
	AppointmentNoShow      = "no_show"
	AppointmentRescheduled = "rescheduled"
)

// AppointmentStatuses lists every status the backend can return, in display
// order. Aggregations key off this list so an absent status still shows as 0.
var AppointmentStatuses = []string{
	AppointmentPending,
	AppointmentScheduled,
	AppointmentCompleted,
	AppointmentCancelled,
	AppointmentNoShow,
	AppointmentRescheduled,
}

// Appointment is read-only on the client: the backend owns scheduling.
type Appointment struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Notes  string `json:"notes"`
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
