package dto

import "github.com/glowdesk/medspa-console/internal/models"

// Wire types shared by the console client and the demo backend. The
// production backend speaks the same shapes.

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SOAPNotePayload struct {
	ClientID      string `json:"client_id"`
	AppointmentID string `json:"appointment_id,omitempty"`
	ProviderID    string `json:"provider_id,omitempty"`
	NoteDate      string `json:"note_date"`
	Subjective    string `json:"subjective"`
	Objective     string `json:"objective"`
	Assessment    string `json:"assessment"`
	Plan          string `json:"plan"`
}

// --------- Responses ---------

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	User        models.User `json:"user"`
}

type UserResponse struct {
	User models.User `json:"user"`
}

// SavedResponse is the minimal acknowledgement for a create/update: the id
// the owning list should reload around.
type SavedResponse struct {
	ID string `json:"id"`
}
