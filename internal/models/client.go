package models

import "time"

// Client is a spa client selectable on clinical records. No login of its own.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
