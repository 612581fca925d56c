package models

import "time"

// Session is written to Redis by the authentication collaborator; this
// service only reads it.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	PatientID string    `json:"patient_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
