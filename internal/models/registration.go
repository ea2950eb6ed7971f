package models

import "time"

type Registration struct {
	EventID          int       `json:"eventId"`
	UserID           string    `json:"userId"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// RegistrationForm carries the signup form fields for one event.
type RegistrationForm struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergencyContact"`
}
