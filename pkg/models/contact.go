package models

import (
	"time"
)

// Team is the group a contact belongs to. The directory is sorted by team
// first, so the value doubles as the primary sort key.
type Team string

const (
	TeamFilius  Team = "The Filius Team"
	TeamProgram Team = "CRC AN/TYQ-23A Program Team"
)

// Contact is an entry in the program contact directory.
type Contact struct {
	ID             int64     `json:"id" db:"id"`
	Title          *string   `json:"title,omitempty" db:"title"`
	SequenceNumber *int      `json:"sequenceNumber,omitempty" db:"sequence_number"`
	FirstName      string    `json:"firstName" db:"first_name"`
	LastName       string    `json:"lastName" db:"last_name"`
	Email          *string   `json:"email,omitempty" db:"email"`
	MobileNumber   *string   `json:"mobileNumber,omitempty" db:"mobile_number"`
	WorkNumber     *string   `json:"workNumber,omitempty" db:"work_number"`
	Organization   *string   `json:"organization,omitempty" db:"organization"`
	Notes          *string   `json:"notes,omitempty" db:"notes"`
	Team           Team      `json:"team" db:"team"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateContactRequest struct {
	Title          *string `json:"title,omitempty"`
	SequenceNumber *int    `json:"sequenceNumber,omitempty"`
	FirstName      string  `json:"firstName" validate:"required"`
	LastName       string  `json:"lastName" validate:"required"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	MobileNumber   *string `json:"mobileNumber,omitempty"`
	WorkNumber     *string `json:"workNumber,omitempty"`
	Organization   *string `json:"organization,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Team           Team    `json:"team" validate:"required"`
}

// UpdateContactRequest is a patch; nil fields are left untouched.
type UpdateContactRequest struct {
	Title          *string `json:"title,omitempty"`
	SequenceNumber *int    `json:"sequenceNumber,omitempty"`
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	MobileNumber   *string `json:"mobileNumber,omitempty"`
	WorkNumber     *string `json:"workNumber,omitempty"`
	Organization   *string `json:"organization,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Team           *Team   `json:"team,omitempty"`
}

type ContactsListResponse struct {
	Contacts []Contact `json:"contacts"`
	Total    int       `json:"total"`
}
