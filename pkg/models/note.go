package models

import (
	"time"
)

// NoteType categorizes who a note came from.
type NoteType string

const (
	NoteTypeGeneral    NoteType = "general"
	NoteTypeTechnician NoteType = "technician"
	NoteTypeCustomer   NoteType = "customer"
)

// Note is an append-only comment attached to an FMR record. Notes are never
// edited or deleted; corrections go in as new notes.
type Note struct {
	ID        int64     `json:"id" db:"id"`
	FmrID     int64     `json:"fmrId" db:"fmr_id"`
	Content   string    `json:"content" db:"content"`
	Author    *string   `json:"author,omitempty" db:"author"`
	NoteType  NoteType  `json:"noteType" db:"note_type"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CreateNoteRequest struct {
	FmrID    int64    `json:"fmrId" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Author   *string  `json:"author,omitempty"`
	NoteType NoteType `json:"noteType,omitempty" validate:"omitempty,oneof=general technician customer"`
}

type NotesListResponse struct {
	Notes []Note `json:"notes"`
}
