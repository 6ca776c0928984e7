package note

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/wfullmer-filius/fmr-tracking-system/pkg/database"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/tracing"
)

var noteColumns = []string{"id", "fmr_id", "content", "author", "note_type", "created_at"}

// Repository handles note persistence. Notes are append-only; there is no
// update or delete.
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new note repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create appends a note to an FMR record and returns the stored row.
func (r *Repository) Create(ctx context.Context, req models.CreateNoteRequest) (*models.Note, error) {
	ctx, span := tracing.StartSpan(ctx, "note.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "Create",
		"fmr_id": req.FmrID,
	})

	noteType := req.NoteType
	if noteType == "" {
		noteType = models.NoteTypeGeneral
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("notes")
	sb.Cols("fmr_id", "content", "author", "note_type")
	sb.Values(req.FmrID, req.Content, req.Author, noteType)
	sb.Returning(noteColumns...)

	query, args := sb.Build()
	var note models.Note
	if err := r.db.GetContext(ctx, &note, query, args...); err != nil {
		log.WithError(err).Error("Failed to create note")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create note")
	}

	log.WithFields(map[string]any{"id": note.ID}).Info("Created note")
	return &note, nil
}

// ListByFmrID retrieves every note on an FMR record, newest first.
func (r *Repository) ListByFmrID(ctx context.Context, fmrID int64) (*models.NotesListResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "note.Repository.ListByFmrID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(noteColumns...)
	sb.From("notes")
	sb.Where(sb.Equal("fmr_id", fmrID))
	sb.OrderBy("created_at DESC")

	query, args := sb.Build()
	notes := []models.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list notes")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list notes")
	}

	return &models.NotesListResponse{Notes: notes}, nil
}
