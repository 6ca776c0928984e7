package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/wfullmer-filius/fmr-tracking-system/pkg/database"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/tracing"
)

var contactColumns = []string{
	"id", "title", "sequence_number", "first_name", "last_name", "email", "mobile_number",
	"work_number", "organization", "notes", "team", "created_at", "updated_at",
}

// Repository handles contact persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new contact repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new contact and returns the stored row.
func (r *Repository) Create(ctx context.Context, req models.CreateContactRequest) (*models.Contact, error) {
	ctx, span := tracing.StartSpan(ctx, "contact.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "Create",
		"team":   req.Team,
	})

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("contacts")
	sb.Cols("title", "sequence_number", "first_name", "last_name", "email", "mobile_number", "work_number", "organization", "notes", "team")
	sb.Values(req.Title, req.SequenceNumber, req.FirstName, req.LastName, req.Email, req.MobileNumber, req.WorkNumber, req.Organization, req.Notes, req.Team)
	sb.Returning("id")

	query, args := sb.Build()
	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		log.WithError(err).Error("Failed to create contact")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create contact")
	}

	log.WithFields(map[string]any{"id": id}).Info("Created contact")
	return r.GetByID(ctx, id)
}

// GetByID retrieves a contact by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	ctx, span := tracing.StartSpan(ctx, "contact.Repository.GetByID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(contactColumns...)
	sb.From("contacts")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var contact models.Contact
	if err := r.db.GetContext(ctx, &contact, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("contact %d not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get contact")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get contact")
	}

	return &contact, nil
}

// List retrieves a page of the contact directory grouped by team, then by
// last and first name.
func (r *Repository) List(ctx context.Context, limit, offset int) (*models.ContactsListResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "contact.Repository.List")
	defer span.End()

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	countSb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	countSb.Select("COUNT(*)")
	countSb.From("contacts")

	countQuery, countArgs := countSb.Build()
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to count contacts")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list contacts")
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(contactColumns...)
	sb.From("contacts")
	sb.OrderBy("team ASC", "last_name ASC", "first_name ASC")
	sb.Limit(limit).Offset(offset)

	query, args := sb.Build()
	contacts := []models.Contact{}
	if err := r.db.SelectContext(ctx, &contacts, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list contacts")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list contacts")
	}

	return &models.ContactsListResponse{Contacts: contacts, Total: total}, nil
}

// Update applies a partial update and returns the stored row.
func (r *Repository) Update(ctx context.Context, id int64, req models.UpdateContactRequest) (*models.Contact, error) {
	ctx, span := tracing.StartSpan(ctx, "contact.Repository.Update")
	defer span.End()

	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("contacts")

	var assignments []string
	if req.Title != nil {
		assignments = append(assignments, ub.Assign("title", *req.Title))
	}
	if req.SequenceNumber != nil {
		assignments = append(assignments, ub.Assign("sequence_number", *req.SequenceNumber))
	}
	if req.FirstName != nil {
		assignments = append(assignments, ub.Assign("first_name", *req.FirstName))
	}
	if req.LastName != nil {
		assignments = append(assignments, ub.Assign("last_name", *req.LastName))
	}
	if req.Email != nil {
		assignments = append(assignments, ub.Assign("email", *req.Email))
	}
	if req.MobileNumber != nil {
		assignments = append(assignments, ub.Assign("mobile_number", *req.MobileNumber))
	}
	if req.WorkNumber != nil {
		assignments = append(assignments, ub.Assign("work_number", *req.WorkNumber))
	}
	if req.Organization != nil {
		assignments = append(assignments, ub.Assign("organization", *req.Organization))
	}
	if req.Notes != nil {
		assignments = append(assignments, ub.Assign("notes", *req.Notes))
	}
	if req.Team != nil {
		assignments = append(assignments, ub.Assign("team", *req.Team))
	}

	if len(assignments) == 0 {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	assignments = append(assignments, ub.Assign("updated_at", time.Now().UTC()))
	ub.Set(assignments...)
	ub.Where(ub.Equal("id", id))

	query, args := ub.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to update contact")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update contact")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("contact %d not found", id))
	}

	return r.GetByID(ctx, id)
}

// Delete removes a contact
func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, span := tracing.StartSpan(ctx, "contact.Repository.Delete")
	defer span.End()

	db := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	db.DeleteFrom("contacts")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete contact")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete contact")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("contact %d not found", id))
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{"id": id}).Info("Deleted contact")
	return nil
}
