package filterpreset

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

var presetColumns = []string{"id", "name", "filters", "created_at", "updated_at"}

// Repository handles filter preset persistence. Filter values are stored and
// echoed back verbatim; the server never validates them against live data.
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new filter preset repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new filter preset and returns the stored row.
func (r *Repository) Create(ctx context.Context, req models.CreateFilterPresetRequest) (*models.FilterPreset, error) {
	ctx, span := tracing.StartSpan(ctx, "filterpreset.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "Create",
		"name":   req.Name,
	})

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("filter_presets")
	sb.Cols("name", "filters")
	sb.Values(req.Name, database.NewJSONB(req.Filters))
	sb.Returning(presetColumns...)

	query, args := sb.Build()
	var preset models.FilterPreset
	if err := r.db.GetContext(ctx, &preset, query, args...); err != nil {
		log.WithError(err).Error("Failed to create filter preset")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create filter preset")
	}

	log.WithFields(map[string]any{"id": preset.ID}).Info("Created filter preset")
	return &preset, nil
}

// GetByID retrieves a filter preset by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.FilterPreset, error) {
	ctx, span := tracing.StartSpan(ctx, "filterpreset.Repository.GetByID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(presetColumns...)
	sb.From("filter_presets")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var preset models.FilterPreset
	if err := r.db.GetContext(ctx, &preset, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("filter preset %d not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get filter preset")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get filter preset")
	}

	return &preset, nil
}

// List retrieves every filter preset, newest first.
func (r *Repository) List(ctx context.Context) (*models.FilterPresetsListResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "filterpreset.Repository.List")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(presetColumns...)
	sb.From("filter_presets")
	sb.OrderBy("created_at DESC")

	query, args := sb.Build()
	presets := []models.FilterPreset{}
	if err := r.db.SelectContext(ctx, &presets, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list filter presets")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list filter presets")
	}

	return &models.FilterPresetsListResponse{Presets: presets}, nil
}

// Update applies a partial update and returns the stored row. A filters value
// replaces the whole saved bag; there is no per-key merge.
func (r *Repository) Update(ctx context.Context, id int64, req models.UpdateFilterPresetRequest) (*models.FilterPreset, error) {
	ctx, span := tracing.StartSpan(ctx, "filterpreset.Repository.Update")
	defer span.End()

	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("filter_presets")

	var assignments []string
	if req.Name != nil {
		assignments = append(assignments, ub.Assign("name", *req.Name))
	}
	if req.Filters != nil {
		assignments = append(assignments, ub.Assign("filters", database.NewJSONB(*req.Filters)))
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
		r.logger.WithContext(ctx).WithError(err).Error("Failed to update filter preset")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update filter preset")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("filter preset %d not found", id))
	}

	return r.GetByID(ctx, id)
}

// Delete removes a filter preset
func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, span := tracing.StartSpan(ctx, "filterpreset.Repository.Delete")
	defer span.End()

	db := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	db.DeleteFrom("filter_presets")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete filter preset")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete filter preset")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("filter preset %d not found", id))
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{"id": id}).Info("Deleted filter preset")
	return nil
}
