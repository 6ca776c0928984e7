package columnpreset

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
	"github.com/lib/pq"

	"github.com/wfullmer-filius/fmr-tracking-system/pkg/database"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/tracing"
)

// undefinedTable is the postgres error code returned when the table has not
// been migrated yet. List treats it as an empty preset set.
const undefinedTable = "42P01"

var presetColumns = []string{"id", "name", "columns", "is_default", "created_at", "updated_at"}

// Repository handles column preset persistence. The "at most one default"
// rule is enforced in a transaction: clearing the old default and setting the
// new one commit together.
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new column preset repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new preset. When the preset is marked default, every other
// default is cleared in the same transaction.
func (r *Repository) Create(ctx context.Context, req models.CreateColumnPresetRequest) (*models.ColumnPreset, error) {
	ctx, span := tracing.StartSpan(ctx, "columnpreset.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "Create",
		"name":   req.Name,
	})

	isDefault := req.IsDefault != nil && *req.IsDefault

	txCtx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create column preset")
	}
	defer tx.Rollback(ctx)

	if isDefault {
		if err := r.clearDefaults(txCtx, tx); err != nil {
			log.WithError(err).Error("Failed to clear default presets")
			return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create column preset")
		}
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("column_presets")
	sb.Cols("name", "columns", "is_default")
	sb.Values(req.Name, database.NewJSONB(req.Columns), isDefault)
	sb.Returning(presetColumns...)

	query, args := sb.Build()
	var preset models.ColumnPreset
	if err := tx.GetContext(txCtx, &preset, query, args...); err != nil {
		log.WithError(err).Error("Failed to create column preset")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create column preset")
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create column preset")
	}

	log.WithFields(map[string]any{"id": preset.ID}).Info("Created column preset")
	return &preset, nil
}

// GetByID retrieves a column preset by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.ColumnPreset, error) {
	ctx, span := tracing.StartSpan(ctx, "columnpreset.Repository.GetByID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(presetColumns...)
	sb.From("column_presets")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var preset models.ColumnPreset
	if err := r.db.GetContext(ctx, &preset, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("column preset %d not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get column preset")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get column preset")
	}

	return &preset, nil
}

// List retrieves every preset with the default first. A missing table reads
// as an empty list so a fresh environment renders before migrations settle.
func (r *Repository) List(ctx context.Context) (*models.ColumnPresetsListResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "columnpreset.Repository.List")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(presetColumns...)
	sb.From("column_presets")
	sb.OrderBy("is_default DESC", "name ASC")

	query, args := sb.Build()
	presets := []models.ColumnPreset{}
	if err := r.db.SelectContext(ctx, &presets, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == undefinedTable {
			r.logger.WithContext(ctx).Warn("column_presets table does not exist yet")
			return &models.ColumnPresetsListResponse{Presets: []models.ColumnPreset{}}, nil
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list column presets")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list column presets")
	}

	return &models.ColumnPresetsListResponse{Presets: presets}, nil
}

// Update applies a partial update. Promoting a preset to default clears every
// other default in the same transaction.
func (r *Repository) Update(ctx context.Context, id int64, req models.UpdateColumnPresetRequest) (*models.ColumnPreset, error) {
	ctx, span := tracing.StartSpan(ctx, "columnpreset.Repository.Update")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "Update",
		"id":     id,
	})

	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("column_presets")

	var assignments []string
	if req.Name != nil {
		assignments = append(assignments, ub.Assign("name", *req.Name))
	}
	if req.Columns != nil {
		assignments = append(assignments, ub.Assign("columns", database.NewJSONB(*req.Columns)))
	}
	if req.IsDefault != nil {
		assignments = append(assignments, ub.Assign("is_default", *req.IsDefault))
	}

	if len(assignments) == 0 {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	assignments = append(assignments, ub.Assign("updated_at", time.Now().UTC()))
	ub.Set(assignments...)
	ub.Where(ub.Equal("id", id))

	txCtx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update column preset")
	}
	defer tx.Rollback(ctx)

	if req.IsDefault != nil && *req.IsDefault {
		if err := r.clearDefaults(txCtx, tx); err != nil {
			log.WithError(err).Error("Failed to clear default presets")
			return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update column preset")
		}
	}

	query, args := ub.Build()
	result, err := tx.ExecContext(txCtx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to update column preset")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update column preset")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("column preset %d not found", id))
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update column preset")
	}

	return r.GetByID(ctx, id)
}

// Delete removes a column preset
func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, span := tracing.StartSpan(ctx, "columnpreset.Repository.Delete")
	defer span.End()

	db := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	db.DeleteFrom("column_presets")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete column preset")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete column preset")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("column preset %d not found", id))
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{"id": id}).Info("Deleted column preset")
	return nil
}

func (r *Repository) clearDefaults(ctx context.Context, tx database.Tx) error {
	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("column_presets")
	ub.Set(ub.Assign("is_default", false))
	ub.Where(ub.Equal("is_default", true))

	query, args := ub.Build()
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
