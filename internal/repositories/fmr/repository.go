package fmr

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

	mctx "github.com/wfullmer-filius/fmr-tracking-system/pkg/context"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/database"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/tracing"
)

// fmrColumns is every column of fmr_requests in table order. Reads always
// select the full set so a row scans into models.FMRRecord without gaps.
var fmrColumns = []string{
	"id", "title", "description", "status", "creation_date", "resolution_date", "created_at", "updated_at",
	"control_number", "program", "unit", "ommod_sn", "ommod_system_meter_hrs", "technician_name", "email",
	"comm_number", "date_reported", "failed_date", "point_of_failure", "failed_part_nomenclature",
	"failed_part_number", "qty", "part_serial_number", "describe_failure", "trouble_shooting_performed",
	"repair_technician", "repair_start_date", "repair_activity_description",
	"repair_action", "repair_action_other",
	"signed_1149", "signed_1149_date", "failed_part_received_date", "new_part_received_date",
	"new_part_issued_date", "new_part_serial_number", "supply_comments",
	"po_number", "warranty_start_date", "new_part_ordered_date", "vendor_contact_address", "procurement_comments",
	"request_date", "request_to_vendor_date", "rma_received_date", "shipped_to_vendor_date", "logistics_comment",
	"problem_assistance_requested", "tier_1_date", "tier_2_date", "tier_3_date", "problem_resolved", "contractor_comments",
	"form_submission_type", "fmr_created_date", "warranty_stop_date", "completed_date", "fmr_received_date_by_failures",
	"tracking_no_type", "tracking_no", "rma_no_type", "rma_no", "engineer_deployed_type", "engineer_name",
	"deployment_date", "record_updated", "record_entered_on", "record_entered_by",
}

// Repository handles FMR record persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new FMR repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new FMR record and returns the stored row. The database
// fills creation_date, created_at, updated_at and record_entered_on.
func (r *Repository) Create(ctx context.Context, req models.CreateFMRRequest) (*models.FMRRecord, error) {
	ctx, span := tracing.StartSpan(ctx, "fmr.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "Create",
		"title":  req.Title,
	})

	status := models.FMRStatusDraft
	if req.Status != nil {
		status = *req.Status
	}
	program := models.DefaultProgram
	if req.Program != nil {
		program = *req.Program
	}
	enteredBy := req.RecordEnteredBy
	if enteredBy == nil {
		if user := mctx.GetUser(ctx); user != "" {
			enteredBy = &user
		}
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("fmr_requests")
	sb.Cols(
		"title", "description", "status", "control_number", "program", "unit", "ommod_sn", "ommod_system_meter_hrs",
		"technician_name", "email", "comm_number", "date_reported", "failed_date", "point_of_failure",
		"failed_part_nomenclature", "failed_part_number", "qty", "part_serial_number", "describe_failure",
		"trouble_shooting_performed", "repair_technician", "repair_start_date", "repair_activity_description",
		"repair_action", "repair_action_other", "signed_1149", "signed_1149_date", "failed_part_received_date",
		"new_part_received_date", "new_part_issued_date", "new_part_serial_number", "supply_comments",
		"po_number", "warranty_start_date", "new_part_ordered_date", "vendor_contact_address", "procurement_comments",
		"request_date", "request_to_vendor_date", "rma_received_date", "shipped_to_vendor_date", "logistics_comment",
		"problem_assistance_requested", "tier_1_date", "tier_2_date", "tier_3_date", "problem_resolved", "contractor_comments",
		"form_submission_type", "fmr_created_date", "warranty_stop_date", "completed_date", "fmr_received_date_by_failures",
		"tracking_no_type", "tracking_no", "rma_no_type", "rma_no", "engineer_deployed_type", "engineer_name",
		"deployment_date", "record_entered_by",
	)
	sb.Values(
		req.Title, req.Description, status, req.ControlNumber, program, req.Unit, req.OmmodSn, req.OmmodSystemMeterHrs,
		req.TechnicianName, req.Email, req.CommNumber, req.DateReported, req.FailedDate, req.PointOfFailure,
		req.FailedPartNomenclature, req.FailedPartNumber, req.Qty, req.PartSerialNumber, req.DescribeFailure,
		req.TroubleShootingPerformed, req.RepairTechnician, req.RepairStartDate, req.RepairActivityDescription,
		req.RepairAction, req.RepairActionOther, req.Signed1149, req.Signed1149Date, req.FailedPartReceivedDate,
		req.NewPartReceivedDate, req.NewPartIssuedDate, req.NewPartSerialNumber, req.SupplyComments,
		req.PoNumber, req.WarrantyStartDate, req.NewPartOrderedDate, req.VendorContactAddress, req.ProcurementComments,
		req.RequestDate, req.RequestToVendorDate, req.RmaReceivedDate, req.ShippedToVendorDate, req.LogisticsComment,
		req.ProblemAssistanceRequested, req.Tier1Date, req.Tier2Date, req.Tier3Date, req.ProblemResolved, req.ContractorComments,
		req.FormSubmissionType, req.FmrCreatedDate, req.WarrantyStopDate, req.CompletedDate, req.FmrReceivedDateByFailures,
		req.TrackingNoType, req.TrackingNo, req.RmaNoType, req.RmaNo, req.EngineerDeployedType, req.EngineerName,
		req.DeploymentDate, enteredBy,
	)
	sb.Returning("id")

	query, args := sb.Build()
	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Error("Insert returned no row")
			return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create FMR request")
		}
		log.WithError(err).Error("Failed to create FMR request")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create FMR request")
	}

	log.WithFields(map[string]any{"id": id}).Info("Created FMR request")
	return r.GetByID(ctx, id)
}

// GetByID retrieves an FMR record by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.FMRRecord, error) {
	ctx, span := tracing.StartSpan(ctx, "fmr.Repository.GetByID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(fmrColumns...)
	sb.From("fmr_requests")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var record models.FMRRecord
	if err := r.db.GetContext(ctx, &record, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("FMR request %d not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get FMR request")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get FMR request")
	}

	return &record, nil
}

// Update applies a partial update and returns the stored row. Absent fields
// are untouched; at least one field must be present.
func (r *Repository) Update(ctx context.Context, id int64, req models.UpdateFMRRequest) (*models.FMRRecord, error) {
	ctx, span := tracing.StartSpan(ctx, "fmr.Repository.Update")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "Update",
		"id":     id,
	})

	now := time.Now().UTC()
	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("fmr_requests")

	assignments := patchAssignments(ub, req)
	// Marking a record Resolved stamps the resolution date unless the caller
	// supplied one explicitly.
	if req.Status != nil && *req.Status == models.FMRStatusResolved && req.ResolutionDate == nil {
		assignments = append(assignments, ub.Assign("resolution_date", now))
	}

	// The audit stamps below never count as caller-provided fields, so the
	// emptiness check comes first.
	if len(assignments) == 0 {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	assignments = append(assignments,
		ub.Assign("updated_at", now),
		ub.Assign("record_updated", now),
	)
	ub.Set(assignments...)
	ub.Where(ub.Equal("id", id))

	query, args := ub.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to update FMR request")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update FMR request")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("FMR request %d not found", id))
	}

	log.Info("Updated FMR request")
	return r.GetByID(ctx, id)
}

// List retrieves a page of FMR records ordered newest first. Total is the
// unfiltered table count; a tier filter narrows only the returned page since
// the tier is derived in code rather than stored.
func (r *Repository) List(ctx context.Context, filters models.ListFMRFilters) (*models.FMRListResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "fmr.Repository.List")
	defer span.End()

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	countSb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	countSb.Select("COUNT(*)")
	countSb.From("fmr_requests")

	countQuery, countArgs := countSb.Build()
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to count FMR requests")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list FMR requests")
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(fmrColumns...)
	sb.From("fmr_requests")
	sb.OrderBy("creation_date DESC")
	sb.Limit(limit).Offset(offset)

	query, args := sb.Build()
	records := []models.FMRRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list FMR requests")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list FMR requests")
	}

	if filters.TierLevel != nil {
		filtered := make([]models.FMRRecord, 0, len(records))
		for _, record := range records {
			if record.TierLevel() == *filters.TierLevel {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}

	return &models.FMRListResponse{Fmrs: records, Total: total}, nil
}

// patchAssignments maps each populated request field to its column
// assignment. The enumeration is deliberately static: adding a column means
// adding a line here, and the compiler flags a renamed field immediately.
func patchAssignments(ub *sqlbuilder.UpdateBuilder, req models.UpdateFMRRequest) []string {
	var assignments []string
	assign := func(column string, value any) {
		assignments = append(assignments, ub.Assign(column, value))
	}

	if req.Title != nil {
		assign("title", *req.Title)
	}
	if req.Description != nil {
		assign("description", *req.Description)
	}
	if req.Status != nil {
		assign("status", *req.Status)
	}
	if req.ResolutionDate != nil {
		assign("resolution_date", *req.ResolutionDate)
	}
	if req.ControlNumber != nil {
		assign("control_number", *req.ControlNumber)
	}
	if req.Program != nil {
		assign("program", *req.Program)
	}
	if req.Unit != nil {
		assign("unit", *req.Unit)
	}
	if req.OmmodSn != nil {
		assign("ommod_sn", *req.OmmodSn)
	}
	if req.OmmodSystemMeterHrs != nil {
		assign("ommod_system_meter_hrs", *req.OmmodSystemMeterHrs)
	}
	if req.TechnicianName != nil {
		assign("technician_name", *req.TechnicianName)
	}
	if req.Email != nil {
		assign("email", *req.Email)
	}
	if req.CommNumber != nil {
		assign("comm_number", *req.CommNumber)
	}
	if req.DateReported != nil {
		assign("date_reported", *req.DateReported)
	}
	if req.FailedDate != nil {
		assign("failed_date", *req.FailedDate)
	}
	if req.PointOfFailure != nil {
		assign("point_of_failure", *req.PointOfFailure)
	}
	if req.FailedPartNomenclature != nil {
		assign("failed_part_nomenclature", *req.FailedPartNomenclature)
	}
	if req.FailedPartNumber != nil {
		assign("failed_part_number", *req.FailedPartNumber)
	}
	if req.Qty != nil {
		assign("qty", *req.Qty)
	}
	if req.PartSerialNumber != nil {
		assign("part_serial_number", *req.PartSerialNumber)
	}
	if req.DescribeFailure != nil {
		assign("describe_failure", *req.DescribeFailure)
	}
	if req.TroubleShootingPerformed != nil {
		assign("trouble_shooting_performed", *req.TroubleShootingPerformed)
	}
	if req.RepairTechnician != nil {
		assign("repair_technician", *req.RepairTechnician)
	}
	if req.RepairStartDate != nil {
		assign("repair_start_date", *req.RepairStartDate)
	}
	if req.RepairActivityDescription != nil {
		assign("repair_activity_description", *req.RepairActivityDescription)
	}
	if req.RepairAction != nil {
		assign("repair_action", *req.RepairAction)
	}
	if req.RepairActionOther != nil {
		assign("repair_action_other", *req.RepairActionOther)
	}
	if req.Signed1149 != nil {
		assign("signed_1149", *req.Signed1149)
	}
	if req.Signed1149Date != nil {
		assign("signed_1149_date", *req.Signed1149Date)
	}
	if req.FailedPartReceivedDate != nil {
		assign("failed_part_received_date", *req.FailedPartReceivedDate)
	}
	if req.NewPartReceivedDate != nil {
		assign("new_part_received_date", *req.NewPartReceivedDate)
	}
	if req.NewPartIssuedDate != nil {
		assign("new_part_issued_date", *req.NewPartIssuedDate)
	}
	if req.NewPartSerialNumber != nil {
		assign("new_part_serial_number", *req.NewPartSerialNumber)
	}
	if req.SupplyComments != nil {
		assign("supply_comments", *req.SupplyComments)
	}
	if req.PoNumber != nil {
		assign("po_number", *req.PoNumber)
	}
	if req.WarrantyStartDate != nil {
		assign("warranty_start_date", *req.WarrantyStartDate)
	}
	if req.NewPartOrderedDate != nil {
		assign("new_part_ordered_date", *req.NewPartOrderedDate)
	}
	if req.VendorContactAddress != nil {
		assign("vendor_contact_address", *req.VendorContactAddress)
	}
	if req.ProcurementComments != nil {
		assign("procurement_comments", *req.ProcurementComments)
	}
	if req.RequestDate != nil {
		assign("request_date", *req.RequestDate)
	}
	if req.RequestToVendorDate != nil {
		assign("request_to_vendor_date", *req.RequestToVendorDate)
	}
	if req.RmaReceivedDate != nil {
		assign("rma_received_date", *req.RmaReceivedDate)
	}
	if req.ShippedToVendorDate != nil {
		assign("shipped_to_vendor_date", *req.ShippedToVendorDate)
	}
	if req.LogisticsComment != nil {
		assign("logistics_comment", *req.LogisticsComment)
	}
	if req.ProblemAssistanceRequested != nil {
		assign("problem_assistance_requested", *req.ProblemAssistanceRequested)
	}
	if req.Tier1Date != nil {
		assign("tier_1_date", *req.Tier1Date)
	}
	if req.Tier2Date != nil {
		assign("tier_2_date", *req.Tier2Date)
	}
	if req.Tier3Date != nil {
		assign("tier_3_date", *req.Tier3Date)
	}
	if req.ProblemResolved != nil {
		assign("problem_resolved", *req.ProblemResolved)
	}
	if req.ContractorComments != nil {
		assign("contractor_comments", *req.ContractorComments)
	}
	if req.FormSubmissionType != nil {
		assign("form_submission_type", *req.FormSubmissionType)
	}
	if req.FmrCreatedDate != nil {
		assign("fmr_created_date", *req.FmrCreatedDate)
	}
	if req.WarrantyStopDate != nil {
		assign("warranty_stop_date", *req.WarrantyStopDate)
	}
	if req.CompletedDate != nil {
		assign("completed_date", *req.CompletedDate)
	}
	if req.FmrReceivedDateByFailures != nil {
		assign("fmr_received_date_by_failures", *req.FmrReceivedDateByFailures)
	}
	if req.TrackingNoType != nil {
		assign("tracking_no_type", *req.TrackingNoType)
	}
	if req.TrackingNo != nil {
		assign("tracking_no", *req.TrackingNo)
	}
	if req.RmaNoType != nil {
		assign("rma_no_type", *req.RmaNoType)
	}
	if req.RmaNo != nil {
		assign("rma_no", *req.RmaNo)
	}
	if req.EngineerDeployedType != nil {
		assign("engineer_deployed_type", *req.EngineerDeployedType)
	}
	if req.EngineerName != nil {
		assign("engineer_name", *req.EngineerName)
	}
	if req.DeploymentDate != nil {
		assign("deployment_date", *req.DeploymentDate)
	}
	if req.RecordEnteredBy != nil {
		assign("record_entered_by", *req.RecordEnteredBy)
	}

	return assignments
}
