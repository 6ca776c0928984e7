package models

import (
	"time"
)

// FMRStatus is the lifecycle status of a failure management report.
type FMRStatus string

const (
	FMRStatusDraft      FMRStatus = "Draft"
	FMRStatusSubmitted  FMRStatus = "Submitted"
	FMRStatusUnresolved FMRStatus = "Unresolved"
	FMRStatusInProgress FMRStatus = "In-Progress"
	FMRStatusResolved   FMRStatus = "Resolved"
	FMRStatusArchived   FMRStatus = "Archived"
)

// PointOfFailure is where the failure was discovered.
type PointOfFailure string

const (
	PointOfFailureReceipt PointOfFailure = "Receipt"
	PointOfFailureTesting PointOfFailure = "Testing"
	PointOfFailureMission PointOfFailure = "Mission"
	PointOfFailureOther   PointOfFailure = "Other"
)

// RepairAction is the disposition chosen for the failed part.
type RepairAction string

const (
	RepairActionRMA    RepairAction = "RMA"
	RepairActionRework RepairAction = "Rework"
	RepairActionScrap  RepairAction = "Scrap/New Part"
	RepairActionOther  RepairAction = "Other"
)

// Signed1149Status tracks the DD Form 1149 signature state.
type Signed1149Status string

const (
	Signed1149NA      Signed1149Status = "N/A"
	Signed1149Waiting Signed1149Status = "Waiting for Signature"
	Signed1149Signed  Signed1149Status = "Sign Date"
)

// TierLevel is the contractor escalation stage derived from the tier dates.
type TierLevel string

const (
	TierLevel1    TierLevel = "tier1"
	TierLevel2    TierLevel = "tier2"
	TierLevel3    TierLevel = "tier3"
	TierLevelNone TierLevel = "none"
)

// DefaultProgram is stamped on records created without an explicit program.
const DefaultProgram = "CRC - AN/TYQ-23A - OMMOD"

// FMRRecord is a failure management report. Everything past the lifecycle
// fields is optional form data, grouped the way the intake form groups it.
type FMRRecord struct {
	ID             int64      `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Description    *string    `json:"description,omitempty" db:"description"`
	Status         FMRStatus  `json:"status" db:"status"`
	CreationDate   time.Time  `json:"creationDate" db:"creation_date"`
	ResolutionDate *time.Time `json:"resolutionDate,omitempty" db:"resolution_date"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`

	// Report section
	ControlNumber             *string         `json:"controlNumber,omitempty" db:"control_number"`
	Program                   *string         `json:"program,omitempty" db:"program"`
	Unit                      *string         `json:"unit,omitempty" db:"unit"`
	OmmodSn                   *string         `json:"ommodSn,omitempty" db:"ommod_sn"`
	OmmodSystemMeterHrs       *string         `json:"ommodSystemMeterHrs,omitempty" db:"ommod_system_meter_hrs"`
	TechnicianName            *string         `json:"technicianName,omitempty" db:"technician_name"`
	Email                     *string         `json:"email,omitempty" db:"email"`
	CommNumber                *string         `json:"commNumber,omitempty" db:"comm_number"`
	DateReported              *time.Time      `json:"dateReported,omitempty" db:"date_reported"`
	FailedDate                *time.Time      `json:"failedDate,omitempty" db:"failed_date"`
	PointOfFailure            *PointOfFailure `json:"pointOfFailure,omitempty" db:"point_of_failure"`
	FailedPartNomenclature    *string         `json:"failedPartNomenclature,omitempty" db:"failed_part_nomenclature"`
	FailedPartNumber          *string         `json:"failedPartNumber,omitempty" db:"failed_part_number"`
	Qty                       *string         `json:"qty,omitempty" db:"qty"`
	PartSerialNumber          *string         `json:"partSerialNumber,omitempty" db:"part_serial_number"`
	DescribeFailure           *string         `json:"describeFailure,omitempty" db:"describe_failure"`
	TroubleShootingPerformed  *string         `json:"troubleShootingPerformed,omitempty" db:"trouble_shooting_performed"`
	RepairTechnician          *string         `json:"repairTechnician,omitempty" db:"repair_technician"`
	RepairStartDate           *time.Time      `json:"repairStartDate,omitempty" db:"repair_start_date"`
	RepairActivityDescription *string         `json:"repairActivityDescription,omitempty" db:"repair_activity_description"`

	// Processing section
	RepairAction      *RepairAction `json:"repairAction,omitempty" db:"repair_action"`
	RepairActionOther *string       `json:"repairActionOther,omitempty" db:"repair_action_other"`

	// Supply chain section
	Signed1149             *Signed1149Status `json:"signed1149,omitempty" db:"signed_1149"`
	Signed1149Date         *time.Time        `json:"signed1149Date,omitempty" db:"signed_1149_date"`
	FailedPartReceivedDate *time.Time        `json:"failedPartReceivedDate,omitempty" db:"failed_part_received_date"`
	NewPartReceivedDate    *time.Time        `json:"newPartReceivedDate,omitempty" db:"new_part_received_date"`
	NewPartIssuedDate      *time.Time        `json:"newPartIssuedDate,omitempty" db:"new_part_issued_date"`
	NewPartSerialNumber    *string           `json:"newPartSerialNumber,omitempty" db:"new_part_serial_number"`
	SupplyComments         *string           `json:"supplyComments,omitempty" db:"supply_comments"`

	// Procurement section
	PoNumber             *string    `json:"poNumber,omitempty" db:"po_number"`
	WarrantyStartDate    *time.Time `json:"warrantyStartDate,omitempty" db:"warranty_start_date"`
	NewPartOrderedDate   *time.Time `json:"newPartOrderedDate,omitempty" db:"new_part_ordered_date"`
	VendorContactAddress *string    `json:"vendorContactAddress,omitempty" db:"vendor_contact_address"`
	ProcurementComments  *string    `json:"procurementComments,omitempty" db:"procurement_comments"`

	// Logistics section
	RequestDate         *time.Time `json:"requestDate,omitempty" db:"request_date"`
	RequestToVendorDate *time.Time `json:"requestToVendorDate,omitempty" db:"request_to_vendor_date"`
	RmaReceivedDate     *time.Time `json:"rmaReceivedDate,omitempty" db:"rma_received_date"`
	ShippedToVendorDate *time.Time `json:"shippedToVendorDate,omitempty" db:"shipped_to_vendor_date"`
	LogisticsComment    *string    `json:"logisticsComment,omitempty" db:"logistics_comment"`

	// Contractor section
	ProblemAssistanceRequested *string    `json:"problemAssistanceRequested,omitempty" db:"problem_assistance_requested"`
	Tier1Date                  *time.Time `json:"tier1Date,omitempty" db:"tier_1_date"`
	Tier2Date                  *time.Time `json:"tier2Date,omitempty" db:"tier_2_date"`
	Tier3Date                  *time.Time `json:"tier3Date,omitempty" db:"tier_3_date"`
	ProblemResolved            *bool      `json:"problemResolved,omitempty" db:"problem_resolved"`
	ContractorComments         *string    `json:"contractorComments,omitempty" db:"contractor_comments"`

	// Additional tracking fields
	FormSubmissionType        *string    `json:"formSubmissionType,omitempty" db:"form_submission_type"`
	FmrCreatedDate            *time.Time `json:"fmrCreatedDate,omitempty" db:"fmr_created_date"`
	WarrantyStopDate          *time.Time `json:"warrantyStopDate,omitempty" db:"warranty_stop_date"`
	CompletedDate             *time.Time `json:"completedDate,omitempty" db:"completed_date"`
	FmrReceivedDateByFailures *time.Time `json:"fmrReceivedDateByFailures,omitempty" db:"fmr_received_date_by_failures"`
	TrackingNoType            *string    `json:"trackingNoType,omitempty" db:"tracking_no_type"`
	TrackingNo                *string    `json:"trackingNo,omitempty" db:"tracking_no"`
	RmaNoType                 *string    `json:"rmaNoType,omitempty" db:"rma_no_type"`
	RmaNo                     *string    `json:"rmaNo,omitempty" db:"rma_no"`
	EngineerDeployedType      *string    `json:"engineerDeployedType,omitempty" db:"engineer_deployed_type"`
	EngineerName              *string    `json:"engineerName,omitempty" db:"engineer_name"`
	DeploymentDate            *time.Time `json:"deploymentDate,omitempty" db:"deployment_date"`
	RecordUpdated             *time.Time `json:"recordUpdated,omitempty" db:"record_updated"`
	RecordEnteredOn           *time.Time `json:"recordEnteredOn,omitempty" db:"record_entered_on"`
	RecordEnteredBy           *string    `json:"recordEnteredBy,omitempty" db:"record_entered_by"`
}

// TierLevel derives the escalation stage from which tier dates are populated.
// The highest dated tier wins regardless of the dates' chronological order:
// a record with only a tier 3 date is tier3 even if tiers 1 and 2 were never
// dated. This is presence precedence, never a date comparison.
func (f *FMRRecord) TierLevel() TierLevel {
	switch {
	case f.Tier3Date != nil:
		return TierLevel3
	case f.Tier2Date != nil:
		return TierLevel2
	case f.Tier1Date != nil:
		return TierLevel1
	default:
		return TierLevelNone
	}
}

// CreateFMRRequest is the request body for creating an FMR record. Only the
// title is required; everything else falls back to its column default.
type CreateFMRRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description,omitempty"`
	Status      *FMRStatus `json:"status,omitempty"`

	ControlNumber             *string         `json:"controlNumber,omitempty"`
	Program                   *string         `json:"program,omitempty"`
	Unit                      *string         `json:"unit,omitempty"`
	OmmodSn                   *string         `json:"ommodSn,omitempty"`
	OmmodSystemMeterHrs       *string         `json:"ommodSystemMeterHrs,omitempty"`
	TechnicianName            *string         `json:"technicianName,omitempty"`
	Email                     *string         `json:"email,omitempty"`
	CommNumber                *string         `json:"commNumber,omitempty"`
	DateReported              *time.Time      `json:"dateReported,omitempty"`
	FailedDate                *time.Time      `json:"failedDate,omitempty"`
	PointOfFailure            *PointOfFailure `json:"pointOfFailure,omitempty"`
	FailedPartNomenclature    *string         `json:"failedPartNomenclature,omitempty"`
	FailedPartNumber          *string         `json:"failedPartNumber,omitempty"`
	Qty                       *string         `json:"qty,omitempty"`
	PartSerialNumber          *string         `json:"partSerialNumber,omitempty"`
	DescribeFailure           *string         `json:"describeFailure,omitempty"`
	TroubleShootingPerformed  *string         `json:"troubleShootingPerformed,omitempty"`
	RepairTechnician          *string         `json:"repairTechnician,omitempty"`
	RepairStartDate           *time.Time      `json:"repairStartDate,omitempty"`
	RepairActivityDescription *string         `json:"repairActivityDescription,omitempty"`

	RepairAction      *RepairAction `json:"repairAction,omitempty"`
	RepairActionOther *string       `json:"repairActionOther,omitempty"`

	Signed1149             *Signed1149Status `json:"signed1149,omitempty"`
	Signed1149Date         *time.Time        `json:"signed1149Date,omitempty"`
	FailedPartReceivedDate *time.Time        `json:"failedPartReceivedDate,omitempty"`
	NewPartReceivedDate    *time.Time        `json:"newPartReceivedDate,omitempty"`
	NewPartIssuedDate      *time.Time        `json:"newPartIssuedDate,omitempty"`
	NewPartSerialNumber    *string           `json:"newPartSerialNumber,omitempty"`
	SupplyComments         *string           `json:"supplyComments,omitempty"`

	PoNumber             *string    `json:"poNumber,omitempty"`
	WarrantyStartDate    *time.Time `json:"warrantyStartDate,omitempty"`
	NewPartOrderedDate   *time.Time `json:"newPartOrderedDate,omitempty"`
	VendorContactAddress *string    `json:"vendorContactAddress,omitempty"`
	ProcurementComments  *string    `json:"procurementComments,omitempty"`

	RequestDate         *time.Time `json:"requestDate,omitempty"`
	RequestToVendorDate *time.Time `json:"requestToVendorDate,omitempty"`
	RmaReceivedDate     *time.Time `json:"rmaReceivedDate,omitempty"`
	ShippedToVendorDate *time.Time `json:"shippedToVendorDate,omitempty"`
	LogisticsComment    *string    `json:"logisticsComment,omitempty"`

	ProblemAssistanceRequested *string    `json:"problemAssistanceRequested,omitempty"`
	Tier1Date                  *time.Time `json:"tier1Date,omitempty"`
	Tier2Date                  *time.Time `json:"tier2Date,omitempty"`
	Tier3Date                  *time.Time `json:"tier3Date,omitempty"`
	ProblemResolved            *bool      `json:"problemResolved,omitempty"`
	ContractorComments         *string    `json:"contractorComments,omitempty"`

	FormSubmissionType        *string    `json:"formSubmissionType,omitempty"`
	FmrCreatedDate            *time.Time `json:"fmrCreatedDate,omitempty"`
	WarrantyStopDate          *time.Time `json:"warrantyStopDate,omitempty"`
	CompletedDate             *time.Time `json:"completedDate,omitempty"`
	FmrReceivedDateByFailures *time.Time `json:"fmrReceivedDateByFailures,omitempty"`
	TrackingNoType            *string    `json:"trackingNoType,omitempty"`
	TrackingNo                *string    `json:"trackingNo,omitempty"`
	RmaNoType                 *string    `json:"rmaNoType,omitempty"`
	RmaNo                     *string    `json:"rmaNo,omitempty"`
	EngineerDeployedType      *string    `json:"engineerDeployedType,omitempty"`
	EngineerName              *string    `json:"engineerName,omitempty"`
	DeploymentDate            *time.Time `json:"deploymentDate,omitempty"`
	RecordEnteredBy           *string    `json:"recordEnteredBy,omitempty"`
}

// UpdateFMRRequest is the patch body for updating an FMR record. A nil field
// means "leave the column alone"; only fields present in the request body are
// written. The field set is enumerated statically in the repository so a new
// column cannot be forgotten silently.
type UpdateFMRRequest struct {
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Status         *FMRStatus `json:"status,omitempty"`
	ResolutionDate *time.Time `json:"resolutionDate,omitempty"`

	ControlNumber             *string         `json:"controlNumber,omitempty"`
	Program                   *string         `json:"program,omitempty"`
	Unit                      *string         `json:"unit,omitempty"`
	OmmodSn                   *string         `json:"ommodSn,omitempty"`
	OmmodSystemMeterHrs       *string         `json:"ommodSystemMeterHrs,omitempty"`
	TechnicianName            *string         `json:"technicianName,omitempty"`
	Email                     *string         `json:"email,omitempty"`
	CommNumber                *string         `json:"commNumber,omitempty"`
	DateReported              *time.Time      `json:"dateReported,omitempty"`
	FailedDate                *time.Time      `json:"failedDate,omitempty"`
	PointOfFailure            *PointOfFailure `json:"pointOfFailure,omitempty"`
	FailedPartNomenclature    *string         `json:"failedPartNomenclature,omitempty"`
	FailedPartNumber          *string         `json:"failedPartNumber,omitempty"`
	Qty                       *string         `json:"qty,omitempty"`
	PartSerialNumber          *string         `json:"partSerialNumber,omitempty"`
	DescribeFailure           *string         `json:"describeFailure,omitempty"`
	TroubleShootingPerformed  *string         `json:"troubleShootingPerformed,omitempty"`
	RepairTechnician          *string         `json:"repairTechnician,omitempty"`
	RepairStartDate           *time.Time      `json:"repairStartDate,omitempty"`
	RepairActivityDescription *string         `json:"repairActivityDescription,omitempty"`

	RepairAction      *RepairAction `json:"repairAction,omitempty"`
	RepairActionOther *string       `json:"repairActionOther,omitempty"`

	Signed1149             *Signed1149Status `json:"signed1149,omitempty"`
	Signed1149Date         *time.Time        `json:"signed1149Date,omitempty"`
	FailedPartReceivedDate *time.Time        `json:"failedPartReceivedDate,omitempty"`
	NewPartReceivedDate    *time.Time        `json:"newPartReceivedDate,omitempty"`
	NewPartIssuedDate      *time.Time        `json:"newPartIssuedDate,omitempty"`
	NewPartSerialNumber    *string           `json:"newPartSerialNumber,omitempty"`
	SupplyComments         *string           `json:"supplyComments,omitempty"`

	PoNumber             *string    `json:"poNumber,omitempty"`
	WarrantyStartDate    *time.Time `json:"warrantyStartDate,omitempty"`
	NewPartOrderedDate   *time.Time `json:"newPartOrderedDate,omitempty"`
	VendorContactAddress *string    `json:"vendorContactAddress,omitempty"`
	ProcurementComments  *string    `json:"procurementComments,omitempty"`

	RequestDate         *time.Time `json:"requestDate,omitempty"`
	RequestToVendorDate *time.Time `json:"requestToVendorDate,omitempty"`
	RmaReceivedDate     *time.Time `json:"rmaReceivedDate,omitempty"`
	ShippedToVendorDate *time.Time `json:"shippedToVendorDate,omitempty"`
	LogisticsComment    *string    `json:"logisticsComment,omitempty"`

	ProblemAssistanceRequested *string    `json:"problemAssistanceRequested,omitempty"`
	Tier1Date                  *time.Time `json:"tier1Date,omitempty"`
	Tier2Date                  *time.Time `json:"tier2Date,omitempty"`
	Tier3Date                  *time.Time `json:"tier3Date,omitempty"`
	ProblemResolved            *bool      `json:"problemResolved,omitempty"`
	ContractorComments         *string    `json:"contractorComments,omitempty"`

	FormSubmissionType        *string    `json:"formSubmissionType,omitempty"`
	FmrCreatedDate            *time.Time `json:"fmrCreatedDate,omitempty"`
	WarrantyStopDate          *time.Time `json:"warrantyStopDate,omitempty"`
	CompletedDate             *time.Time `json:"completedDate,omitempty"`
	FmrReceivedDateByFailures *time.Time `json:"fmrReceivedDateByFailures,omitempty"`
	TrackingNoType            *string    `json:"trackingNoType,omitempty"`
	TrackingNo                *string    `json:"trackingNo,omitempty"`
	RmaNoType                 *string    `json:"rmaNoType,omitempty"`
	RmaNo                     *string    `json:"rmaNo,omitempty"`
	EngineerDeployedType      *string    `json:"engineerDeployedType,omitempty"`
	EngineerName              *string    `json:"engineerName,omitempty"`
	DeploymentDate            *time.Time `json:"deploymentDate,omitempty"`
	RecordEnteredBy           *string    `json:"recordEnteredBy,omitempty"`
}

// ListFMRFilters are the query parameters accepted by the list endpoint.
type ListFMRFilters struct {
	Limit     int        `query:"limit"`
	Offset    int        `query:"offset"`
	TierLevel *TierLevel `query:"tierLevel"`
}

// FMRListResponse is a page of FMR records. Total is the unfiltered table
// count even when a tier filter is active; the dashboard relies on that for
// its overall record counter.
type FMRListResponse struct {
	Fmrs  []FMRRecord `json:"fmrs"`
	Total int         `json:"total"`
}
