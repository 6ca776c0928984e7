package models

import (
	"time"

	"github.com/wfullmer-filius/fmr-tracking-system/pkg/database"
)

// ColumnPreset is a saved set of columns for the FMR table view. At most one
// preset is the default at any time; the repository enforces that.
type ColumnPreset struct {
	ID        int64                    `json:"id" db:"id"`
	Name      string                   `json:"name" db:"name"`
	Columns   database.JSONB[[]string] `json:"columns" db:"columns"`
	IsDefault bool                     `json:"isDefault" db:"is_default"`
	CreatedAt time.Time                `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time                `json:"updatedAt" db:"updated_at"`
}

type CreateColumnPresetRequest struct {
	Name      string   `json:"name" validate:"required"`
	Columns   []string `json:"columns" validate:"required"`
	IsDefault *bool    `json:"isDefault,omitempty"`
}

type UpdateColumnPresetRequest struct {
	Name      *string   `json:"name,omitempty"`
	Columns   *[]string `json:"columns,omitempty"`
	IsDefault *bool     `json:"isDefault,omitempty"`
}

type ColumnPresetsListResponse struct {
	Presets []ColumnPreset `json:"presets"`
}

// PresetFilters is the saved filter state for the FMR list view. The values
// are stored verbatim and echoed back; the server never interprets them.
type PresetFilters struct {
	Search               *string `json:"search,omitempty"`
	StatusFilter         *string `json:"statusFilter,omitempty"`
	ProgramFilter        *string `json:"programFilter,omitempty"`
	UnitFilter           *string `json:"unitFilter,omitempty"`
	PointOfFailureFilter *string `json:"pointOfFailureFilter,omitempty"`
	RepairActionFilter   *string `json:"repairActionFilter,omitempty"`
	TierLevelFilter      *string `json:"tierLevelFilter,omitempty"`
}

// FilterPreset is a named, saved filter combination.
type FilterPreset struct {
	ID        int64                         `json:"id" db:"id"`
	Name      string                        `json:"name" db:"name"`
	Filters   database.JSONB[PresetFilters] `json:"filters" db:"filters"`
	CreatedAt time.Time                     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time                     `json:"updatedAt" db:"updated_at"`
}

type CreateFilterPresetRequest struct {
	Name    string        `json:"name" validate:"required"`
	Filters PresetFilters `json:"filters"`
}

type UpdateFilterPresetRequest struct {
	Name    *string        `json:"name,omitempty"`
	Filters *PresetFilters `json:"filters,omitempty"`
}

type FilterPresetsListResponse struct {
	Presets []FilterPreset `json:"presets"`
}
