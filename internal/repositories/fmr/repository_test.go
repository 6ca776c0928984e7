package fmr

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wfullmer-filius/fmr-tracking-system/pkg/database"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
)

func getTestLogger() ectologger.Logger {
	zapLogger, _ := zap.NewDevelopment()
	return zapadapter.NewZapEctoLogger(zapLogger, nil)
}

func getTestDB(t *testing.T) database.DB {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbUser := os.Getenv("DB_USER_NAME")
	if dbUser == "" {
		dbUser = "user"
	}
	dbPass := os.Getenv("DB_PASSWORD")
	if dbPass == "" {
		dbPass = "password"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "fmr"
	}

	dsn := "host=" + dbHost + " user=" + dbUser + " password=" + dbPass + " dbname=" + dbName + " sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")

	return database.NewDatabaseInstance(db, getTestLogger())
}

func strPtr(s string) *string {
	return &s
}

func statusPtr(s models.FMRStatus) *models.FMRStatus {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestPatchAssignments_Empty(t *testing.T) {
	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	assignments := patchAssignments(ub, models.UpdateFMRRequest{})
	assert.Empty(t, assignments)
}

func TestPatchAssignments_MapsOnlyProvidedColumns(t *testing.T) {
	tierDate := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	resolved := true
	req := models.UpdateFMRRequest{
		Title:           strPtr("Updated title"),
		Status:          statusPtr(models.FMRStatusInProgress),
		Tier3Date:       timePtr(tierDate),
		ProblemResolved: &resolved,
	}

	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("fmr_requests")
	assignments := patchAssignments(ub, req)
	require.Len(t, assignments, 4)

	ub.Set(assignments...)
	query, args := ub.Build()

	assert.Contains(t, query, "title = ")
	assert.Contains(t, query, "status = ")
	assert.Contains(t, query, "tier_3_date = ")
	assert.Contains(t, query, "problem_resolved = ")
	assert.NotContains(t, query, "description")
	assert.NotContains(t, query, "resolution_date")
	assert.Len(t, args, 4)
	assert.Contains(t, args, "Updated title")
}

func TestPatchAssignments_CoversEveryColumn(t *testing.T) {
	// One non-nil value per field; the built statement must touch a distinct
	// column for each so no two fields collapse onto the same assignment.
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	status := models.FMRStatusResolved
	pof := models.PointOfFailureTesting
	action := models.RepairActionRMA
	signed := models.Signed1149Signed
	resolved := false
	s := "x"

	req := models.UpdateFMRRequest{
		Title: &s, Description: &s, Status: &status, ResolutionDate: &now,
		ControlNumber: &s, Program: &s, Unit: &s, OmmodSn: &s, OmmodSystemMeterHrs: &s,
		TechnicianName: &s, Email: &s, CommNumber: &s, DateReported: &now, FailedDate: &now,
		PointOfFailure: &pof, FailedPartNomenclature: &s, FailedPartNumber: &s, Qty: &s,
		PartSerialNumber: &s, DescribeFailure: &s, TroubleShootingPerformed: &s,
		RepairTechnician: &s, RepairStartDate: &now, RepairActivityDescription: &s,
		RepairAction: &action, RepairActionOther: &s,
		Signed1149: &signed, Signed1149Date: &now, FailedPartReceivedDate: &now,
		NewPartReceivedDate: &now, NewPartIssuedDate: &now, NewPartSerialNumber: &s, SupplyComments: &s,
		PoNumber: &s, WarrantyStartDate: &now, NewPartOrderedDate: &now, VendorContactAddress: &s, ProcurementComments: &s,
		RequestDate: &now, RequestToVendorDate: &now, RmaReceivedDate: &now, ShippedToVendorDate: &now, LogisticsComment: &s,
		ProblemAssistanceRequested: &s, Tier1Date: &now, Tier2Date: &now, Tier3Date: &now,
		ProblemResolved: &resolved, ContractorComments: &s,
		FormSubmissionType: &s, FmrCreatedDate: &now, WarrantyStopDate: &now, CompletedDate: &now,
		FmrReceivedDateByFailures: &now, TrackingNoType: &s, TrackingNo: &s, RmaNoType: &s, RmaNo: &s,
		EngineerDeployedType: &s, EngineerName: &s, DeploymentDate: &now, RecordEnteredBy: &s,
	}

	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("fmr_requests")
	assignments := patchAssignments(ub, req)
	assert.Len(t, assignments, 62)

	columns := map[string]bool{}
	for _, a := range assignments {
		column := strings.TrimSpace(strings.SplitN(a, "=", 2)[0])
		assert.False(t, columns[column], "column %s assigned twice", column)
		columns[column] = true
	}
}

func TestFMRRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := getTestDB(t)
	logger := getTestLogger()
	repo := NewRepository(db, logger)
	ctx := context.Background()

	// Create with defaults
	created, err := repo.Create(ctx, models.CreateFMRRequest{Title: "Antenna azimuth drive seized"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.FMRStatusDraft, created.Status)
	require.NotNil(t, created.Program)
	assert.Equal(t, models.DefaultProgram, *created.Program)
	assert.False(t, created.CreationDate.IsZero())
	assert.Nil(t, created.RecordUpdated)

	// GetByID
	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Antenna azimuth drive seized", fetched.Title)

	// GetByID miss
	_, err = repo.GetByID(ctx, created.ID+100000)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))

	// Empty patch is rejected before touching the row
	_, err = repo.Update(ctx, created.ID, models.UpdateFMRRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))

	// Resolving without an explicit date stamps one
	updated, err := repo.Update(ctx, created.ID, models.UpdateFMRRequest{
		Status: statusPtr(models.FMRStatusResolved),
	})
	require.NoError(t, err)
	assert.Equal(t, models.FMRStatusResolved, updated.Status)
	require.NotNil(t, updated.ResolutionDate)
	require.NotNil(t, updated.RecordUpdated)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	// An explicit resolution date is kept as given
	explicit := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	second, err := repo.Create(ctx, models.CreateFMRRequest{Title: "Coolant leak at heat exchanger"})
	require.NoError(t, err)
	updated2, err := repo.Update(ctx, second.ID, models.UpdateFMRRequest{
		Status:         statusPtr(models.FMRStatusResolved),
		ResolutionDate: &explicit,
	})
	require.NoError(t, err)
	require.NotNil(t, updated2.ResolutionDate)
	assert.True(t, updated2.ResolutionDate.Equal(explicit))

	// Update miss
	_, err = repo.Update(ctx, created.ID+100000, models.UpdateFMRRequest{Title: strPtr("nope")})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))
}

func TestFMRRepository_ListTierFilter(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := getTestDB(t)
	logger := getTestLogger()
	repo := NewRepository(db, logger)
	ctx := context.Background()

	tierDate := time.Now().UTC()
	_, err := repo.Create(ctx, models.CreateFMRRequest{Title: "Tiered escalation", Tier2Date: &tierDate})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.CreateFMRRequest{Title: "Untiered report"})
	require.NoError(t, err)

	all, err := repo.List(ctx, models.ListFMRFilters{Limit: 100})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, all.Total, 2)

	tier := models.TierLevel2
	filtered, err := repo.List(ctx, models.ListFMRFilters{Limit: 100, TierLevel: &tier})
	require.NoError(t, err)
	for _, record := range filtered.Fmrs {
		assert.Equal(t, models.TierLevel2, record.TierLevel())
	}
	// The total counter ignores the tier filter.
	assert.Equal(t, all.Total, filtered.Total)
}
