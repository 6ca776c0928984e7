package report

import (
	"context"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/wfullmer-filius/fmr-tracking-system/pkg/database"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/export"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/metrics"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
	"github.com/wfullmer-filius/fmr-tracking-system/pkg/tracing"
)

// DateRange is the creation_date window a report covers. End is nil for the
// default windows, which are open-ended toward the present.
type DateRange struct {
	Start time.Time
	End   *time.Time
}

// ResolveDateRange picks the report window. An explicit start AND end pair
// wins over the report type; with either bound missing the type's default
// window applies and the explicit bounds are ignored.
func ResolveDateRange(reportType models.ReportType, startDate, endDate *time.Time, now time.Time) DateRange {
	if startDate != nil && endDate != nil {
		end := *endDate
		return DateRange{Start: *startDate, End: &end}
	}

	var start time.Time
	switch reportType {
	case models.ReportTypeDaily:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case models.ReportTypeWeekly:
		start = now.Add(-7 * 24 * time.Hour)
	case models.ReportTypeMonthly:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case models.ReportTypeAnnual:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		start = now.Add(-30 * 24 * time.Hour)
	}
	return DateRange{Start: start}
}

// Repository runs the report aggregation queries
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new report repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func rangeConditions(sb *sqlbuilder.SelectBuilder, rng DateRange) []string {
	conds := []string{sb.GreaterEqualThan("creation_date", rng.Start)}
	if rng.End != nil {
		conds = append(conds, sb.LessEqualThan("creation_date", *rng.End))
	}
	return conds
}

// Generate builds the summary, per-day chart and top issue counts for the
// resolved window.
func (r *Repository) Generate(ctx context.Context, reportType models.ReportType, startDate, endDate *time.Time) (*models.ReportData, error) {
	ctx, span := tracing.StartSpan(ctx, "report.Repository.Generate")
	defer span.End()

	started := time.Now()
	defer func() {
		metrics.ReportGenerationDuration.WithLabelValues(string(reportType)).Observe(time.Since(started).Seconds())
	}()

	rng := ResolveDateRange(reportType, startDate, endDate, time.Now().UTC())

	summary, err := r.summary(ctx, rng)
	if err != nil {
		return nil, err
	}
	metrics.FMRRecordsByStatus.WithLabelValues("unresolved").Set(float64(summary.Unresolved))
	metrics.FMRRecordsByStatus.WithLabelValues("in_progress").Set(float64(summary.InProgress))
	metrics.FMRRecordsByStatus.WithLabelValues("resolved").Set(float64(summary.Resolved))
	metrics.FMRRecordsByStatus.WithLabelValues("archived").Set(float64(summary.Archived))
	chartData, err := r.chartData(ctx, rng)
	if err != nil {
		return nil, err
	}
	topIssues, err := r.topIssues(ctx, rng)
	if err != nil {
		return nil, err
	}

	return &models.ReportData{
		Summary:   *summary,
		ChartData: chartData,
		TopIssues: topIssues,
	}, nil
}

func (r *Repository) summary(ctx context.Context, rng DateRange) (*models.ReportSummary, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(
		"COUNT(*) AS total",
		"COUNT(CASE WHEN status = 'Unresolved' THEN 1 END) AS unresolved",
		"COUNT(CASE WHEN status = 'In-Progress' THEN 1 END) AS in_progress",
		"COUNT(CASE WHEN status = 'Resolved' THEN 1 END) AS resolved",
		"COUNT(CASE WHEN status = 'Archived' THEN 1 END) AS archived",
	)
	sb.From("fmr_requests")
	sb.Where(rangeConditions(sb, rng)...)

	query, args := sb.Build()
	var summary models.ReportSummary
	if err := r.db.GetContext(ctx, &summary, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to build report summary")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to generate report")
	}
	return &summary, nil
}

func (r *Repository) chartData(ctx context.Context, rng DateRange) ([]models.ChartPoint, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(
		"TO_CHAR(creation_date::date, 'YYYY-MM-DD') AS date",
		"COUNT(CASE WHEN status = 'Unresolved' THEN 1 END) AS unresolved",
		"COUNT(CASE WHEN status = 'In-Progress' THEN 1 END) AS in_progress",
		"COUNT(CASE WHEN status = 'Resolved' THEN 1 END) AS resolved",
		"COUNT(CASE WHEN status = 'Archived' THEN 1 END) AS archived",
	)
	sb.From("fmr_requests")
	sb.Where(rangeConditions(sb, rng)...)
	sb.GroupBy("creation_date::date")
	sb.OrderBy("date")

	query, args := sb.Build()
	points := []models.ChartPoint{}
	if err := r.db.SelectContext(ctx, &points, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to build report chart data")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to generate report")
	}
	return points, nil
}

func (r *Repository) topIssues(ctx context.Context, rng DateRange) ([]models.TopIssue, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("title", "COUNT(*) AS count")
	sb.From("fmr_requests")
	sb.Where(rangeConditions(sb, rng)...)
	sb.GroupBy("title")
	// Title breaks count ties so the top-10 cutoff is stable across runs.
	sb.OrderBy("count DESC", "title ASC")
	sb.Limit(10)

	query, args := sb.Build()
	issues := []models.TopIssue{}
	if err := r.db.SelectContext(ctx, &issues, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to build report top issues")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to generate report")
	}
	return issues, nil
}

// ExportRows fetches the rows for a CSV export, newest first. The date filter
// applies only when both bounds are given; a lone bound exports everything.
func (r *Repository) ExportRows(ctx context.Context, startDate, endDate *time.Time) ([]export.FMRExportRow, error) {
	ctx, span := tracing.StartSpan(ctx, "report.Repository.ExportRows")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id", "title", "description", "status", "creation_date", "resolution_date", "created_at", "updated_at")
	sb.From("fmr_requests")
	if startDate != nil && endDate != nil {
		sb.Where(
			sb.GreaterEqualThan("creation_date", *startDate),
			sb.LessEqualThan("creation_date", *endDate),
		)
	}
	sb.OrderBy("creation_date DESC")

	query, args := sb.Build()
	rows := []export.FMRExportRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to fetch export rows")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to export FMR data")
	}
	return rows, nil
}
