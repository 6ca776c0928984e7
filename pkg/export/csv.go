package export

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/Gobusters/ectoerror/httperror"

	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
)

// FMRExportRow is the lifecycle subset of an FMR record that goes into a CSV
// export. The db tags let a query select straight into it.
type FMRExportRow struct {
	ID             int64      `db:"id"`
	Title          string     `db:"title"`
	Description    *string    `db:"description"`
	Status         string     `db:"status"`
	CreationDate   time.Time  `db:"creation_date"`
	ResolutionDate *time.Time `db:"resolution_date"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

var csvHeaders = []string{"ID", "Title", "Description", "Status", "Creation Date", "Resolution Date", "Created At", "Updated At"}

// BuildFMRExport renders rows as a CSV document. Timestamps are RFC 3339 and
// a missing resolution date is an empty cell; quoting follows RFC 4180 so
// titles with commas or quotes survive a round trip through a spreadsheet.
func BuildFMRExport(rows []FMRExportRow, now time.Time) (*models.ExportResponse, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to export FMR data")
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Title,
			stringValue(row.Description),
			row.Status,
			row.CreationDate.UTC().Format(time.RFC3339),
			timeValue(row.ResolutionDate),
			row.CreatedAt.UTC().Format(time.RFC3339),
			row.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to export FMR data")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to export FMR data")
	}

	return &models.ExportResponse{
		Data:        buf.String(),
		Filename:    "fmr_export_" + now.UTC().Format("2006-01-02") + ".csv",
		ContentType: "text/csv",
	}, nil
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func timeValue(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
