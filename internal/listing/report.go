package listing

import (
	"context"
	"fmt"

	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/export"
)

// Format selects the report output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// Scope selects which rows a report covers.
type Scope string

const (
	// ScopeCurrent exports the rows already loaded for the current view.
	ScopeCurrent Scope = "current"
	// ScopeAll invokes the fetch-all callback for the complete result set,
	// irrespective of current pagination.
	ScopeAll Scope = "all"
)

// FetchAllFunc retrieves the complete result set for ScopeAll exports.
// Its error propagates to the caller unchanged; the report builder adds
// no retry.
type FetchAllFunc func(ctx context.Context) ([]map[string]interface{}, error)

// ParseFormat validates a format string.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatCSV, FormatJSON, FormatPDF:
		return Format(raw), nil
	}
	return "", fmt.Errorf("unsupported report format %q", raw)
}

// ParseScope validates a scope string, defaulting to the current view.
func ParseScope(raw string) (Scope, error) {
	switch Scope(raw) {
	case "":
		return ScopeCurrent, nil
	case ScopeCurrent, ScopeAll:
		return Scope(raw), nil
	}
	return "", fmt.Errorf("unsupported report scope %q", raw)
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

// Report generates downloadable exports over a row collection.
type Report struct {
	Title    string
	Rows     []map[string]interface{}
	FetchAll FetchAllFunc
	// MaxRows caps ScopeAll exports; exceeding it fails rather than
	// truncating silently. Zero means no ceiling.
	MaxRows int

	csv  *export.CSVExporter
	json *export.JSONExporter
	pdf  *export.PDFExporter
}

// NewReport builds a report over the currently loaded rows.
func NewReport(title string, rows []map[string]interface{}, fetchAll FetchAllFunc, maxRows int) *Report {
	return &Report{
		Title:    title,
		Rows:     rows,
		FetchAll: fetchAll,
		MaxRows:  maxRows,
		csv:      export.NewCSVExporter(),
		json:     export.NewJSONExporter(),
		pdf:      export.NewPDFExporter(),
	}
}

// Generate renders the report for the requested scope and format.
func (r *Report) Generate(ctx context.Context, scope Scope, format Format) ([]byte, error) {
	rows := r.Rows
	if scope == ScopeAll {
		if r.FetchAll == nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "full export is not available for this view")
		}
		fetched, err := r.FetchAll(ctx)
		if err != nil {
			return nil, err
		}
		rows = fetched
	}
	if r.MaxRows > 0 && len(rows) > r.MaxRows {
		return nil, appErrors.Clone(appErrors.ErrExportTooLarge,
			fmt.Sprintf("export of %d rows exceeds the ceiling of %d", len(rows), r.MaxRows))
	}

	switch format {
	case FormatJSON:
		return r.json.Render(rows)
	case FormatPDF:
		return r.pdf.Render(datasetFor(rows), r.Title)
	default:
		return r.csv.Render(datasetFor(rows))
	}
}

// datasetFor flattens rows, substituting the "No results" placeholder for
// an empty collection so tabular output never has an empty body.
func datasetFor(rows []map[string]interface{}) export.Dataset {
	if len(rows) == 0 {
		return export.Dataset{
			Headers: []string{"results"},
			Rows:    []map[string]string{{"results": "No results."}},
		}
	}
	return export.FromRecords(rows)
}
