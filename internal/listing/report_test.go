package listing

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	for _, raw := range []string{"csv", "json", "pdf"} {
		format, err := ParseFormat(raw)
		require.NoError(t, err)
		assert.Equal(t, Format(raw), format)
	}

	_, err := ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestParseScopeDefaultsToCurrent(t *testing.T) {
	scope, err := ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeCurrent, scope)

	_, err = ParseScope("everything")
	assert.Error(t, err)
}

func TestReportJSONRoundTrip(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "Asha", "batch": float64(2021)},
		{"name": "Ravi", "batch": float64(2019)},
	}
	report := NewReport("alumni", rows, nil, 0)

	body, err := report.Generate(context.Background(), ScopeCurrent, FormatJSON)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, rows, decoded)
}

func TestReportCSVEscapesEmbeddedDelimiters(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": `Rao, "PK"`, "batch": float64(2020)},
	}
	report := NewReport("alumni", rows, nil, 0)

	body, err := report.Generate(context.Background(), ScopeCurrent, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"batch", "name"}, records[0])
	// The cell is JSON-stringified before CSV quoting.
	assert.Equal(t, `"Rao, \"PK\""`, records[1][1])
}

func TestReportEmptyRowsRendersPlaceholder(t *testing.T) {
	report := NewReport("alumni", nil, nil, 0)

	body, err := report.Generate(context.Background(), ScopeCurrent, FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, string(body), "No results.")

	body, err = report.Generate(context.Background(), ScopeCurrent, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestReportScopeAllRequiresFetchAll(t *testing.T) {
	report := NewReport("alumni", nil, nil, 0)

	_, err := report.Generate(context.Background(), ScopeAll, FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportScopeAllUsesFetchedRows(t *testing.T) {
	fetchAll := func(ctx context.Context) ([]map[string]interface{}, error) {
		return []map[string]interface{}{{"name": "full"}}, nil
	}
	report := NewReport("alumni", []map[string]interface{}{{"name": "page"}}, fetchAll, 0)

	body, err := report.Generate(context.Background(), ScopeAll, FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, string(body), "full")
	assert.NotContains(t, string(body), "page")
}

func TestReportFetchAllErrorPropagates(t *testing.T) {
	sentinel := errors.New("backend down")
	fetchAll := func(ctx context.Context) ([]map[string]interface{}, error) {
		return nil, sentinel
	}
	report := NewReport("alumni", nil, fetchAll, 0)

	_, err := report.Generate(context.Background(), ScopeAll, FormatCSV)
	assert.ErrorIs(t, err, sentinel)
}

func TestReportRowCeiling(t *testing.T) {
	rows := make([]map[string]interface{}, 11)
	for i := range rows {
		rows[i] = map[string]interface{}{"i": i}
	}
	fetchAll := func(ctx context.Context) ([]map[string]interface{}, error) {
		return rows, nil
	}
	report := NewReport("alumni", nil, fetchAll, 10)

	_, err := report.Generate(context.Background(), ScopeAll, FormatJSON)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrExportTooLarge.Code, appErrors.FromError(err).Code)
}

func TestReportPDFRenders(t *testing.T) {
	report := NewReport("alumni", []map[string]interface{}{{"name": "Asha"}}, nil, 0)

	body, err := report.Generate(context.Background(), ScopeCurrent, FormatPDF)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}
