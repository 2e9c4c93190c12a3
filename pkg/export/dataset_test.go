package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecordsStableHeaderOrder(t *testing.T) {
	data := FromRecords([]map[string]interface{}{
		{"name": "Asha", "batch": float64(2021), "verified": true},
		{"name": "Ravi", "batch": float64(2019), "verified": false},
	})

	assert.Equal(t, []string{"batch", "name", "verified"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "2021", data.Rows[0]["batch"])
	assert.Equal(t, "true", data.Rows[0]["verified"])
}

func TestFromRecordsLaterKeysIgnored(t *testing.T) {
	data := FromRecords([]map[string]interface{}{
		{"name": "Asha"},
		{"name": "Ravi", "extra": "dropped"},
	})

	assert.Equal(t, []string{"name"}, data.Headers)
	_, ok := data.Rows[1]["extra"]
	assert.False(t, ok)
}

func TestStringifyCellEscapesDelimiters(t *testing.T) {
	assert.Equal(t, `"line1\nline2"`, stringifyCell("line1\nline2"))
	assert.Equal(t, `"a,b"`, stringifyCell("a,b"))
	assert.Equal(t, "plain", stringifyCell("plain"))
	assert.Equal(t, "", stringifyCell(nil))
	assert.Equal(t, "3", stringifyCell(float64(3)))
	assert.Equal(t, "3.5", stringifyCell(3.5))
	assert.Equal(t, `["a","b"]`, stringifyCell([]string{"a", "b"}))
}

func TestFromRecordsEmpty(t *testing.T) {
	data := FromRecords(nil)
	assert.Empty(t, data.Headers)
	assert.Empty(t, data.Rows)
}
