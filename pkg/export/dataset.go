package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// FromRecords flattens generic records into a Dataset. The header row is
// derived from the keys of the first record, sorted for a stable column
// order; later records contribute cells only for those columns. Cell values
// that embed CSV delimiters, quotes or newlines are JSON-stringified, as are
// all non-scalar values.
func FromRecords(records []map[string]interface{}) Dataset {
	if len(records) == 0 {
		return Dataset{}
	}

	headers := make([]string, 0, len(records[0]))
	for key := range records[0] {
		headers = append(headers, key)
	}
	sort.Strings(headers)

	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		row := make(map[string]string, len(headers))
		for _, header := range headers {
			row[header] = stringifyCell(record[header])
		}
		rows = append(rows, row)
	}

	return Dataset{Headers: headers, Rows: rows}
}

func stringifyCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		if strings.ContainsAny(v, ",\"\n") {
			encoded, err := json.Marshal(v)
			if err == nil {
				return string(encoded)
			}
		}
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	case float64:
		// JSON numbers decode as float64; render integers without a
		// trailing fraction.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case int, int32, int64:
		return fmt.Sprintf("%d", v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
