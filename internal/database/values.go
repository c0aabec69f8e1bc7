package database

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
)

// RowsToJSON serializes rows into a JSON array, rewriting the driver's
// temporal and decimal types into their canonical string forms first.
func (s *bigqueryService) RowsToJSON(rows []map[string]bigquery.Value) (string, error) {
	normalized := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		normalized = append(normalized, normalizeRow(row))
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("failed to serialize rows: %w", err)
	}
	return string(data), nil
}

func normalizeRow(row map[string]bigquery.Value) map[string]any {
	out := make(map[string]any, len(row))
	for name, value := range row {
		out[name] = normalizeValue(value)
	}
	return out
}

// normalizeValue rewrites values that have no useful JSON encoding of their
// own. TIMESTAMP becomes RFC 3339, DATE/TIME/DATETIME keep their ISO 8601
// representations and NUMERIC/BIGNUMERIC are rendered as decimal strings.
// Nested records and repeated fields are handled recursively; scalars such as
// string, int64, float64, bool and []byte pass through to encoding/json.
func normalizeValue(value bigquery.Value) any {
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case civil.Date:
		return v.String()
	case civil.Time:
		return v.String()
	case civil.DateTime:
		return v.String()
	case *big.Rat:
		return formatDecimal(v)
	case []bigquery.Value:
		items := make([]any, 0, len(v))
		for _, item := range v {
			items = append(items, normalizeValue(item))
		}
		return items
	case map[string]bigquery.Value:
		return normalizeRow(v)
	default:
		return v
	}
}

// formatDecimal renders a NUMERIC or BIGNUMERIC value with up to 38
// fractional digits and strips trailing zeros, so 12.50 prints as "12.5"
// and whole values print without a decimal point.
func formatDecimal(r *big.Rat) string {
	s := r.FloatString(38)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
