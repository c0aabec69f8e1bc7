package statement_builder

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
)

// BuildUpdate constructs a parameterized UPDATE statement. Columns are
// emitted in sorted order so the generated SQL is deterministic, and every
// set value binds as a typed query parameter rather than being interpolated.
//
// The WHERE clause is concatenated verbatim and unescaped. Keeping user text
// out of it is the caller's responsibility.
//
// Example:
//
//	stmt, err := BuildUpdate(table, map[string]any{"name": "Ana", "age": 30}, "id = 7")
//	// SQL: UPDATE `my-project.my_dataset.users` SET `age` = @p_set_val_0, `name` = @p_set_val_1 WHERE id = 7
//	// Parameters: p_set_val_0 = int64(30), p_set_val_1 = "Ana"
func BuildUpdate(table TableReference, setValues map[string]any, whereClause string) (*Statement, error) {
	if len(setValues) == 0 {
		return nil, errors.New("set_values cannot be empty")
	}
	if strings.TrimSpace(whereClause) == "" {
		return nil, errors.New("where_clause cannot be empty")
	}

	columns := make([]string, 0, len(setValues))
	for column := range setValues {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, 0, len(columns))
	parameters := make([]bigquery.QueryParameter, 0, len(columns))
	for i, column := range columns {
		value, err := scalarValue(column, setValues[column])
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("p_set_val_%d", i)
		assignments = append(assignments, fmt.Sprintf("`%s` = @%s", column, name))
		parameters = append(parameters, bigquery.QueryParameter{Name: name, Value: value})
	}

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		table.FullyQualifiedName(),
		strings.Join(assignments, ", "),
		whereClause)

	return &Statement{SQL: sql, Parameters: parameters}, nil
}

// BuildDelete constructs a DELETE statement. The WHERE clause is concatenated
// verbatim, same responsibility boundary as BuildUpdate; an empty clause is
// rejected so a missing condition can never wipe a table.
//
// Example:
//
//	stmt, err := BuildDelete(table, "created_at < '2020-01-01'")
//	// SQL: DELETE FROM `my-project.my_dataset.users` WHERE created_at < '2020-01-01'
func BuildDelete(table TableReference, whereClause string) (*Statement, error) {
	if strings.TrimSpace(whereClause) == "" {
		return nil, errors.New("where_clause cannot be empty")
	}

	sql := fmt.Sprintf("DELETE FROM %s WHERE %s", table.FullyQualifiedName(), whereClause)
	return &Statement{SQL: sql}, nil
}

// scalarValue maps a set value onto the Go type the query parameter binder
// resolves to the intended warehouse scalar type. Integer kinds widen to
// int64 (INT64), floating kinds to float64 (FLOAT64); a json.Number binds as
// INT64 when integral and FLOAT64 otherwise.
func scalarValue(column string, value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case bool:
		return v, nil
	case time.Time:
		return v, nil
	case civil.Date:
		return v, nil
	case civil.Time:
		return v, nil
	case civil.DateTime:
		return v, nil
	case *big.Rat:
		if v == nil {
			return nil, &UnsupportedTypeError{Column: column, Value: value}
		}
		return v, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		if f, err := v.Float64(); err == nil {
			return f, nil
		}
		return nil, &UnsupportedTypeError{Column: column, Value: value}
	default:
		return nil, &UnsupportedTypeError{Column: column, Value: value}
	}
}
