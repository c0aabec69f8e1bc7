package statement_builder

import (
	"fmt"

	"cloud.google.com/go/bigquery"
)

// TableReference identifies a table by its full project/dataset/table path.
type TableReference struct {
	ProjectID string
	DatasetID string
	TableID   string
}

// FullyQualifiedName returns the backtick-quoted form GoogleSQL expects.
//
// Example: `my-project.my_dataset.users`
func (t TableReference) FullyQualifiedName() string {
	return fmt.Sprintf("`%s.%s.%s`", t.ProjectID, t.DatasetID, t.TableID)
}

// Statement is a parameterized DML statement ready for execution.
type Statement struct {
	SQL        string
	Parameters []bigquery.QueryParameter
}

// UnsupportedTypeError reports a set value whose Go type has no scalar
// parameter mapping. It is returned before any SQL is constructed.
type UnsupportedTypeError struct {
	Column string
	Value  any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %T for column %q", e.Value, e.Column)
}
