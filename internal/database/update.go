package database

import (
	"fmt"
	"strings"
)

// Field is one (column, value) pair of a sparse update. Column names are
// compile-time constants in the repositories; only values are bound.
type Field struct {
	Column string
	Value  any
}

// SetClause turns the supplied fields into a parameterized SET clause,
// numbering placeholders from 1 and preserving input order. The returned
// args slice lines up with the placeholders; the caller appends its WHERE
// arguments after them.
func SetClause(fields []Field) (string, []any) {
	if len(fields) == 0 {
		return "", nil
	}

	var b strings.Builder
	args := make([]any, 0, len(fields))
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s = $%d", f.Column, i+1)
		args = append(args, f.Value)
	}
	return b.String(), args
}
