// Package search builds type-aware free-text filters that compile to
// parameterized SQL. A predicate is an OR-combination of per-field substring
// comparisons, one comparison rule per field kind, so one query string can
// match against text, numeric and enumerated columns with uniform semantics.
package search

import "strings"

// FieldKind selects the comparison rule for one searchable column.
type FieldKind int

const (
	// Text matches the query case-insensitively as a substring of the
	// column's text. Dates stored in text-comparable form use this kind too.
	Text FieldKind = iota

	// Numeric matches the query as a substring of the decimal-string
	// rendering of a numeric column. This is substring match, not numeric
	// equality: querying "34" matches an amount of 12345.
	Numeric

	// Enum matches the query case-insensitively as a substring of an
	// enumerated label.
	Enum
)

// Field is one searchable column.
type Field struct {
	Column string
	Kind   FieldKind
}

// Predicate is a parameterized WHERE-clause fragment. The zero value matches
// every row.
type Predicate struct {
	clause string
	args   []any
}

// ContainsAny builds a predicate matching rows where at least one field
// contains query as a substring under that field's comparison rule.
//
// An empty query matches every row: substring match against "" is
// universally true, so the predicate degenerates to "no filter" rather than
// "no match". Callers rely on this; it is not a bug.
func ContainsAny(query string, fields ...Field) Predicate {
	if len(fields) == 0 {
		return Predicate{}
	}

	pattern := "%" + strings.ToLower(query) + "%"
	parts := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		switch f.Kind {
		case Numeric:
			parts[i] = "CAST(" + f.Column + " AS TEXT) LIKE ?"
		default:
			parts[i] = "LOWER(" + f.Column + ") LIKE ?"
		}
		args[i] = pattern
	}

	return Predicate{
		clause: "(" + strings.Join(parts, " OR ") + ")",
		args:   args,
	}
}

// AmountEquals builds a constant predicate matching rows whose column equals
// the given minor-unit amount exactly. The diagnostic probe endpoint is this
// degenerate case of the free-text search.
func AmountEquals(column string, minor int64) Predicate {
	return Predicate{clause: column + " = ?", args: []any{minor}}
}

// SQL returns the clause and its placeholder arguments. Column names come
// from code constants; user input only ever travels through the arguments,
// never the clause.
func (p Predicate) SQL() (string, []any) {
	if p.clause == "" {
		return "1=1", nil
	}
	return p.clause, p.args
}
