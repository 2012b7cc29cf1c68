// Package query builds the predicate trees and page windows the
// repositories hand to the database. Predicates are plain values:
// building one never touches the store, and the same input always
// compiles to the same condition.
package query

import "strings"

type predicateOp int

const (
	opEquals predicateOp = iota + 1
	opContains
	opAnd
	opOr
)

// Predicate is a boolean condition tree over row columns. The zero
// value is the identity predicate and matches every row.
type Predicate struct {
	op     predicateOp
	column string
	value  any
	kids   []Predicate
}

// Equals matches rows whose column equals value exactly.
func Equals(column string, value any) Predicate {
	return Predicate{op: opEquals, column: column, value: value}
}

// Contains matches rows whose column contains substr, case-insensitively.
func Contains(column, substr string) Predicate {
	return Predicate{op: opContains, column: column, value: substr}
}

// And combines predicates conjunctively. Identity children are dropped;
// a single surviving child is returned as-is.
func And(preds ...Predicate) Predicate {
	return combine(opAnd, preds)
}

// Or combines predicates disjunctively, with the same flattening as And.
func Or(preds ...Predicate) Predicate {
	return combine(opOr, preds)
}

func combine(op predicateOp, preds []Predicate) Predicate {
	kids := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p.IsIdentity() {
			continue
		}
		kids = append(kids, p)
	}
	switch len(kids) {
	case 0:
		return Predicate{}
	case 1:
		return kids[0]
	}
	return Predicate{op: op, kids: kids}
}

// IsIdentity reports whether the predicate matches every row.
func (p Predicate) IsIdentity() bool {
	return p.op == 0
}

// Build compiles the predicate to a parameterized SQL condition and its
// argument list. The identity predicate compiles to an empty condition.
func (p Predicate) Build() (string, []any) {
	switch p.op {
	case 0:
		return "", nil
	case opEquals:
		return p.column + " = ?", []any{p.value}
	case opContains:
		return p.column + " ILIKE ?", []any{"%" + p.value.(string) + "%"}
	}

	sep := " AND "
	if p.op == opOr {
		sep = " OR "
	}
	parts := make([]string, 0, len(p.kids))
	var args []any
	for _, kid := range p.kids {
		cond, kidArgs := kid.Build()
		if len(kid.kids) > 0 {
			cond = "(" + cond + ")"
		}
		parts = append(parts, cond)
		args = append(args, kidArgs...)
	}
	return strings.Join(parts, sep), args
}
