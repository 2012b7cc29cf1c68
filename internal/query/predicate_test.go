package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateIdentity(t *testing.T) {
	var p Predicate
	assert.True(t, p.IsIdentity())

	cond, args := p.Build()
	assert.Empty(t, cond)
	assert.Nil(t, args)

	// Combinators over nothing stay identity.
	assert.True(t, And().IsIdentity())
	assert.True(t, Or(Predicate{}, Predicate{}).IsIdentity())
}

func TestPredicateLeaves(t *testing.T) {
	cond, args := Equals("invoices.status", "paid").Build()
	assert.Equal(t, "invoices.status = ?", cond)
	assert.Equal(t, []any{"paid"}, args)

	cond, args = Contains("customers.email", "x").Build()
	assert.Equal(t, "customers.email ILIKE ?", cond)
	assert.Equal(t, []any{"%x%"}, args)
}

func TestPredicateCombinators(t *testing.T) {
	p := And(
		Equals("invoices.status", "pending"),
		Contains("customers.email", "x"),
	)
	cond, args := p.Build()
	assert.Equal(t, "invoices.status = ? AND customers.email ILIKE ?", cond)
	assert.Equal(t, []any{"pending", "%x%"}, args)

	p = Or(
		Contains("customers.name", "lee"),
		Contains("customers.email", "lee"),
	)
	cond, args = p.Build()
	assert.Equal(t, "customers.name ILIKE ? OR customers.email ILIKE ?", cond)
	assert.Equal(t, []any{"%lee%", "%lee%"}, args)
}

func TestPredicateSingleChildCollapses(t *testing.T) {
	p := And(Predicate{}, Equals("invoices.amount", int64(666)))
	cond, args := p.Build()
	assert.Equal(t, "invoices.amount = ?", cond)
	assert.Equal(t, []any{int64(666)}, args)
}

func TestPredicateNestedGrouping(t *testing.T) {
	p := And(
		Or(
			Contains("customers.name", "a"),
			Contains("customers.email", "a"),
		),
		Equals("invoices.status", "paid"),
	)
	cond, _ := p.Build()
	assert.Equal(t, "(customers.name ILIKE ? OR customers.email ILIKE ?) AND invoices.status = ?", cond)
}

func TestPredicateBuildDeterministic(t *testing.T) {
	p := And(
		Equals("invoices.amount", int64(100)),
		Contains("customers.name", "lee"),
	)
	cond1, args1 := p.Build()
	cond2, args2 := p.Build()
	assert.Equal(t, cond1, cond2)
	assert.Equal(t, args1, args2)
}
