package query

import (
	"fmt"
	"time"

	"invoice-dashboard-backend/internal/models"
)

// Columns the invoice predicates refer to. Listing queries join the
// customers table, so customer columns are qualified the same way there
// and in the count query.
const (
	ColDate          = "invoices.date"
	ColStatus        = "invoices.status"
	ColAmount        = "invoices.amount"
	ColCustomerName  = "customers.name"
	ColCustomerEmail = "customers.email"
)

// InvoiceFilter is a sparse filter over invoices. Every field is
// independently optional; a nil field contributes no clause.
type InvoiceFilter struct {
	Date          *time.Time
	Status        *models.InvoiceStatus
	Amount        *int64
	CustomerName  *string
	CustomerEmail *string
}

// Predicate composes the supplied fields conjunctively: a row matches
// only if it satisfies every present filter. Zero supplied fields yield
// the identity predicate. An unknown status is rejected.
func (f InvoiceFilter) Predicate() (Predicate, error) {
	var clauses []Predicate
	if f.Date != nil {
		clauses = append(clauses, Equals(ColDate, f.Date.Format("2006-01-02")))
	}
	if f.Status != nil {
		if !f.Status.Valid() {
			return Predicate{}, fmt.Errorf("%w: unknown invoice status %q", ErrInvalidInput, *f.Status)
		}
		clauses = append(clauses, Equals(ColStatus, *f.Status))
	}
	if f.Amount != nil {
		clauses = append(clauses, Equals(ColAmount, *f.Amount))
	}
	if f.CustomerName != nil {
		clauses = append(clauses, Contains(ColCustomerName, *f.CustomerName))
	}
	if f.CustomerEmail != nil {
		clauses = append(clauses, Contains(ColCustomerEmail, *f.CustomerEmail))
	}
	return And(clauses...), nil
}

// SearchPredicate composes a search-box term disjunctively: a row
// matches if the customer name or email contains the term, or if the
// term names an invoice status exactly. An empty term matches all rows.
func SearchPredicate(term string) Predicate {
	if term == "" {
		return Predicate{}
	}
	clauses := []Predicate{
		Contains(ColCustomerName, term),
		Contains(ColCustomerEmail, term),
	}
	if status := models.InvoiceStatus(term); status.Valid() {
		clauses = append(clauses, Equals(ColStatus, status))
	}
	return Or(clauses...)
}
