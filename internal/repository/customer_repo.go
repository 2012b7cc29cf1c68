package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/query"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CustomerField is the minimal projection used by select dropdowns.
type CustomerField struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomerQuery filters the customer table by name or email substring,
// case-insensitively. Empty fields contribute no clause.
type CustomerQuery struct {
	NameLike  string
	EmailLike string
}

func (q CustomerQuery) predicate() query.Predicate {
	var clauses []query.Predicate
	if q.NameLike != "" {
		clauses = append(clauses, query.Contains("customers.name", q.NameLike))
	}
	if q.EmailLike != "" {
		clauses = append(clauses, query.Contains("customers.email", q.EmailLike))
	}
	return query.Or(clauses...)
}

// CustomerSummary is one customer-table row: the customer plus
// aggregates over their invoices, sums formatted for display.
type CustomerSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

// All returns every customer as id and name, ordered by name.
func (r *CustomerRepository) All(ctx context.Context) ([]CustomerField, error) {
	var customers []CustomerField
	err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&customers).Error
	if err != nil {
		log.Error().Err(err).Str("entity", "customer").Str("op", "all").Msg("query failed")
		return nil, ErrCustomerFetch
	}
	return customers, nil
}

// Filtered returns the customer table: matching customers annotated
// with invoice count and pending/paid totals via a grouped aggregate
// over their invoices. Customers without invoices aggregate to zero.
func (r *CustomerRepository) Filtered(ctx context.Context, q CustomerQuery) ([]CustomerSummary, error) {
	tx := r.db.WithContext(ctx).Model(&models.Customer{}).
		Select(`customers.id, customers.name, customers.email, customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid`).
		Joins("LEFT JOIN invoices ON invoices.customer_id = customers.id").
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC")

	if cond, args := q.predicate().Build(); cond != "" {
		tx = tx.Where(cond, args...)
	}

	var rows []struct {
		ID            uuid.UUID
		Name          string
		Email         string
		ImageURL      string
		TotalInvoices int64
		TotalPending  int64
		TotalPaid     int64
	}
	if err := tx.Scan(&rows).Error; err != nil {
		log.Error().Err(err).Str("entity", "customer").Str("op", "filtered").Msg("query failed")
		return nil, ErrCustomerFetch
	}

	summaries := make([]CustomerSummary, len(rows))
	for i, row := range rows {
		summaries[i] = CustomerSummary{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  format.Currency(row.TotalPending),
			TotalPaid:     format.Currency(row.TotalPaid),
		}
	}
	return summaries, nil
}
