package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/query"
)

const customerJoin = "LEFT JOIN customers ON customers.id = invoices.customer_id"

const invoiceProjection = "invoices.id, invoices.amount, invoices.date, invoices.status, " +
	"customers.name, customers.email, customers.image_url"

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// LatestInvoice is an invoice joined with its customer's display
// fields, amount already formatted for the dashboard.
type LatestInvoice struct {
	ID       uuid.UUID            `json:"id"`
	Amount   string               `json:"amount"`
	Date     time.Time            `json:"date"`
	Status   models.InvoiceStatus `json:"status"`
	Name     string               `json:"name"`
	Email    string               `json:"email"`
	ImageURL string               `json:"image_url"`
}

// InvoiceRow is one row of the invoice table, amount in minor units.
type InvoiceRow struct {
	ID       uuid.UUID            `json:"id"`
	Amount   int64                `json:"amount"`
	Date     time.Time            `json:"date"`
	Status   models.InvoiceStatus `json:"status"`
	Name     string               `json:"name"`
	Email    string               `json:"email"`
	ImageURL string               `json:"image_url"`
}

// InvoiceDetail backs the edit form; amount is in major units.
type InvoiceDetail struct {
	ID         uuid.UUID            `json:"id"`
	CustomerID uuid.UUID            `json:"customer_id"`
	Amount     float64              `json:"amount"`
	Status     models.InvoiceStatus `json:"status"`
}

type invoiceJoinRow struct {
	ID       uuid.UUID
	Amount   int64
	Date     time.Time
	Status   models.InvoiceStatus
	Name     string
	Email    string
	ImageURL string
}

// Latest returns the n most recently dated invoices with their
// customer's display fields. n must be at least 1.
func (r *InvoiceRepository) Latest(ctx context.Context, n int) ([]LatestInvoice, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: latest invoice count %d", query.ErrInvalidInput, n)
	}

	var rows []invoiceJoinRow
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Select(invoiceProjection).
		Joins(customerJoin).
		Order("invoices.date DESC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		log.Error().Err(err).Str("entity", "invoice").Str("op", "latest").Msg("query failed")
		return nil, ErrInvoiceFetch
	}

	latest := make([]LatestInvoice, len(rows))
	for i, row := range rows {
		latest[i] = LatestInvoice{
			ID:       row.ID,
			Amount:   format.Currency(row.Amount),
			Date:     row.Date,
			Status:   row.Status,
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
		}
	}
	return latest, nil
}

// Filtered lists invoices matching every supplied filter field (AND
// composition), newest first. A nil page returns the full result set.
func (r *InvoiceRepository) Filtered(ctx context.Context, filter query.InvoiceFilter, page *query.Page) ([]InvoiceRow, error) {
	pred, err := filter.Predicate()
	if err != nil {
		return nil, err
	}
	return r.list(ctx, pred, page)
}

// Search lists invoices matching the free-text term in any of customer
// name, customer email, or exact status (OR composition), newest first.
func (r *InvoiceRepository) Search(ctx context.Context, term string, page *query.Page) ([]InvoiceRow, error) {
	return r.list(ctx, query.SearchPredicate(term), page)
}

func (r *InvoiceRepository) list(ctx context.Context, pred query.Predicate, page *query.Page) ([]InvoiceRow, error) {
	tx := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Select(invoiceProjection).
		Joins(customerJoin).
		Order("invoices.date DESC")

	if cond, args := pred.Build(); cond != "" {
		tx = tx.Where(cond, args...)
	}
	if page != nil {
		limit, offset, err := page.Window()
		if err != nil {
			return nil, err
		}
		tx = tx.Limit(limit).Offset(offset)
	}

	var rows []invoiceJoinRow
	if err := tx.Scan(&rows).Error; err != nil {
		log.Error().Err(err).Str("entity", "invoice").Str("op", "list").Msg("query failed")
		return nil, ErrInvoiceFetch
	}

	invoices := make([]InvoiceRow, len(rows))
	for i, row := range rows {
		invoices[i] = InvoiceRow(row)
	}
	return invoices, nil
}

// Pages returns the number of table pages the filter spans at the
// default page size. It counts with the exact predicate Filtered uses,
// so listing and paging can never disagree.
func (r *InvoiceRepository) Pages(ctx context.Context, filter query.InvoiceFilter) (int64, error) {
	pred, err := filter.Predicate()
	if err != nil {
		return 0, err
	}

	tx := r.db.WithContext(ctx).Model(&models.Invoice{}).Joins(customerJoin)
	if cond, args := pred.Build(); cond != "" {
		tx = tx.Where(cond, args...)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Error().Err(err).Str("entity", "invoice").Str("op", "pages").Msg("query failed")
		return 0, ErrInvoiceFetch
	}
	return query.PageCount(total, query.DefaultPageSize)
}

// ByID fetches a single invoice, converting the stored minor-unit
// amount to major units. A missing id is ErrNotFound.
func (r *InvoiceRepository) ByID(ctx context.Context, id uuid.UUID) (InvoiceDetail, error) {
	var row struct {
		ID         uuid.UUID
		CustomerID uuid.UUID
		Amount     int64
		Status     models.InvoiceStatus
	}
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Select("id, customer_id, amount, status").
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return InvoiceDetail{}, fmt.Errorf("%w: invoice %s", ErrNotFound, id)
	}
	if err != nil {
		log.Error().Err(err).Str("entity", "invoice").Str("op", "by_id").Msg("query failed")
		return InvoiceDetail{}, ErrInvoiceFetch
	}

	return InvoiceDetail{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Amount:     float64(row.Amount) / 100,
		Status:     row.Status,
	}, nil
}
