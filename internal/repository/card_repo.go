package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// CardSummary holds the four dashboard card values.
type CardSummary struct {
	CustomerCount int64  `json:"customer_count"`
	InvoiceCount  int64  `json:"invoice_count"`
	TotalPaid     string `json:"total_paid"`
	TotalPending  string `json:"total_pending"`
}

// Summary computes the card values. The four aggregates touch disjoint
// data, so they are issued concurrently and awaited jointly.
func (r *CardRepository) Summary(ctx context.Context) (CardSummary, error) {
	var summary CardSummary

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(ctx).Model(&models.Customer{}).Count(&summary.CustomerCount).Error
	})
	g.Go(func() error {
		return r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&summary.InvoiceCount).Error
	})
	g.Go(func() error {
		total, err := r.sumByStatus(ctx, models.StatusPaid)
		summary.TotalPaid = total
		return err
	})
	g.Go(func() error {
		total, err := r.sumByStatus(ctx, models.StatusPending)
		summary.TotalPending = total
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("entity", "card").Str("op", "summary").Msg("query failed")
		return CardSummary{}, ErrCardFetch
	}
	return summary, nil
}

func (r *CardRepository) sumByStatus(ctx context.Context, status models.InvoiceStatus) (string, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", status).
		Scan(&total).Error
	if err != nil {
		return "", err
	}
	return format.Currency(total), nil
}
