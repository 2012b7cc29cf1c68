package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// Series returns the monthly revenue rows in calendar order. Month
// labels are "Jan".."Dec", so ordering parses them rather than sorting
// the strings.
func (r *RevenueRepository) Series(ctx context.Context) ([]models.Revenue, error) {
	var series []models.Revenue
	err := r.db.WithContext(ctx).
		Order("to_date(month, 'Mon') ASC").
		Find(&series).Error
	if err != nil {
		log.Error().Err(err).Str("entity", "revenue").Str("op", "series").Msg("query failed")
		return nil, ErrRevenueFetch
	}
	return series, nil
}
