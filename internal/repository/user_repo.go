package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail looks a user up by their unique email. A miss returns
// (nil, nil), not an error: absence is a normal outcome for credential
// checks, unlike the invoice lookup where a missing id is ErrNotFound.
// The record includes the password hash; redaction is the caller's job.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Str("entity", "user").Str("op", "by_email").Msg("query failed")
		return nil, ErrUserFetch
	}
	return &user, nil
}
