// Package seed populates the database with the placeholder dataset.
// Users, customers, and revenue are upserted on their unique keys, so
// re-running is harmless for those; invoices are plain inserts and
// duplicate on re-run.
package seed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"invoice-dashboard-backend/internal/models"
)

func Run(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedCustomers(db); err != nil {
		return err
	}
	if err := seedRevenue(db); err != nil {
		return err
	}
	return seedInvoices(db)
}

func seedUsers(db *gorm.DB) error {
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		user := models.User{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Password: string(hash),
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	log.Info().Int("count", len(users)).Msg("seeded users")
	return nil
}

func seedCustomers(db *gorm.DB) error {
	for i := range customers {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&customers[i]).Error; err != nil {
			return fmt.Errorf("seed customer %s: %w", customers[i].Name, err)
		}
	}
	log.Info().Int("count", len(customers)).Msg("seeded customers")
	return nil
}

func seedRevenue(db *gorm.DB) error {
	for i := range revenue {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&revenue[i]).Error; err != nil {
			return fmt.Errorf("seed revenue %s: %w", revenue[i].Month, err)
		}
	}
	log.Info().Int("count", len(revenue)).Msg("seeded revenue")
	return nil
}

func seedInvoices(db *gorm.DB) error {
	for _, inv := range invoices {
		invoice := models.Invoice{
			ID:         uuid.New(),
			CustomerID: inv.CustomerID,
			Amount:     inv.Amount,
			Status:     inv.Status,
			Date:       inv.Date,
		}
		if err := db.Create(&invoice).Error; err != nil {
			return fmt.Errorf("seed invoice for customer %s: %w", inv.CustomerID, err)
		}
	}
	log.Info().Int("count", len(invoices)).Msg("seeded invoices")
	return nil
}
