package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/seed"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on system env")
	}

	db, err := config.Open()
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
		&models.User{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	if err := seed.Run(db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("database seeded")
}
