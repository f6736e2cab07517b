package config

import (
	"fmt"
	"strings"

	model "clubdesk/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var enumQueries = []string{
	`CREATE TYPE clubdesk.event_type AS ENUM ('SINGLE', 'DOUBLE', 'TEAM')`,
	`CREATE TYPE clubdesk.booking_status AS ENUM ('PENDING', 'CONFIRMED', 'CANCELLED')`,
}

func InitDB() (*gorm.DB, error) {
	cfg := Env()
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DatabaseHost, cfg.PostgresUser, cfg.PostgresPassword, cfg.DatabaseName, cfg.DatabasePort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "clubdesk.",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS clubdesk`)
	if x.Error != nil {
		return nil, x.Error
	}
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return nil, x.Error
		}
	}

	err = db.AutoMigrate(
		&model.Member{},
		&model.Staff{},
		&model.Activity{},
		&model.Batch{},
		&model.Hall{},
		&model.Event{},
		&model.Category{},
		&model.Booking{},
	)

	if err != nil {
		return nil, err
	}
	return db, nil
}
