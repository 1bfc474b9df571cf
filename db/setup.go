package db

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/saswattulo/Note-App-VueJs/internal/config"
	"github.com/saswattulo/Note-App-VueJs/internal/models"
)

// EnsureDatabase creates the application database if it does not exist,
// connecting to the maintenance database first.
func EnsureDatabase(cfg config.DatabaseConfig) error {
	conn, err := sql.Open("postgres", cfg.MaintenanceDSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	var exists bool

	err = conn.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_catalog.pg_database WHERE datname = $1)", cfg.Name).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	if _, err := conn.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(cfg.Name))); err != nil {
		return err
	}

	log.Printf("Database %q created", cfg.Name)

	return nil
}

// Connect opens the application database. TranslateError lets the store map
// constraint violations onto its error taxonomy.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates any missing tables, indexes and foreign key constraints.
func Migrate(gdb *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Note{},
		&models.Tag{},
		&models.Upload{},
	}

	migrator := gdb.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gdb.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
