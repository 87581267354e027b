// The initialization package contains functions that set up required dependencies such as the SQLite database.
package initialization

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"

	"github.com/iamanderson-dev/thoughts-app/internal/config"
)

// OpenDB opens the application database with foreign keys enabled.
func OpenDB(connString string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(connString, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", connString+sep+"_fk=true")
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
	}
	return db, err
}

// SetupDB applies all remaining migrations to the given database.
func SetupDB(db *sql.DB, folder, dbname string) error {
	log.Info().Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error().Err(err).Msg("failed to run migrations")
		return err
	}
	return nil
}

// InitQueue opens the task queue database and installs the backlite schema.
func InitQueue(cfg *config.Configuration) (*backlite.Client, error) {
	db, err := sql.Open("sqlite3", cfg.QueueDbUrl)
	if err != nil {
		return nil, err
	}

	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              db,
		NumWorkers:      2,
		ReleaseAfter:    10 * time.Minute,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		return nil, err
	}

	if err = client.Install(); err != nil {
		return nil, err
	}
	return client, nil
}
