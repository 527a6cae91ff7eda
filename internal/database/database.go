package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

//go:embed migrations/*.sql
var migrations embed.FS

// InitDB opens the database and migrates the schema to the latest version.
// The returned teardown closes the handle; callers defer it.
func InitDB(dbPath string, primaryUrl string, authToken string) (*sql.DB, func(), error) {
	var dsn string
	if primaryUrl == "" {
		log.Info("Initializing local-only SQLite database", "path", dbPath)
		dsn = "file:" + dbPath
	} else {
		log.Info("Initializing Turso database", "url", primaryUrl)
		dsn = primaryUrl + "?authToken=" + authToken
	}

	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if primaryUrl == "" {
		// SQLite has a single writer, and an in-memory database lives only as
		// long as its connection.
		db.SetMaxOpenConns(1)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	log.Info("Database initialized successfully")
	return db, teardown, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}
