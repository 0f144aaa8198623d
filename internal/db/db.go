package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/careerhive/jobmatch/internal/config"
)

// Pool limits sized for a single-instance service; every handler touches the
// database, so idle connections are worth keeping around.
const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxIdleTime = 5 * time.Minute
)

func NewPostgres(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func MustLoad(cfg *config.Config) *sql.DB {
	db, err := NewPostgres(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}
	return db
}
