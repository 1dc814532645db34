package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/kasuboski/nyaaz/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type SQLite struct {
	db *sql.DB
}

// New creates a new sqlite database given a path to the database file
func New(ctx context.Context, filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", dsn(filePath))
	if err != nil {
		return nil, err
	}

	// a single connection keeps in-memory databases intact and serializes writes
	db.SetMaxOpenConns(1)

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", filePath, err)
	}

	return &SQLite{
		db: db,
	}, nil
}

// RunMigrations brings the database schema up to date
func (s *SQLite) RunMigrations(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	err := runMigrations(s.db)
	if err != nil {
		return err
	}

	version, dirty, err := s.GetMigrationVersion()
	if err != nil {
		return err
	}

	log.Debugw("database migrated", "version", version, "dirty", dirty)
	return nil
}

func dsn(filePath string) string {
	sep := "?"
	if strings.Contains(filePath, "?") {
		sep = "&"
	}

	return filePath + sep + "_foreign_keys=on"
}

func (s *SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleUpdate(ctx context.Context, stmt sqlite.UpdateStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

// handleStatement executes a single statement in its own transaction
func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}
