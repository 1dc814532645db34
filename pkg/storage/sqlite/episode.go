package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/nyaaz/pkg/storage"
	"github.com/kasuboski/nyaaz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/nyaaz/pkg/storage/sqlite/schema/gen/table"
	"github.com/mattn/go-sqlite3"
)

// InsertEpisode stores a newly found episode. Existing episodes are never overwritten.
func (s *SQLite) InsertEpisode(ctx context.Context, episode model.Episodes) error {
	stmt := table.Episodes.
		INSERT(table.Episodes.AllColumns).
		MODEL(episode)

	_, err := s.handleInsert(ctx, stmt)
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return fmt.Errorf("episode %d of %q: %w", episode.Episode, episode.Title, storage.ErrAlreadyExists)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("show %q: %w", episode.Title, storage.ErrNotFound)
		}
	}

	return fmt.Errorf("failed to insert episode: %w", err)
}

// ListEpisodes lists the found episodes of a show ordered by episode number
func (s *SQLite) ListEpisodes(ctx context.Context, title string) ([]*model.Episodes, error) {
	stmt := table.Episodes.
		SELECT(table.Episodes.AllColumns).
		FROM(table.Episodes).
		WHERE(table.Episodes.Title.EQ(sqlite.String(title))).
		ORDER_BY(table.Episodes.Episode.ASC())

	episodes := make([]*model.Episodes, 0)
	err := stmt.QueryContext(ctx, s.db, &episodes)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	return episodes, nil
}
