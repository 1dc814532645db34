package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/nyaaz/pkg/storage"
	"github.com/kasuboski/nyaaz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/nyaaz/pkg/storage/sqlite/schema/gen/table"
)

// UpsertShow stores a show, replacing any show with the same title
func (s *SQLite) UpsertShow(ctx context.Context, show model.Shows) error {
	stmt := table.Shows.
		INSERT(table.Shows.AllColumns).
		MODEL(show).
		ON_CONFLICT(table.Shows.Title).
		DO_UPDATE(sqlite.SET(
			table.Shows.SearchString.SET(table.Shows.EXCLUDED.SearchString),
			table.Shows.NextEpisode.SET(table.Shows.EXCLUDED.NextEpisode),
			table.Shows.TotalEpisodes.SET(table.Shows.EXCLUDED.TotalEpisodes),
		))

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to upsert show: %w", err)
	}

	return nil
}

// GetShow gets a show by its exact title
func (s *SQLite) GetShow(ctx context.Context, title string) (*model.Shows, error) {
	stmt := table.Shows.
		SELECT(table.Shows.AllColumns).
		FROM(table.Shows).
		WHERE(table.Shows.Title.EQ(sqlite.String(title)))

	var show model.Shows
	err := stmt.QueryContext(ctx, s.db, &show)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}

	return &show, nil
}

// ListShows lists shows whose title contains titleSubstring in the database's natural order
func (s *SQLite) ListShows(ctx context.Context, titleSubstring string, includeCompleted bool) ([]*model.Shows, error) {
	where := table.Shows.Title.LIKE(sqlite.String("%" + titleSubstring + "%"))
	if !includeCompleted {
		where = where.AND(pending())
	}

	stmt := table.Shows.
		SELECT(table.Shows.AllColumns).
		FROM(table.Shows).
		WHERE(where)

	shows := make([]*model.Shows, 0)
	err := stmt.QueryContext(ctx, s.db, &shows)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	return shows, nil
}

// CompleteShow sets the total episodes of a show to the last episode that was found
func (s *SQLite) CompleteShow(ctx context.Context, title string) error {
	stmt := table.Shows.
		UPDATE(table.Shows.TotalEpisodes).
		SET(table.Shows.NextEpisode.SUB(sqlite.Int(1))).
		WHERE(table.Shows.Title.EQ(sqlite.String(title)))

	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to complete show: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to complete show: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("show %q: %w", title, storage.ErrNotFound)
	}

	return nil
}

// pending matches shows that are still expecting episodes
func pending() sqlite.BoolExpression {
	return sqlite.OR(
		table.Shows.TotalEpisodes.EQ(sqlite.Int(int64(storage.UnknownTotalEpisodes))),
		table.Shows.NextEpisode.LT_EQ(table.Shows.TotalEpisodes),
	)
}
