package sqlite

import (
	"context"
	"fmt"

	"github.com/kasuboski/nyaaz/pkg/storage"
)

// GetShowStats counts shows by whether they are pending along with every episode found, in a single query
func (s *SQLite) GetShowStats(ctx context.Context) (*storage.ShowStats, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) AS shows,
		       COALESCE(SUM(CASE WHEN total_episodes = -1 OR next_episode <= total_episodes THEN 1 ELSE 0 END), 0) AS pending,
		       (SELECT COUNT(*) FROM episodes) AS episodes
		FROM shows
	`)

	var stats storage.ShowStats
	if err := row.Scan(&stats.Shows, &stats.Pending, &stats.Episodes); err != nil {
		return nil, fmt.Errorf("failed to get show stats: %w", err)
	}
	stats.Complete = stats.Shows - stats.Pending

	return &stats, nil
}
