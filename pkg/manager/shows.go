package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/kasuboski/nyaaz/pkg/indexer"
	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/kasuboski/nyaaz/pkg/storage"
	"github.com/kasuboski/nyaaz/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// AddShowRequest describes a show to track. Unset fields keep their defaults,
// or their stored values when Update is set.
type AddShowRequest struct {
	Title         string
	SearchString  *string
	NextEpisode   *int32
	TotalEpisodes *int32
	Update        bool
}

// AddShow starts tracking a show or, with Update, changes a tracked one.
// Updating a show that is not tracked fails with storage.ErrNotFound.
func (m ShowManager) AddShow(ctx context.Context, req AddShowRequest) (*model.Shows, error) {
	log := logger.FromCtx(ctx)

	title := normalizeTitle(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidShow)
	}

	show := model.Shows{
		Title:         title,
		NextEpisode:   storage.FirstEpisode,
		TotalEpisodes: storage.UnknownTotalEpisodes,
	}

	if req.Update {
		existing, err := m.storage.GetShow(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("failed to get show %q: %w", title, err)
		}
		show = *existing
	}

	if req.SearchString != nil {
		show.SearchString = req.SearchString
		if *req.SearchString == "" {
			show.SearchString = nil
		}
	}
	if req.NextEpisode != nil {
		show.NextEpisode = *req.NextEpisode
	}
	if req.TotalEpisodes != nil {
		show.TotalEpisodes = *req.TotalEpisodes
	}

	if show.NextEpisode < storage.FirstEpisode {
		return nil, fmt.Errorf("%w: next episode must be at least %d", ErrInvalidShow, storage.FirstEpisode)
	}
	if show.TotalEpisodes < storage.UnknownTotalEpisodes {
		return nil, fmt.Errorf("%w: total episodes must be %d or more", ErrInvalidShow, storage.UnknownTotalEpisodes)
	}

	if err := m.storage.UpsertShow(ctx, show); err != nil {
		log.Errorw("failed to save show", "title", title, zap.Error(err))
		return nil, err
	}

	log.Debugw("saved show", "title", show.Title, "next_episode", show.NextEpisode, "total_episodes", show.TotalEpisodes)
	return &show, nil
}

// CompleteShow marks a show as finished after the last episode found so far
func (m ShowManager) CompleteShow(ctx context.Context, title string) (*model.Shows, error) {
	title = normalizeTitle(title)
	if err := m.storage.CompleteShow(ctx, title); err != nil {
		return nil, fmt.Errorf("failed to complete show %q: %w", title, err)
	}
	return m.storage.GetShow(ctx, title)
}

// ListShows lists tracked shows whose title contains filter
func (m ShowManager) ListShows(ctx context.Context, filter string, includeCompleted bool) ([]*model.Shows, error) {
	return m.storage.ListShows(ctx, filter, includeCompleted)
}

// ShowHistory returns a show and every episode found for it
func (m ShowManager) ShowHistory(ctx context.Context, title string) (*model.Shows, []*model.Episodes, error) {
	title = normalizeTitle(title)
	show, err := m.storage.GetShow(ctx, title)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get show %q: %w", title, err)
	}

	episodes, err := m.storage.ListEpisodes(ctx, title)
	if err != nil {
		return nil, nil, err
	}

	return show, episodes, nil
}

// Search runs a single search outside of any tracked show
func (m ShowManager) Search(ctx context.Context, query string, episode *string) ([]indexer.Entry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is empty")
	}
	return m.searcher.Search(ctx, indexer.SearchOptions{Query: query, Episode: episode})
}

func normalizeTitle(title string) string {
	return norm.NFC.String(strings.TrimSpace(title))
}

// Stats counts tracked shows and found episodes
func (m ShowManager) Stats(ctx context.Context) (*storage.ShowStats, error) {
	return m.storage.GetShowStats(ctx)
}
