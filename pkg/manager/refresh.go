package manager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/kasuboski/nyaaz/pkg/action"
	"github.com/kasuboski/nyaaz/pkg/indexer"
	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/kasuboski/nyaaz/pkg/machine"
	"github.com/kasuboski/nyaaz/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

type RefreshState string

const (
	RefreshStatePending     RefreshState = "pending"
	RefreshStateSearching   RefreshState = "searching"
	RefreshStateMatched     RefreshState = "matched"
	RefreshStateNoMatch     RefreshState = "no_match"
	RefreshStateSearchError RefreshState = "search_error"
	RefreshStateCommitted   RefreshState = "committed"
)

func newRefreshMachine() *machine.StateMachine[RefreshState] {
	return machine.New(RefreshStatePending,
		machine.From(RefreshStatePending).To(RefreshStateSearching),
		machine.From(RefreshStateSearching).To(RefreshStateMatched, RefreshStateNoMatch, RefreshStateSearchError),
		machine.From(RefreshStateMatched).To(RefreshStateCommitted),
	)
}

// RefreshSummary counts how each visited show ended up
type RefreshSummary struct {
	RunID        string
	Shows        int
	Committed    int
	NoMatch      int
	SearchErrors int
}

func (s *RefreshSummary) record(state RefreshState) {
	s.Shows++
	switch state {
	case RefreshStateCommitted:
		s.Committed++
	case RefreshStateNoMatch:
		s.NoMatch++
	case RefreshStateSearchError:
		s.SearchErrors++
	}
}

// Refresh looks for the next episode of every pending show, one show at a time.
// A search failure only skips that show. A storage failure ends the run and is returned wrapped in ErrStore.
func (m ShowManager) Refresh(ctx context.Context) (RefreshSummary, error) {
	summary := RefreshSummary{RunID: uuid.NewString()}
	log := logger.FromCtx(ctx).With("run_id", summary.RunID)
	ctx = logger.WithCtx(ctx, log)

	if m.config.LockFile != "" {
		lock := flock.New(m.config.LockFile)
		ok, err := lock.TryLock()
		if err != nil {
			return summary, fmt.Errorf("acquire refresh lock: %w", err)
		}
		if !ok {
			return summary, ErrRefreshRunning
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				log.Warnw("failed to release refresh lock", zap.Error(err))
			}
		}()
	}

	shows, err := m.storage.ListShows(ctx, "", false)
	if err != nil {
		return summary, fmt.Errorf("%w: failed to list shows: %w", ErrStore, err)
	}

	log.Infow("refreshing shows", "count", len(shows))
	for _, show := range shows {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		state, err := m.refreshShow(ctx, *show)
		summary.record(state)
		if err != nil {
			return summary, err
		}
	}

	log.Infow("refresh finished",
		"shows", summary.Shows,
		"committed", summary.Committed,
		"no_match", summary.NoMatch,
		"search_errors", summary.SearchErrors,
	)
	return summary, nil
}

func (m ShowManager) refreshShow(ctx context.Context, show model.Shows) (RefreshState, error) {
	log := logger.FromCtx(ctx).With("title", show.Title, "episode", show.NextEpisode)
	sm := newRefreshMachine()

	query := show.Title
	if show.SearchString != nil && *show.SearchString != "" {
		query = *show.SearchString
	}
	wanted := strconv.Itoa(int(show.NextEpisode))

	if err := sm.ToState(RefreshStateSearching); err != nil {
		return sm.State(), err
	}

	entries, err := m.searcher.Search(logger.WithCtx(ctx, log), indexer.SearchOptions{Query: query, Episode: &wanted})
	if err != nil {
		log.Errorw("search failed", zap.Error(err))
		return RefreshStateSearchError, sm.ToState(RefreshStateSearchError)
	}

	if len(entries) == 0 {
		log.Debug("no new episode")
		return RefreshStateNoMatch, sm.ToState(RefreshStateNoMatch)
	}

	if err := sm.ToState(RefreshStateMatched); err != nil {
		return sm.State(), err
	}

	entry := entries[0]
	episode := model.Episodes{
		Title:   show.Title,
		Episode: show.NextEpisode,
		URL:     entry.MagnetLink,
	}
	log.Infow("found new episode", "release", entry.Title, "url", entry.MagnetLink)

	// actions run before anything is stored, a crash in between finds the episode again next run
	m.notifier.Notify(ctx, action.Notification{
		Title:   episode.Title,
		Episode: episode.Episode,
		URL:     episode.URL,
	})

	show.NextEpisode++
	if err := m.storage.UpsertShow(ctx, show); err != nil {
		return sm.State(), fmt.Errorf("%w: failed to advance %q: %w", ErrStore, show.Title, err)
	}

	if err := m.storage.InsertEpisode(ctx, episode); err != nil {
		return sm.State(), fmt.Errorf("%w: failed to record episode %d of %q: %w", ErrStore, episode.Episode, episode.Title, err)
	}

	return RefreshStateCommitted, sm.ToState(RefreshStateCommitted)
}

// Watch refreshes immediately and then on every interval until ctx is done.
// A run skipped because another process holds the lock is not an error.
func (m ShowManager) Watch(ctx context.Context, interval time.Duration) error {
	log := logger.FromCtx(ctx)
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	run := func() error {
		_, err := m.Refresh(ctx)
		switch {
		case err == nil:
			return nil
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, ErrRefreshRunning):
			log.Warnw("skipping refresh", zap.Error(err))
			return nil
		default:
			return err
		}
	}

	if err := run(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infow("watching for new episodes", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := run(); err != nil {
				return err
			}
		}
	}
}
