package storage

import (
	"context"
	"errors"

	"github.com/kasuboski/nyaaz/pkg/storage/sqlite/schema/gen/model"
)

//go:generate mockgen -package mocks -destination mocks/storage.go github.com/kasuboski/nyaaz/pkg/storage Storage

var (
	ErrNotFound      = errors.New("not found in storage")
	ErrAlreadyExists = errors.New("already exists in storage")
)

const (
	// UnknownTotalEpisodes marks a show whose episode count is not known yet
	UnknownTotalEpisodes int32 = -1
	// FirstEpisode is where a newly tracked show starts
	FirstEpisode int32 = 1
)

type Storage interface {
	RunMigrations(ctx context.Context) error
	ShowStorage
	EpisodeStorage
	StatisticsStorage
}

type ShowStorage interface {
	// UpsertShow inserts the show or replaces the stored show with the same title
	UpsertShow(ctx context.Context, show model.Shows) error
	GetShow(ctx context.Context, title string) (*model.Shows, error)
	// ListShows lists shows whose title contains titleSubstring. Completed shows are only
	// included when includeCompleted is set.
	ListShows(ctx context.Context, titleSubstring string, includeCompleted bool) ([]*model.Shows, error)
	// CompleteShow marks the episode before the show's next episode as its last one
	CompleteShow(ctx context.Context, title string) error
}

type EpisodeStorage interface {
	// InsertEpisode stores a found episode. Episodes are never replaced so storing the
	// same title and episode twice returns ErrAlreadyExists.
	InsertEpisode(ctx context.Context, episode model.Episodes) error
	ListEpisodes(ctx context.Context, title string) ([]*model.Episodes, error)
}

// IsPending reports whether more episodes are expected for the show
func IsPending(show model.Shows) bool {
	return show.TotalEpisodes == UnknownTotalEpisodes || show.NextEpisode <= show.TotalEpisodes
}
