package indexer

import (
	"context"
	"errors"

	"github.com/kasuboski/nyaaz/config"
)

//go:generate mockgen -package mocks -destination mocks/searcher.go github.com/kasuboski/nyaaz/pkg/indexer Searcher

// MaxPages is the number of result pages visited before a search gives up
const MaxPages = 10

var (
	// ErrFetch is returned when a result page could not be retrieved
	ErrFetch = errors.New("failed to fetch page")
	// ErrParse is returned when a result row is missing its title or magnet link
	ErrParse = errors.New("failed to parse row")
)

// Searcher finds entries on a listing site
type Searcher interface {
	Search(ctx context.Context, opts SearchOptions) ([]Entry, error)
}

// SearchOptions narrows a search. A nil Episode matches every entry.
type SearchOptions struct {
	Query   string
	Episode *string
}

// Entry is a single search result
type Entry struct {
	Title      string
	MagnetLink string
}

type Factory interface {
	NewSearcher(site config.Site) (Searcher, error)
}
