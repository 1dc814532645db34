package manager

import (
	"errors"
	"time"

	"github.com/kasuboski/nyaaz/config"
	"github.com/kasuboski/nyaaz/pkg/action"
	"github.com/kasuboski/nyaaz/pkg/indexer"
	"github.com/kasuboski/nyaaz/pkg/storage"
)

const DefaultRefreshInterval = time.Minute * 30

var (
	// ErrStore wraps any storage failure during a refresh. It ends the run.
	ErrStore = errors.New("storage failure")
	// ErrRefreshRunning is returned when another process holds the refresh lock
	ErrRefreshRunning = errors.New("another refresh is already running")
	// ErrInvalidShow is returned when a show request is malformed
	ErrInvalidShow = errors.New("invalid show")
)

// ShowManager tracks shows and moves them forward as new episodes are found
type ShowManager struct {
	searcher indexer.Searcher
	storage  storage.Storage
	notifier action.Notifier
	config   config.Manager
}

func New(searcher indexer.Searcher, storage storage.Storage, notifier action.Notifier, config config.Manager) ShowManager {
	return ShowManager{
		searcher: searcher,
		storage:  storage,
		notifier: notifier,
		config:   config,
	}
}
