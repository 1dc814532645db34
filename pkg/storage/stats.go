package storage

import (
	"context"
)

// StatisticsStorage interface for aggregate queries over tracked shows
type StatisticsStorage interface {
	GetShowStats(ctx context.Context) (*ShowStats, error)
}

type ShowStats struct {
	Shows    int `json:"shows"`
	Pending  int `json:"pending"`
	Complete int `json:"complete"`
	Episodes int `json:"episodes"`
}
