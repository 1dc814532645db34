package download

import (
	"context"
	"fmt"

	"github.com/kasuboski/nyaaz/config"
	nhttp "github.com/kasuboski/nyaaz/pkg/http"
)

// Client hands torrents over to a download client
type Client interface {
	Add(ctx context.Context, request AddRequest) (*AddedTorrent, error)
}

type AddRequest struct {
	// URI is a magnet link or a url of a .torrent file
	URI string
	// DownloadDir overrides the download client's default directory when set
	DownloadDir string
}

// AddedTorrent represents the details of the added torrent
type AddedTorrent struct {
	HashString string `json:"hashString"`
	Name       string `json:"name"`
	ID         int    `json:"id"`
	// Duplicate is set when the download client already had the torrent
	Duplicate bool `json:"-"`
}

// NewClient returns a download client for the given configuration
func NewClient(client nhttp.HTTPClient, cfg config.Transmission) (Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("transmission uri is not configured")
	}

	return NewTransmissionClient(client, cfg.URI)
}
