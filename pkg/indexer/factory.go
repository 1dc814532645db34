package indexer

import (
	"fmt"

	"github.com/kasuboski/nyaaz/config"
	nhttp "github.com/kasuboski/nyaaz/pkg/http"
)

type SearcherFactory struct {
	opts []nhttp.ClientOption
}

// NewSearcherFactory returns a Factory whose searchers share the given client options
func NewSearcherFactory(opts ...nhttp.ClientOption) Factory {
	return &SearcherFactory{opts: opts}
}

func (f *SearcherFactory) NewSearcher(site config.Site) (Searcher, error) {
	switch site.Implementation {
	case "nyaa":
		opts := []nhttp.ClientOption{
			nhttp.WithTimeout(site.Timeout),
			nhttp.WithMaxRetries(site.MaxRetries),
			nhttp.WithBaseBackoff(site.BaseBackoff),
		}
		client := nhttp.NewRateLimitedHTTPClient(append(opts, f.opts...)...)
		n, err := NewNyaa(client, site)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unsupported search implementation: %s", site.Implementation)
	}
}
