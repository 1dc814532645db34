package indexer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kasuboski/nyaaz/config"
	nhttp "github.com/kasuboski/nyaaz/pkg/http"
	"github.com/kasuboski/nyaaz/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultFilter   = "0"
	DefaultCategory = "0_0"
)

// Nyaa searches a nyaa style torrent listing
type Nyaa struct {
	client   nhttp.HTTPClient
	baseURL  *url.URL
	filter   string
	category string
}

func NewNyaa(client nhttp.HTTPClient, site config.Site) (*Nyaa, error) {
	if site.URI == "" {
		return nil, fmt.Errorf("nyaa search requires a uri")
	}

	u, err := url.Parse(site.URI)
	if err != nil {
		return nil, fmt.Errorf("invalid nyaa uri %q: %w", site.URI, err)
	}

	n := &Nyaa{
		client:   client,
		baseURL:  u,
		filter:   site.Filter,
		category: site.Category,
	}
	if n.filter == "" {
		n.filter = DefaultFilter
	}
	if n.category == "" {
		n.category = DefaultCategory
	}

	return n, nil
}

// Search walks the result pages in order and returns the matching entries of the first page that has any.
// Pages without a match are skipped only while the listing reports a later page.
// Entries are never merged across pages and any fetch failure aborts the search.
func (n *Nyaa) Search(ctx context.Context, opts SearchOptions) ([]Entry, error) {
	query := norm.NFC.String(opts.Query)
	log := logger.FromCtx(ctx).With("query", query)
	if opts.Episode != nil {
		log = log.With("episode", *opts.Episode)
	}

	for page := 1; page <= MaxPages; page++ {
		log.Infow("searching page", "page", page)

		p, err := n.fetchPage(ctx, query, page)
		if err != nil {
			return nil, err
		}

		rows := p.entries(logger.WithCtx(ctx, log))
		entries := make([]Entry, 0, len(rows))
		for _, e := range rows {
			if MatchesEpisode(e.Title, opts.Episode) {
				entries = append(entries, e)
			}
		}

		if len(entries) > 0 || !p.hasNextPage() {
			log.Debugw("search finished", "page", page, "matches", len(entries), zap.Int("rows", len(rows)))
			return entries, nil
		}
	}

	log.Debugw("no matches found", "pages", MaxPages)
	return []Entry{}, nil
}

func (n *Nyaa) pageURL(query string, page int) string {
	u := *n.baseURL
	if u.Path == "" {
		u.Path = "/"
	}

	q := url.Values{}
	q.Set("f", n.filter)
	q.Set("c", n.category)
	q.Set("q", query)
	q.Set("p", fmt.Sprint(page))
	u.RawQuery = q.Encode()

	return u.String()
}
