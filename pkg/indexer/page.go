package indexer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/kasuboski/nyaaz/pkg/pagination"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

const (
	rowSelector        = ".torrent-list > tbody > tr"
	titleSelector      = "a:not(.comments)[href^='/view/']"
	magnetSelector     = "a[href^='magnet:']"
	pageInfoSelector   = ".pagination-page-info"
	maxLoggedRowLength = 2048
)

// resultPage is a single fetched page of search results
type resultPage struct {
	number int
	doc    *goquery.Document
}

func (n *Nyaa) fetchPage(ctx context.Context, query string, page int) (*resultPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.pageURL(query, page), nil)
	if err != nil {
		return nil, fmt.Errorf("%w %d: %w", ErrFetch, page, err)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("%w %d: %w", ErrFetch, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d: unexpected status: %s", ErrFetch, page, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w %d: %w", ErrFetch, page, err)
	}

	return &resultPage{number: page, doc: doc}, nil
}

// entries extracts every well formed row of the page in document order.
// Malformed rows are logged and skipped.
func (p *resultPage) entries(ctx context.Context) []Entry {
	log := logger.FromCtx(ctx)

	var entries []Entry
	p.doc.Find(rowSelector).Each(func(i int, row *goquery.Selection) {
		entry, err := parseRow(row)
		if err != nil {
			html, _ := goquery.OuterHtml(row)
			if len(html) > maxLoggedRowLength {
				html = html[:maxLoggedRowLength]
			}
			log.Warnw("skipping row", "page", p.number, "row", i, "html", html, zap.Error(err))
			return
		}
		entries = append(entries, entry)
	})

	return entries
}

func (p *resultPage) hasNextPage() bool {
	info := p.doc.Find(pageInfoSelector).First()
	if info.Length() == 0 {
		return false
	}
	return pagination.HasNextPage(info.Text())
}

func parseRow(row *goquery.Selection) (Entry, error) {
	title, ok := row.Find(titleSelector).First().Attr("title")
	if !ok {
		return Entry{}, fmt.Errorf("%w: could not find title", ErrParse)
	}

	link, ok := row.Find(magnetSelector).First().Attr("href")
	if !ok {
		return Entry{}, fmt.Errorf("%w: could not find link", ErrParse)
	}

	return Entry{
		Title:      norm.NFC.String(title),
		MagnetLink: link,
	}, nil
}
