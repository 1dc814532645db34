package indexer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/kasuboski/nyaaz/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	title  string
	magnet string
}

// resultsHTML renders a listing page the way the site lays it out
func resultsHTML(pageInfo string, rows ...row) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="torrent-list"><tbody>`)
	for i, r := range rows {
		fmt.Fprintf(&b, `<tr><td><a href="/view/%d#comments" class="comments" title="1 comment">1</a>`, i)
		fmt.Fprintf(&b, `<a href="/view/%d" title="%s">%s</a></td>`, i, r.title, r.title)
		fmt.Fprintf(&b, `<td><a href="%s"></a></td></tr>`, r.magnet)
	}
	b.WriteString(`</tbody></table>`)
	if pageInfo != "" {
		fmt.Fprintf(&b, `<div class="pagination-page-info">%s</div>`, pageInfo)
	}
	b.WriteString(`</body></html>`)
	return b.String()
}

// listing serves the given pages by their p query parameter and records every requested page
type listing struct {
	mu        sync.Mutex
	pages     map[int]string
	failPage  int
	requested []int
	queries   []string
}

func (l *listing) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("p"))

	l.mu.Lock()
	l.requested = append(l.requested, page)
	l.queries = append(l.queries, r.URL.Query().Get("q"))
	l.mu.Unlock()

	if page == l.failPage {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	body, ok := l.pages[page]
	if !ok {
		body = resultsHTML("")
	}
	_, _ = w.Write([]byte(body))
}

func newTestNyaa(t *testing.T, l *listing) *Nyaa {
	t.Helper()

	server := httptest.NewServer(l)
	t.Cleanup(server.Close)

	n, err := NewNyaa(server.Client(), config.Site{Implementation: "nyaa", URI: server.URL})
	require.NoError(t, err)
	return n
}

func ptr[T any](v T) *T {
	return &v
}

func TestNyaa_Search(t *testing.T) {
	ctx := context.Background()
	more := "Displaying results 1-75 out of 1000 results."
	last := "Displaying results 1-2 out of 2 results."

	t.Run("returns matches of the first page", func(t *testing.T) {
		l := &listing{pages: map[int]string{
			1: resultsHTML(more,
				row{"[SubsPlease] Foo - 03 (1080p)", "magnet:?xt=urn:btih:A"},
				row{"[SubsPlease] Foo - 04 (1080p)", "magnet:?xt=urn:btih:B"},
				row{"[Other] Foo - 03 (720p)", "magnet:?xt=urn:btih:C"},
			),
			2: resultsHTML(more, row{"[Late] Foo - 03", "magnet:?xt=urn:btih:D"}),
		}}
		n := newTestNyaa(t, l)

		entries, err := n.Search(ctx, SearchOptions{Query: "Foo", Episode: ptr("3")})
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Title: "[SubsPlease] Foo - 03 (1080p)", MagnetLink: "magnet:?xt=urn:btih:A"},
			{Title: "[Other] Foo - 03 (720p)", MagnetLink: "magnet:?xt=urn:btih:C"},
		}, entries)
		assert.Equal(t, []int{1}, l.requested)
	})

	t.Run("continues past a page without matches", func(t *testing.T) {
		l := &listing{pages: map[int]string{
			1: resultsHTML(more, row{"Foo - 02", "magnet:?xt=urn:btih:A"}),
			2: resultsHTML(more, row{"Foo - 03", "magnet:?xt=urn:btih:B"}),
		}}
		n := newTestNyaa(t, l)

		entries, err := n.Search(ctx, SearchOptions{Query: "Foo", Episode: ptr("3")})
		require.NoError(t, err)
		assert.Equal(t, []Entry{{Title: "Foo - 03", MagnetLink: "magnet:?xt=urn:btih:B"}}, entries)
		assert.Equal(t, []int{1, 2}, l.requested)
	})

	t.Run("stops on the last page", func(t *testing.T) {
		l := &listing{pages: map[int]string{
			1: resultsHTML(last, row{"Foo - 01", "magnet:?xt=urn:btih:A"}, row{"Foo - 02", "magnet:?xt=urn:btih:B"}),
		}}
		n := newTestNyaa(t, l)

		entries, err := n.Search(ctx, SearchOptions{Query: "Foo", Episode: ptr("3")})
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
		assert.Equal(t, []int{1}, l.requested)
	})

	t.Run("stops when the page info is missing", func(t *testing.T) {
		l := &listing{pages: map[int]string{
			1: resultsHTML("", row{"Foo - 01", "magnet:?xt=urn:btih:A"}),
		}}
		n := newTestNyaa(t, l)

		entries, err := n.Search(ctx, SearchOptions{Query: "Foo", Episode: ptr("3")})
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Equal(t, []int{1}, l.requested)
	})

	t.Run("gives up after the maximum number of pages", func(t *testing.T) {
		pages := make(map[int]string)
		for i := 1; i <= MaxPages+1; i++ {
			pages[i] = resultsHTML(more, row{"Foo - 01", "magnet:?xt=urn:btih:A"})
		}
		l := &listing{pages: pages}
		n := newTestNyaa(t, l)

		entries, err := n.Search(ctx, SearchOptions{Query: "Foo", Episode: ptr("3")})
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, l.requested)
	})

	t.Run("no episode matches every entry", func(t *testing.T) {
		l := &listing{pages: map[int]string{
			1: resultsHTML(more, row{"Foo - 01", "magnet:?xt=urn:btih:A"}, row{"Foo Batch", "magnet:?xt=urn:btih:B"}),
		}}
		n := newTestNyaa(t, l)

		entries, err := n.Search(ctx, SearchOptions{Query: "Foo"})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("fetch error aborts the search", func(t *testing.T) {
		l := &listing{
			pages:    map[int]string{1: resultsHTML(more, row{"Foo - 01", "magnet:?xt=urn:btih:A"})},
			failPage: 2,
		}
		n := newTestNyaa(t, l)

		entries, err := n.Search(ctx, SearchOptions{Query: "Foo", Episode: ptr("3")})
		assert.ErrorIs(t, err, ErrFetch)
		assert.ErrorContains(t, err, "page 2")
		assert.Nil(t, entries)
		assert.Equal(t, []int{1, 2}, l.requested)
	})

	t.Run("transport error is a fetch error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		n, err := NewNyaa(http.DefaultClient, config.Site{URI: server.URL})
		require.NoError(t, err)

		_, err = n.Search(ctx, SearchOptions{Query: "Foo"})
		assert.ErrorIs(t, err, ErrFetch)
	})

	t.Run("query is normalized", func(t *testing.T) {
		l := &listing{pages: map[int]string{1: resultsHTML("")}}
		n := newTestNyaa(t, l)

		_, err := n.Search(ctx, SearchOptions{Query: "Cafe\u0301 & Co"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Caf\u00e9 & Co"}, l.queries)
	})
}

func TestNyaa_pageURL(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		n, err := NewNyaa(http.DefaultClient, config.Site{URI: "https://nyaa.si"})
		require.NoError(t, err)
		assert.Equal(t, "https://nyaa.si/?c=0_0&f=0&p=1&q=Foo", n.pageURL("Foo", 1))
	})

	t.Run("configured site", func(t *testing.T) {
		n, err := NewNyaa(http.DefaultClient, config.Site{URI: "https://my-nyaa-host", Filter: "2", Category: "1_2"})
		require.NoError(t, err)
		assert.Equal(t, "https://my-nyaa-host/?c=1_2&f=2&p=3&q=Foo+bar%26baz", n.pageURL("Foo bar&baz", 3))
	})

	t.Run("missing uri", func(t *testing.T) {
		_, err := NewNyaa(http.DefaultClient, config.Site{})
		assert.Error(t, err)
	})
}

func TestResultPage(t *testing.T) {
	f, err := os.Open("testdata/search_page.html")
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)

	p := &resultPage{number: 1, doc: doc}

	assert.Equal(t, []Entry{
		{Title: "[Group] Foo - 03 [1080p].mkv", MagnetLink: "magnet:?xt=urn:btih:AAA&dn=Foo-03"},
		{Title: "Foo S01E03 1080p WEB", MagnetLink: "magnet:?xt=urn:btih:CCC&dn=Foo-S01E03"},
	}, p.entries(context.Background()))
	assert.True(t, p.hasNextPage())
}

func TestParseRow(t *testing.T) {
	parse := func(t *testing.T, html string) (Entry, error) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<table class="torrent-list"><tbody>` + html + `</tbody></table>`))
		require.NoError(t, err)
		return parseRow(doc.Find(rowSelector).First())
	}

	t.Run("missing title", func(t *testing.T) {
		_, err := parse(t, `<tr><td><a href="/view/1#comments" class="comments" title="2 comments">2</a></td><td><a href="magnet:?xt=urn:btih:A"></a></td></tr>`)
		assert.ErrorIs(t, err, ErrParse)
		assert.ErrorContains(t, err, "could not find title")
	})

	t.Run("missing link", func(t *testing.T) {
		_, err := parse(t, `<tr><td><a href="/view/1" title="Foo - 01">Foo - 01</a></td></tr>`)
		assert.ErrorIs(t, err, ErrParse)
		assert.ErrorContains(t, err, "could not find link")
	})

	t.Run("ignores the comments link", func(t *testing.T) {
		entry, err := parse(t, `<tr><td><a href="/view/1#comments" class="comments" title="2 comments">2</a><a href="/view/1" title="Foo - 01">Foo - 01</a></td><td><a href="magnet:?xt=urn:btih:A"></a></td></tr>`)
		require.NoError(t, err)
		assert.Equal(t, Entry{Title: "Foo - 01", MagnetLink: "magnet:?xt=urn:btih:A"}, entry)
	})
}
