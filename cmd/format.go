package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/kasuboski/nyaaz/pkg/indexer"
	"github.com/kasuboski/nyaaz/pkg/storage"
	"github.com/kasuboski/nyaaz/pkg/storage/sqlite/schema/gen/model"
)

func formatTotal(total int32) string {
	if total == storage.UnknownTotalEpisodes {
		return "?"
	}
	return strconv.Itoa(int(total))
}

func showStatus(show model.Shows) string {
	if storage.IsPending(show) {
		return "waiting for " + humanize.Ordinal(int(show.NextEpisode))
	}
	return "complete"
}

func showRows(shows []*model.Shows) [][]string {
	rows := make([][]string, 0, len(shows))
	for _, s := range shows {
		search := ""
		if s.SearchString != nil {
			search = *s.SearchString
		}
		rows = append(rows, []string{
			s.Title,
			search,
			strconv.Itoa(int(s.NextEpisode)),
			formatTotal(s.TotalEpisodes),
			showStatus(*s),
		})
	}
	return rows
}

func episodeRows(episodes []*model.Episodes) [][]string {
	rows := make([][]string, 0, len(episodes))
	for _, e := range episodes {
		rows = append(rows, []string{strconv.Itoa(int(e.Episode)), e.URL})
	}
	return rows
}

func pluralize(n int, singular string) string {
	return english.Plural(n, singular, "")
}

// hyperlink wraps text in an OSC 8 terminal hyperlink to link
func hyperlink(link, text string) string {
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", link, text)
}

func writeEntries(w io.Writer, entries []indexer.Entry, encodeLinks bool) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "could not find anything")
		return
	}

	for _, e := range entries {
		if encodeLinks {
			fmt.Fprintln(w, hyperlink(e.MagnetLink, e.Title))
			continue
		}
		fmt.Fprintln(w, e.Title)
		fmt.Fprintf(w, "> %s\n", e.MagnetLink)
	}
}
