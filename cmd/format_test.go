package cmd

import (
	"bytes"
	"testing"

	"github.com/kasuboski/nyaaz/pkg/indexer"
	"github.com/kasuboski/nyaaz/pkg/storage"
	"github.com/kasuboski/nyaaz/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
)

func TestShowRows(t *testing.T) {
	search := "[SubsPlease] Sousou no Frieren"
	rows := showRows([]*model.Shows{
		{Title: "Frieren", SearchString: &search, NextEpisode: 3, TotalEpisodes: 28},
		{Title: "One Piece", NextEpisode: 1102, TotalEpisodes: storage.UnknownTotalEpisodes},
		{Title: "Done", NextEpisode: 13, TotalEpisodes: 12},
	})

	assert.Equal(t, [][]string{
		{"Frieren", search, "3", "28", "waiting for 3rd"},
		{"One Piece", "", "1102", "?", "waiting for 1102nd"},
		{"Done", "", "13", "12", "complete"},
	}, rows)
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 show", pluralize(1, "show"))
	assert.Equal(t, "0 episodes", pluralize(0, "episode"))
	assert.Equal(t, "12 episodes", pluralize(12, "episode"))
}

func TestWriteEntries(t *testing.T) {
	entries := []indexer.Entry{
		{Title: "Foo - 03", MagnetLink: "magnet:?xt=urn:btih:A"},
		{Title: "Foo - 03 (720p)", MagnetLink: "magnet:?xt=urn:btih:B"},
	}

	t.Run("plain", func(t *testing.T) {
		var b bytes.Buffer
		writeEntries(&b, entries, false)
		assert.Equal(t, "Foo - 03\n> magnet:?xt=urn:btih:A\nFoo - 03 (720p)\n> magnet:?xt=urn:btih:B\n", b.String())
	})

	t.Run("hyperlinks", func(t *testing.T) {
		var b bytes.Buffer
		writeEntries(&b, entries[:1], true)
		assert.Equal(t, "\x1b]8;;magnet:?xt=urn:btih:A\x1b\\Foo - 03\x1b]8;;\x1b\\\n", b.String())
	})

	t.Run("nothing found", func(t *testing.T) {
		var b bytes.Buffer
		writeEntries(&b, nil, true)
		assert.Equal(t, "could not find anything\n", b.String())
	})
}

func TestRenderTable(t *testing.T) {
	assert.Empty(t, renderTable(nil, nil, nil))

	out := renderTable([]string{"Episode", "Link"}, [][]string{{"1", "magnet:?xt=urn:btih:A"}}, []columnAlignment{alignRight, alignLeft})
	assert.Contains(t, out, "EPISODE")
	assert.Contains(t, out, "magnet:?xt=urn:btih:A")
}
