package indexer

import (
	"strings"
	"unicode/utf8"
)

// MatchesEpisode reports whether title looks like it contains the wanted episode.
// The episode is zero padded to two characters and looked for as " - NN" or "ENN".
func MatchesEpisode(title string, episode *string) bool {
	if episode == nil {
		return true
	}

	e := padEpisode(*episode)
	return strings.Contains(title, " - "+e) || strings.Contains(title, "E"+e)
}

func padEpisode(episode string) string {
	n := utf8.RuneCountInString(episode)
	if n >= 2 {
		return episode
	}
	return strings.Repeat("0", 2-n) + episode
}
