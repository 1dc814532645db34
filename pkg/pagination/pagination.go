package pagination

import (
	"strconv"
	"strings"
	"unicode"
)

// Info is the position of a result page as reported by a listing's page-info text,
// e.g. "Displaying results 1-75 out of 1000 results."
type Info struct {
	Start int
	End   int
	Total int
}

// HasNext reports whether results exist past the end of this page
func (i Info) HasNext() bool {
	return i.Total > i.End
}

// ParseInfo reads the first three numbers of text as start, end and total.
// Every non-numeric rune separates numbers. ok is false when fewer than three
// numbers are present or one of them cannot be parsed.
func ParseInfo(text string) (info Info, ok bool) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsNumber(r)
	})
	if len(tokens) < 3 {
		return info, false
	}

	var numbers [3]int
	for i, token := range tokens[:3] {
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return info, false
		}
		numbers[i] = int(n)
	}

	return Info{Start: numbers[0], End: numbers[1], Total: numbers[2]}, true
}

// HasNextPage parses text and reports whether a later page exists.
// Unparseable text never has a next page.
func HasNextPage(text string) bool {
	info, ok := ParseInfo(text)
	return ok && info.HasNext()
}
