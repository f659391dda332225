package catalog

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"bookshelf/internal/platform/openlibrary"
)

var digitRuns = regexp.MustCompile(`\d+`)

// descriptionText flattens Open Library's string-or-object description field.
// A bare JSON string yields itself; an object yields its "value" field;
// anything else, including malformed input, yields "".
func descriptionText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value
	}
	return ""
}

// joinAuthorNames joins search-result author names with ", ", or "Unknown"
// when there are none.
func joinAuthorNames(names []string) string {
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, ", ")
}

// authorIDs extracts bare author ids from a work's nested author references.
// Entries with a missing or malformed key are skipped.
func authorIDs(authors []openlibrary.WorkAuthor) []string {
	var ids []string
	for _, a := range authors {
		id := strings.TrimPrefix(a.Author.Key, "/authors/")
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// publishYear scans a free-text publish date for the first run of exactly four
// digits and parses it as the year. No such run yields -1. First match wins.
func publishYear(date string) int {
	for _, run := range digitRuns.FindAllString(date, -1) {
		if len(run) != 4 {
			continue
		}
		year, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		return year
	}
	return -1
}
