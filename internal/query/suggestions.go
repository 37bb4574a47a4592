package query

import (
	"strings"
	"unicode/utf8"
)

// suggestionManufacturers are templated against the query to build suggestions.
var suggestionManufacturers = []string{
	"Medtronic",
	"Boston Scientific",
	"Abbott",
	"Philips",
}

// PopularTerms are the shortcut searches offered on the landing surface.
var PopularTerms = []string{
	"Pacemaker",
	"Insulin Pump",
	"Cochlear Implant",
}

// minSuggestionLength is the query length, in characters, above which suggestions appear.
const minSuggestionLength = 1

// Suggest derives autocomplete entries for the query. It never searches.
// Suggestions are "<query> - <manufacturer>", kept when they contain the query
// case-insensitively; queries of one character or less yield none.
func Suggest(query string) []string {
	if utf8.RuneCountInString(query) <= minSuggestionLength {
		return nil
	}

	needle := strings.ToLower(query)
	suggestions := make([]string, 0, len(suggestionManufacturers))
	for _, manufacturer := range suggestionManufacturers {
		suggestion := query + " - " + manufacturer
		if strings.Contains(strings.ToLower(suggestion), needle) {
			suggestions = append(suggestions, suggestion)
		}
	}

	return suggestions
}
