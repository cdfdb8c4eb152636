package common

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// CleanText strips all markup from user supplied text and trims it.
// Entities escaped by the policy are decoded again since the value is
// stored as plain text and only ever rendered as JSON.
func CleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// ContainsPattern builds a LIKE argument matching query anywhere in the
// column. Wildcards in query match literally.
func ContainsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
