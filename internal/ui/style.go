// Package ui provides the presentational primitives shared by every page:
// buttons and the card family. Components only compose style classes; the
// markup itself lives in the web templates.
package ui

import "strings"

// Merge joins style tokens in the order given. Each token may carry several
// space-separated classes. Empty tokens are dropped and duplicates are kept,
// so a later class always appears after an earlier one and wins in the
// cascade.
func Merge(tokens ...string) string {
	var classes []string
	for _, token := range tokens {
		classes = append(classes, strings.Fields(token)...)
	}
	return strings.Join(classes, " ")
}
