// Package tags holds the read-side helpers for free-form catalog tags.
package tags

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims, lowercases and strips diacritic marks: "  Café " becomes "cafe".
func Normalize(tag string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(tag)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(tag))
	}
	return out
}

// Collect normalizes every tag of every list, drops empties and duplicates and
// returns the result sorted. The result is never nil.
func Collect(lists ...[]string) []string {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, tag := range list {
			if n := Normalize(tag); n != "" {
				set[n] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
