package blocks

import "regexp"

// StartMarker returns the literal start-sentinel line for a block name.
func StartMarker(block string) string {
	return ".. start " + block
}

// EndMarker returns the literal end-sentinel line for a block name.
func EndMarker(block string) string {
	return ".. end " + block
}

// Compiled patterns for the managed block kinds. The body is captured
// lazily so a match always stops at the first end marker.
var (
	// InstallationRegex matches the installation block placeholder.
	InstallationRegex = regexp.MustCompile(`(?s)(\.\. start installation)(.*?)(\.\. end installation)`)

	// ShieldsRegex matches the shields block placeholder.
	ShieldsRegex = regexp.MustCompile(`(?s)(\.\. start shields)(.*?)(\.\. end shields)`)

	// ShortDescRegex matches the short description block placeholder.
	ShortDescRegex = regexp.MustCompile(`(?s)(\.\. start short_desc)(.*?)(\.\. end short_desc)`)

	// LinksRegex matches the links block placeholder.
	LinksRegex = regexp.MustCompile(`(?s)(\.\. start links)(.*?)(\.\. end links)`)
)

// Merge replaces the first marker-delimited span of original, inclusive of
// both markers, with newBody. The returned bool reports whether a marker
// pair was found; when it is false the original text comes back unchanged
// and the caller decides between appending a fresh block and failing.
func Merge(original, startMarker, endMarker, newBody string) (string, bool) {
	re := regexp.MustCompile(
		`(?s)(` + regexp.QuoteMeta(startMarker) + `)(.*?)(` + regexp.QuoteMeta(endMarker) + `)`)
	return MergeRegex(original, re, newBody)
}

// MergeRegex is Merge with a pre-compiled marker pattern. First match
// wins; further pairs of the same kind are left untouched.
func MergeRegex(original string, re *regexp.Regexp, newBody string) (string, bool) {
	loc := re.FindStringIndex(original)
	if loc == nil {
		return original, false
	}
	return original[:loc[0]] + newBody + original[loc[1]:], true
}
