package minify

import "strings"

// Minify removes the comments of tag's pattern set from text, collapses every
// whitespace run to a single space and trims the result. Text for a tag with
// no registered set is returned untouched.
//
// Matching is purely textual: comment markers inside string literals are
// stripped too.
func Minify(tag Tag, text string) string {
	set, ok := patternSets[tag]
	if !ok {
		return text
	}

	for _, re := range set {
		text = re.ReplaceAllLiteralString(text, "")
	}
	text = whitespacePattern.ReplaceAllLiteralString(text, " ")
	return strings.TrimSpace(text)
}
