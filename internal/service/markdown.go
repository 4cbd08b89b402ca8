package service

import "regexp"

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
)

// StripMarkdown reduces **bold** and *italic* markers to their inner text.
// Bold is handled first so its markers are not read as two italics.
func StripMarkdown(text string) string {
	text = boldPattern.ReplaceAllString(text, "$1")
	return italicPattern.ReplaceAllString(text, "$1")
}
