package markup

import (
	"regexp"
	"strings"
)

// A paragraph break is any whitespace run containing at least two
// newlines.
var reParagraphBreak = regexp.MustCompile(`[ \t\r]*\n(?:[ \t\r]*\n)+[ \t\r\n]*`)

// splitParagraphs partitions raw text into trimmed, non-empty paragraph
// strings. Empty and whitespace-only input both yield zero paragraphs;
// Convert turns that into the single-empty-run document.
func splitParagraphs(raw string) []string {
	var paras []string
	for _, piece := range reParagraphBreak.Split(raw, -1) {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			paras = append(paras, trimmed)
		}
	}
	return paras
}
