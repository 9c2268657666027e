package markup

import (
	"regexp"
	"sort"
	"strings"
)

// spanKind tags a detected markup occurrence. Declaration order is scan
// order, which also breaks start-position ties when sorting.
type spanKind int

const (
	kindBold spanKind = iota
	kindItalic
	kindCode
	kindExplicitLink
	kindURL
	kindTicketRef
)

// priority orders kinds for overlap resolution: Code > ExplicitLink >
// Bold > Italic > URL > TicketRef. Higher wins.
func (k spanKind) priority() int {
	switch k {
	case kindCode:
		return 5
	case kindExplicitLink:
		return 4
	case kindBold:
		return 3
	case kindItalic:
		return 2
	case kindURL:
		return 1
	default:
		return 0
	}
}

// span is a half-open byte range [start, end) over the paragraph text.
// text holds the inner text (Bold/Italic/Code), the visible text
// (ExplicitLink), or the matched literal (URL/TicketRef); target is set
// for the link-producing kinds.
type span struct {
	start, end int
	kind       spanKind
	text       string
	target     string
}

// Precompiled inline patterns. All are RE2, so scanning stays linear-time
// regardless of input.
var (
	reBoldStar    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnder   = regexp.MustCompile(`__(.+?)__`)
	reItalicStar  = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnder = regexp.MustCompile(`_([^_]+)_`)
	reCode        = regexp.MustCompile("`([^`]+)`")
	reLink        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	reURL         = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[^\s]+`)
)

// scanSpans finds every markup occurrence of every kind over the full
// paragraph text. Kinds are matched independently of each other; the
// resolver sorts out overlaps afterwards. Output is ordered ascending by
// start, ties in scan order.
func (c Converter) scanSpans(text string) []span {
	var spans []span

	for _, re := range []*regexp.Regexp{reBoldStar, reBoldUnder} {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			spans = append(spans, span{start: m[0], end: m[1], kind: kindBold, text: text[m[2]:m[3]]})
		}
	}

	spans = append(spans, scanItalic(text, reItalicStar, '*')...)
	spans = append(spans, scanItalic(text, reItalicUnder, '_')...)

	for _, m := range reCode.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, span{start: m[0], end: m[1], kind: kindCode, text: text[m[2]:m[3]]})
	}

	for _, m := range reLink.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, span{
			start:  m[0],
			end:    m[1],
			kind:   kindExplicitLink,
			text:   text[m[2]:m[3]],
			target: text[m[4]:m[5]],
		})
	}

	for _, m := range reURL.FindAllStringIndex(text, -1) {
		lit := text[m[0]:m[1]]
		spans = append(spans, span{start: m[0], end: m[1], kind: kindURL, text: lit, target: lit})
	}

	if c.ProjectKey != "" {
		re := regexp.MustCompile(`\b(` + regexp.QuoteMeta(c.ProjectKey) + `-\d+)\b`)
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			key := text[m[2]:m[3]]
			spans = append(spans, span{
				start:  m[0],
				end:    m[1],
				kind:   kindTicketRef,
				text:   key,
				target: c.browseURL(key),
			})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}

// scanItalic matches single-delimiter emphasis, skipping matches that sit
// directly against another identical delimiter (those characters belong to
// a bold pair).
func scanItalic(text string, re *regexp.Regexp, delim byte) []span {
	var spans []span
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 && text[m[0]-1] == delim {
			continue
		}
		if m[1] < len(text) && text[m[1]] == delim {
			continue
		}
		spans = append(spans, span{start: m[0], end: m[1], kind: kindItalic, text: text[m[2]:m[3]]})
	}
	return spans
}

// browseURL derives the tracker link for a ticket key.
func (c Converter) browseURL(key string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/browse/" + key
}
