package markup

import (
	"regexp"
	"sort"
)

// buildRuns walks the resolved span list alongside the paragraph text and
// emits the ordered run sequence. Spans become runs carrying their kind's
// mark; the gaps between and around spans are re-scanned with the reduced
// bold/code rule. Concatenating the run texts reproduces the paragraph
// minus the consumed markup syntax.
func buildRuns(text string, spans []span) []TextRun {
	var runs []TextRun
	cursor := 0

	for _, s := range spans {
		if s.start > cursor {
			runs = appendGapRuns(runs, text[cursor:s.start], nil)
		}
		runs = append(runs, spanRun(s))
		cursor = s.end
	}
	if cursor < len(text) {
		runs = appendGapRuns(runs, text[cursor:], nil)
	}

	if len(runs) == 0 {
		runs = []TextRun{{}}
	}
	return runs
}

// spanRun converts one resolved span into its text run.
func spanRun(s span) TextRun {
	switch s.kind {
	case kindBold:
		return TextRun{Text: s.text, Marks: []Mark{{Kind: MarkStrong}}}
	case kindItalic:
		return TextRun{Text: s.text, Marks: []Mark{{Kind: MarkEmphasis}}}
	case kindCode:
		return TextRun{Text: s.text, Marks: []Mark{{Kind: MarkCode}}}
	default: // kindExplicitLink, kindURL, kindTicketRef
		return TextRun{Text: s.text, Marks: []Mark{{Kind: MarkLink, Target: s.target}}}
	}
}

// gapMatch is a reduced-scanner hit inside a gap.
type gapMatch struct {
	start, end int
	inner      string
	kind       MarkKind
}

// appendGapRuns splits gap text on the reduced markup subset (bold via
// `**`/`__`, inline code via backticks) and appends the resulting runs.
// inherited marks are applied to every emitted run; the matched pieces
// additionally carry their own mark. An unmatched gap becomes one plain
// run.
func appendGapRuns(runs []TextRun, gap string, inherited []Mark) []TextRun {
	if gap == "" {
		return runs
	}

	var matches []gapMatch
	for _, p := range []struct {
		re   *regexp.Regexp
		kind MarkKind
	}{
		{reBoldStar, MarkStrong},
		{reBoldUnder, MarkStrong},
		{reCode, MarkCode},
	} {
		for _, m := range p.re.FindAllStringSubmatchIndex(gap, -1) {
			matches = append(matches, gapMatch{start: m[0], end: m[1], inner: gap[m[2]:m[3]], kind: p.kind})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	cursor := 0
	for _, m := range matches {
		if m.start < cursor {
			continue
		}
		if m.start > cursor {
			runs = append(runs, TextRun{Text: gap[cursor:m.start], Marks: cloneMarks(inherited)})
		}
		runs = append(runs, TextRun{Text: m.inner, Marks: withMark(inherited, Mark{Kind: m.kind})})
		cursor = m.end
	}
	if cursor < len(gap) {
		runs = append(runs, TextRun{Text: gap[cursor:], Marks: cloneMarks(inherited)})
	}
	return runs
}

func cloneMarks(marks []Mark) []Mark {
	if len(marks) == 0 {
		return nil
	}
	out := make([]Mark, len(marks))
	copy(out, marks)
	return out
}

// withMark appends m to a copy of inherited, replacing an existing mark of
// the same kind so a run never carries duplicates.
func withMark(inherited []Mark, m Mark) []Mark {
	out := make([]Mark, 0, len(inherited)+1)
	for _, im := range inherited {
		if im.Kind != m.Kind {
			out = append(out, im)
		}
	}
	return append(out, m)
}
