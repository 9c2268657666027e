package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildRuns(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		spans    []span
		expected []TextRun
	}{
		{
			name:     "empty text yields one empty run",
			text:     "",
			spans:    nil,
			expected: []TextRun{{}},
		},
		{
			name:     "no spans yields plain run",
			text:     "hello world",
			spans:    nil,
			expected: []TextRun{{Text: "hello world"}},
		},
		{
			name: "span with leading and trailing gaps",
			text: "see TEST-1 now",
			spans: []span{
				{start: 4, end: 10, kind: kindTicketRef, text: "TEST-1", target: "https://t.example/browse/TEST-1"},
			},
			expected: []TextRun{
				{Text: "see "},
				{Text: "TEST-1", Marks: []Mark{{Kind: MarkLink, Target: "https://t.example/browse/TEST-1"}}},
				{Text: " now"},
			},
		},
		{
			name: "gap text rescanned for bold and code",
			text: "a **b** and `c` end",
			spans: []span{
				{start: 12, end: 15, kind: kindCode, text: "c"},
			},
			expected: []TextRun{
				{Text: "a "},
				{Text: "b", Marks: []Mark{{Kind: MarkStrong}}},
				{Text: " and "},
				{Text: "c", Marks: []Mark{{Kind: MarkCode}}},
				{Text: " end"},
			},
		},
		{
			name: "adjacent spans emit no gap",
			text: "**a**`b`",
			spans: []span{
				{start: 0, end: 5, kind: kindBold, text: "a"},
				{start: 5, end: 8, kind: kindCode, text: "b"},
			},
			expected: []TextRun{
				{Text: "a", Marks: []Mark{{Kind: MarkStrong}}},
				{Text: "b", Marks: []Mark{{Kind: MarkCode}}},
			},
		},
		{
			name: "bold inner text is not reparsed",
			text: "**b *i* b**",
			spans: []span{
				{start: 0, end: 11, kind: kindBold, text: "b *i* b"},
			},
			expected: []TextRun{
				{Text: "b *i* b", Marks: []Mark{{Kind: MarkStrong}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := buildRuns(tt.text, tt.spans)
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("buildRuns(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestAppendGapRunsInheritedMarks(t *testing.T) {
	inherited := []Mark{{Kind: MarkEmphasis}}
	runs := appendGapRuns(nil, "plain **strong** tail", inherited)

	expected := []TextRun{
		{Text: "plain ", Marks: []Mark{{Kind: MarkEmphasis}}},
		{Text: "strong", Marks: []Mark{{Kind: MarkEmphasis}, {Kind: MarkStrong}}},
		{Text: " tail", Marks: []Mark{{Kind: MarkEmphasis}}},
	}
	if diff := cmp.Diff(expected, runs); diff != "" {
		t.Errorf("inherited marks mismatch (-want +got):\n%s", diff)
	}
}

func TestWithMarkNoDuplicateKinds(t *testing.T) {
	marks := withMark([]Mark{{Kind: MarkStrong}}, Mark{Kind: MarkStrong})
	if len(marks) != 1 {
		t.Errorf("expected a single strong mark, got %v", marks)
	}
}

// Concatenated run text must reproduce the paragraph minus consumed
// syntax characters.
func TestBuildRunsContentPreservation(t *testing.T) {
	c := Converter{ProjectKey: "TEST", BaseURL: "https://t.example"}

	inputs := []struct {
		text    string
		visible string
	}{
		{"plain text stays put", "plain text stays put"},
		{"**bold** and `code`", "bold and code"},
		{"see TEST-7 and https://e.example/x now", "see TEST-7 and https://e.example/x now"},
		{"broken **markup stays literal", "broken **markup stays literal"},
	}

	for _, tt := range inputs {
		spans := resolveOverlaps(c.scanSpans(tt.text))
		runs := buildRuns(tt.text, spans)

		var b strings.Builder
		for _, r := range runs {
			b.WriteString(r.Text)
		}
		if b.String() != tt.visible {
			t.Errorf("content for %q = %q, want %q", tt.text, b.String(), tt.visible)
		}
	}
}
