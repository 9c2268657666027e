package adf

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mkunkel/tix/internal/markup"
)

func TestFromDocument(t *testing.T) {
	doc := markup.Document{Paragraphs: []markup.Paragraph{
		{Runs: []markup.TextRun{
			{Text: "see "},
			{Text: "TEST-1", Marks: []markup.Mark{{Kind: markup.MarkLink, Target: "https://t.example/browse/TEST-1"}}},
		}},
		{Runs: []markup.TextRun{
			{Text: "bold", Marks: []markup.Mark{{Kind: markup.MarkStrong}}},
		}},
	}}

	expected := Doc{
		Type:    "doc",
		Version: 1,
		Content: []Node{
			{Type: "paragraph", Content: []Node{
				{Type: "text", Text: "see "},
				{Type: "text", Text: "TEST-1", Marks: []Mark{
					{Type: "link", Attrs: map[string]interface{}{"href": "https://t.example/browse/TEST-1"}},
				}},
			}},
			{Type: "paragraph", Content: []Node{
				{Type: "text", Text: "bold", Marks: []Mark{{Type: "strong"}}},
			}},
		},
	}

	if diff := cmp.Diff(expected, FromDocument(doc)); diff != "" {
		t.Errorf("FromDocument mismatch (-want +got):\n%s", diff)
	}
}

func TestFromDocumentEmptyRun(t *testing.T) {
	doc := markup.Converter{}.Convert("")
	wire := FromDocument(doc)

	data, err := json.Marshal(wire)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	expected := `{"type":"doc","version":1,"content":[{"type":"paragraph","content":[{"type":"text"}]}]}`
	if string(data) != expected {
		t.Errorf("wire JSON = %s, want %s", data, expected)
	}
}

func TestWireMarkOrderDeterministic(t *testing.T) {
	run := markup.TextRun{Text: "x", Marks: []markup.Mark{
		{Kind: markup.MarkLink, Target: "https://e.example"},
		{Kind: markup.MarkStrong},
	}}
	wire := FromDocument(markup.Document{Paragraphs: []markup.Paragraph{{Runs: []markup.TextRun{run}}}})

	marks := wire.Content[0].Content[0].Marks
	if len(marks) != 2 || marks[0].Type != "strong" || marks[1].Type != "link" {
		t.Errorf("unexpected mark order: %+v", marks)
	}
}

func TestToMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		doc      Doc
		expected string
	}{
		{
			name: "paragraphs with marks",
			doc: Doc{Type: "doc", Version: 1, Content: []Node{
				{Type: "paragraph", Content: []Node{
					{Type: "text", Text: "a "},
					{Type: "text", Text: "b", Marks: []Mark{{Type: "strong"}}},
				}},
				{Type: "paragraph", Content: []Node{
					{Type: "text", Text: "c", Marks: []Mark{{Type: "code"}}},
				}},
			}},
			expected: "a **b**\n\n`c`",
		},
		{
			name: "bare url link keeps literal form",
			doc: Doc{Type: "doc", Version: 1, Content: []Node{
				{Type: "paragraph", Content: []Node{
					{Type: "text", Text: "https://e.example", Marks: []Mark{
						{Type: "link", Attrs: map[string]interface{}{"href": "https://e.example"}},
					}},
				}},
			}},
			expected: "https://e.example",
		},
		{
			name: "unknown nodes flatten to text",
			doc: Doc{Type: "doc", Version: 1, Content: []Node{
				{Type: "bulletList", Content: []Node{
					{Type: "listItem", Content: []Node{
						{Type: "paragraph", Content: []Node{{Type: "text", Text: "item"}}},
					}},
				}},
			}},
			expected: "item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToMarkdown(tt.doc); got != tt.expected {
				t.Errorf("ToMarkdown = %q, want %q", got, tt.expected)
			}
		})
	}
}

// Round trip through the converter and the wire mapping: visible text is
// preserved for dialect-only input.
func TestRoundTrip(t *testing.T) {
	c := markup.Converter{ProjectKey: "TEST", BaseURL: "https://t.example"}
	input := "Fix **login** flow\n\nTracked in TEST-44, see `auth.go`"

	md := ToMarkdown(FromDocument(c.Convert(input)))
	// Ticket references come back as explicit links to their browse URL.
	expected := "Fix **login** flow\n\nTracked in [TEST-44](https://t.example/browse/TEST-44), see `auth.go`"
	if md != expected {
		t.Errorf("round trip = %q, want %q", md, expected)
	}
}
