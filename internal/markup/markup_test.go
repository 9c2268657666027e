package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertPlainText(t *testing.T) {
	doc := Converter{}.Convert("just a sentence")

	expected := Document{Paragraphs: []Paragraph{
		{Runs: []TextRun{{Text: "just a sentence"}}},
	}}
	if diff := cmp.Diff(expected, doc); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertEmptyInputs(t *testing.T) {
	expected := Document{Paragraphs: []Paragraph{{Runs: []TextRun{{}}}}}

	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n  "},
		{"newlines only", "\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Converter{}.Convert(tt.input)
			if diff := cmp.Diff(expected, doc); diff != "" {
				t.Errorf("Convert(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestConvertBoldRoundTrip(t *testing.T) {
	doc := Converter{}.Convert("**x**")

	expected := Document{Paragraphs: []Paragraph{
		{Runs: []TextRun{{Text: "x", Marks: []Mark{{Kind: MarkStrong}}}}},
	}}
	if diff := cmp.Diff(expected, doc); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertLinkPrecedence(t *testing.T) {
	doc := Converter{}.Convert("[T](https://t.example/browse/T)")

	expected := Document{Paragraphs: []Paragraph{
		{Runs: []TextRun{{Text: "T", Marks: []Mark{{Kind: MarkLink, Target: "https://t.example/browse/T"}}}}},
	}}
	if diff := cmp.Diff(expected, doc); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertTicketReference(t *testing.T) {
	c := Converter{ProjectKey: "TEST", BaseURL: "https://t.example"}
	doc := c.Convert("See TEST-123 for detail")

	expected := Document{Paragraphs: []Paragraph{
		{Runs: []TextRun{
			{Text: "See "},
			{Text: "TEST-123", Marks: []Mark{{Kind: MarkLink, Target: "https://t.example/browse/TEST-123"}}},
			{Text: " for detail"},
		}},
	}}
	if diff := cmp.Diff(expected, doc); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertParagraphSegmentation(t *testing.T) {
	doc := Converter{}.Convert("Para 1\n\nPara 2")

	expected := Document{Paragraphs: []Paragraph{
		{Runs: []TextRun{{Text: "Para 1"}}},
		{Runs: []TextRun{{Text: "Para 2"}}},
	}}
	if diff := cmp.Diff(expected, doc); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertNoDoubleLinking(t *testing.T) {
	c := Converter{ProjectKey: "TEST", BaseURL: "https://t.example"}
	doc := c.Convert("[TEST-123](https://x/browse/TEST-123)")

	if len(doc.Paragraphs) != 1 {
		t.Fatalf("expected one paragraph, got %d", len(doc.Paragraphs))
	}
	runs := doc.Paragraphs[0].Runs
	links := 0
	for _, r := range runs {
		for _, m := range r.Marks {
			if m.Kind == MarkLink {
				links++
			}
		}
	}
	if links != 1 {
		t.Errorf("expected exactly one link-marked run, got %d in %+v", links, runs)
	}
	if runs[0].Text != "TEST-123" || runs[0].Marks[0].Target != "https://x/browse/TEST-123" {
		t.Errorf("unexpected link run %+v", runs[0])
	}
}

func TestConvertMixedParagraph(t *testing.T) {
	c := Converter{ProjectKey: "OPS", BaseURL: "https://jira.example"}
	doc := c.Convert("Deploy **now**: see OPS-9, run `make ship`\n\nDetails at https://wiki.example/ship")

	expected := Document{Paragraphs: []Paragraph{
		{Runs: []TextRun{
			{Text: "Deploy "},
			{Text: "now", Marks: []Mark{{Kind: MarkStrong}}},
			{Text: ": see "},
			{Text: "OPS-9", Marks: []Mark{{Kind: MarkLink, Target: "https://jira.example/browse/OPS-9"}}},
			{Text: ", run "},
			{Text: "make ship", Marks: []Mark{{Kind: MarkCode}}},
		}},
		{Runs: []TextRun{
			{Text: "Details at "},
			{Text: "https://wiki.example/ship", Marks: []Mark{{Kind: MarkLink, Target: "https://wiki.example/ship"}}},
		}},
	}}
	if diff := cmp.Diff(expected, doc); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single paragraph", "one block", []string{"one block"}},
		{"blank line split", "a\n\nb", []string{"a", "b"}},
		{"blank line with spaces", "a\n  \t\nb", []string{"a", "b"}},
		{"many blank lines collapse", "a\n\n\n\n\nb", []string{"a", "b"}},
		{"single newline does not split", "a\nb", []string{"a\nb"}},
		{"leading and trailing blanks trimmed", "\n\na\n\n", []string{"a"}},
		{"empty", "", nil},
		{"whitespace only", "  \n ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := splitParagraphs(tt.input)
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("splitParagraphs(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
