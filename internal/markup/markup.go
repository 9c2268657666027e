// Package markup converts the ticket description dialect (bold, italic,
// inline code, explicit links, bare URLs, and ticket references) into a
// renderer-agnostic document tree of paragraphs and marked text runs.
package markup

// MarkKind identifies a formatting annotation on a text run.
type MarkKind int

const (
	MarkStrong MarkKind = iota
	MarkEmphasis
	MarkCode
	MarkLink
)

// Mark is a single formatting annotation. Target is set only for MarkLink.
type Mark struct {
	Kind   MarkKind
	Target string
}

// TextRun is a maximal contiguous piece of paragraph text sharing one mark
// set. A run never carries two marks of the same kind.
type TextRun struct {
	Text  string
	Marks []Mark
}

// Paragraph is one blank-line-delimited block of the source, in reading
// order.
type Paragraph struct {
	Runs []TextRun
}

// Document is the conversion output. It always contains at least one
// paragraph; empty input produces a single paragraph with one empty run.
type Document struct {
	Paragraphs []Paragraph
}

// Converter holds the per-tracker settings the scanner needs: the project
// key that ticket references are matched against and the tracker base URL
// their link targets are derived from. The zero value converts plain
// markup with ticket-reference detection disabled.
//
// A Converter is stateless; a single value may be used from multiple
// goroutines.
type Converter struct {
	ProjectKey string
	BaseURL    string
}

// Convert runs the full pipeline over raw description text. It is total:
// malformed or unterminated markup degrades to literal text, and any input
// (including empty) yields a valid Document.
func (c Converter) Convert(raw string) Document {
	paras := splitParagraphs(raw)
	if len(paras) == 0 {
		return Document{Paragraphs: []Paragraph{{Runs: []TextRun{{}}}}}
	}

	doc := Document{Paragraphs: make([]Paragraph, 0, len(paras))}
	for _, text := range paras {
		spans := resolveOverlaps(c.scanSpans(text))
		doc.Paragraphs = append(doc.Paragraphs, Paragraph{Runs: buildRuns(text, spans)})
	}
	return doc
}
