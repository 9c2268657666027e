// Package adf maps the markup document tree to and from Atlassian
// Document Format, the JSON shape Jira expects for descriptions and
// comments.
package adf

import (
	"strings"

	"github.com/mkunkel/tix/internal/markup"
)

// Node is a single ADF node. Paragraph nodes carry Content, text nodes
// carry Text and Marks.
type Node struct {
	Type    string                 `json:"type"`
	Text    string                 `json:"text,omitempty"`
	Marks   []Mark                 `json:"marks,omitempty"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Content []Node                 `json:"content,omitempty"`
}

// Mark is a formatting annotation on a text node.
type Mark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// Doc is a complete ADF document (always version 1).
type Doc struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	Content []Node `json:"content"`
}

// FromDocument converts a markup document tree into its ADF wire form.
// The mapping is structural and lossless: one paragraph node per
// paragraph, one text node per run, marks in a fixed strong/em/code/link
// order.
func FromDocument(d markup.Document) Doc {
	content := make([]Node, 0, len(d.Paragraphs))
	for _, p := range d.Paragraphs {
		para := Node{Type: "paragraph", Content: make([]Node, 0, len(p.Runs))}
		for _, r := range p.Runs {
			para.Content = append(para.Content, Node{
				Type:  "text",
				Text:  r.Text,
				Marks: wireMarks(r.Marks),
			})
		}
		content = append(content, para)
	}
	return Doc{Type: "doc", Version: 1, Content: content}
}

// wireMarks emits marks in a fixed order so serialized output is
// deterministic regardless of scan order.
func wireMarks(marks []markup.Mark) []Mark {
	if len(marks) == 0 {
		return nil
	}
	byKind := make(map[markup.MarkKind]markup.Mark, len(marks))
	for _, m := range marks {
		byKind[m.Kind] = m
	}

	var out []Mark
	if _, ok := byKind[markup.MarkStrong]; ok {
		out = append(out, Mark{Type: "strong"})
	}
	if _, ok := byKind[markup.MarkEmphasis]; ok {
		out = append(out, Mark{Type: "em"})
	}
	if _, ok := byKind[markup.MarkCode]; ok {
		out = append(out, Mark{Type: "code"})
	}
	if m, ok := byKind[markup.MarkLink]; ok {
		out = append(out, Mark{Type: "link", Attrs: map[string]interface{}{"href": m.Target}})
	}
	return out
}

// ToMarkdown renders an ADF document back into the markup dialect, for
// terminal display of fetched descriptions. Nodes outside the dialect
// (lists, headings, media) are flattened to their text content.
func ToMarkdown(d Doc) string {
	var parts []string
	for _, n := range d.Content {
		if s := nodeText(n); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func nodeText(n Node) string {
	if n.Type == "text" {
		return decorate(n.Text, n.Marks)
	}

	var b strings.Builder
	for _, child := range n.Content {
		b.WriteString(nodeText(child))
	}
	return b.String()
}

func decorate(text string, marks []Mark) string {
	for _, m := range marks {
		switch m.Type {
		case "strong":
			text = "**" + text + "**"
		case "em":
			text = "*" + text + "*"
		case "code":
			text = "`" + text + "`"
		case "link":
			if href, ok := m.Attrs["href"].(string); ok && href != text {
				text = "[" + text + "](" + href + ")"
			}
		}
	}
	return text
}
