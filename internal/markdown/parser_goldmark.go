package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// GoldmarkParser renders case study bodies with the goldmark engine. The
// parser is stateless so callers can reuse a single instance without locking.
type GoldmarkParser struct {
	engine goldmark.Markdown
}

// NewGoldmarkParser constructs a parser with GFM extensions and auto heading
// IDs enabled.
func NewGoldmarkParser() *GoldmarkParser {
	return &GoldmarkParser{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts a Markdown body into HTML.
func (p *GoldmarkParser) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// Paragraphs walks the Markdown AST and returns the top-level paragraph texts
// in document order. Headings, lists and images are skipped so the result maps
// onto the prose description of a project.
func (p *GoldmarkParser) Paragraphs(source []byte) []string {
	doc := p.engine.Parser().Parse(text.NewReader(source))

	var out []string
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		paragraph, ok := node.(*ast.Paragraph)
		if !ok {
			continue
		}
		content := strings.TrimSpace(string(paragraph.Text(source)))
		if content == "" {
			continue
		}
		out = append(out, content)
	}
	return out
}
