package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// newMarkdown returns the converter for narrative content fields. Raw HTML in
// the source is omitted from the output.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)
}

// markdownFunc adapts md to a template function.
func markdownFunc(md goldmark.Markdown) func(string) (template.HTML, error) {
	return func(src string) (template.HTML, error) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(src), &buf); err != nil {
			return "", fmt.Errorf("rendering markdown: %w", err)
		}
		return template.HTML(buf.String()), nil
	}
}
