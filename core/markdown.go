package core

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
		parser.WithAttribute(),
	),
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Footnote,
		extension.Typographer,
		extension.Linkify,
		extension.TaskList,
	),
)

// RenderMarkdown converts a markdown body into HTML. Raw HTML is kept.
func RenderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var htmlRemover = bluemonday.StrictPolicy()

// makePlainText returns the visible text of a markdown body, with all
// whitespace runs collapsed into single spaces. Raw HTML tags are dropped
// together with the contents of scripts and styles.
func makePlainText(content string) string {
	rendered, err := RenderMarkdown(content)
	if err != nil {
		rendered = content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlRemover.Sanitize(rendered)))
	if err != nil {
		return strings.Join(strings.Fields(content), " ")
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}

func truncateStringWithEllipsis(str string, length int) string {
	runes := []rune(str)
	if len(runes) <= length {
		return str
	}

	cut := strings.TrimSpace(string(runes[:length]))
	if i := strings.LastIndexByte(cut, ' '); i > len(cut)/2 {
		cut = cut[:i]
	}

	return strings.TrimRight(cut, ",.;:") + "…"
}

func countWords(content string) int {
	return len(strings.Fields(makePlainText(content)))
}
