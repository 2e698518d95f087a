package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakePlainText(t *testing.T) {
	tests := []struct {
		title    string
		input    string
		expected string
	}{
		{
			title:    "Plain Text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			title:    "Heading With Attribute",
			input:    "\n\n## Hello, World! {#saturday}\n\n",
			expected: "Hello, World!",
		},
		{
			title:    "Link",
			input:    "Read [the docs](https://example.com) first.",
			expected: "Read the docs first.",
		},
		{
			title:    "More",
			input:    "\n<!--more-->\n",
			expected: "",
		},
		{
			title:    "Raw Script And Style",
			input:    "Before.\n\n<script>alert('x')</script>\n\n<style>p { color: red; }</style>\n\nAfter.",
			expected: "Before. After.",
		},
		{
			title:    "Raw Inline HTML And Entities",
			input:    "Tom &amp; <span class=\"x\">Jerry</span> say hi.",
			expected: "Tom & Jerry say hi.",
		},
		{
			title:    "Paragraphs And Emphasis",
			input:    "First *paragraph*.\n\nSecond   **paragraph**.",
			expected: "First paragraph. Second paragraph.",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, makePlainText(tt.input), "failed for title: %s", tt.title)
	}
}

func TestTruncateStringWithEllipsis(t *testing.T) {
	tests := []struct {
		title    string
		input    string
		length   int
		expected string
	}{
		{
			title:    "Short",
			input:    "Hello",
			length:   10,
			expected: "Hello",
		},
		{
			title:    "Exact",
			input:    "Hello",
			length:   5,
			expected: "Hello",
		},
		{
			title:    "Word Boundary",
			input:    "The quick brown fox jumps",
			length:   12,
			expected: "The quick…",
		},
		{
			title:    "Trailing Punctuation",
			input:    "Hello, beautiful world",
			length:   7,
			expected: "Hello…",
		},
		{
			title:    "Multibyte",
			input:    "ééééé ééééé",
			length:   8,
			expected: "ééééé…",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, truncateStringWithEllipsis(tt.input, tt.length), "failed for title: %s", tt.title)
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Title\n\nSome `code` and a [link](https://example.com).\n\n<div class=\"raw\">kept</div>\n")
	require.NoError(t, err)

	assert.True(t, strings.Contains(html, `<h1 id="title">Title</h1>`), html)
	assert.Contains(t, html, "<code>code</code>")
	assert.Contains(t, html, `<a href="https://example.com">link</a>`)
	assert.Contains(t, html, `<div class="raw">kept</div>`)
}
