package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestParseFrontMatter(t *testing.T) {
	tests := []struct {
		title        string
		input        string
		expectedData map[string]any
		expectedBody string
	}{
		{
			title:        "Simple",
			input:        "---\ntitle: Hello\n---\nBody text\n",
			expectedData: map[string]any{"title": "Hello"},
			expectedBody: "Body text\n",
		},
		{
			title:        "No Front Matter",
			input:        "Just some text\n---\nmore\n",
			expectedData: map[string]any{},
			expectedBody: "Just some text\n---\nmore\n",
		},
		{
			title:        "Unclosed Front Matter",
			input:        "---\ntitle: Hello\nBody text\n",
			expectedData: map[string]any{},
			expectedBody: "---\ntitle: Hello\nBody text\n",
		},
		{
			title:        "Malformed YAML",
			input:        "---\ntitle: [unclosed\n---\nBody\n",
			expectedData: map[string]any{},
			expectedBody: "Body\n",
		},
		{
			title:        "Not A Mapping",
			input:        "---\n- a\n- b\n---\nBody\n",
			expectedData: map[string]any{},
			expectedBody: "Body\n",
		},
		{
			title:        "Empty Block",
			input:        "---\n---\nBody\n",
			expectedData: map[string]any{},
			expectedBody: "Body\n",
		},
		{
			title:        "CRLF Line Endings",
			input:        "---\r\ntitle: Hello\r\n---\r\nBody\r\n",
			expectedData: map[string]any{"title": "Hello"},
			expectedBody: "Body\r\n",
		},
		{
			title:        "Body Kept Byte For Byte",
			input:        "---\ntags: [a, b]\n---\n\n# Heading\n\n---\n\nText  ",
			expectedData: map[string]any{"tags": []any{"a", "b"}},
			expectedBody: "\n# Heading\n\n---\n\nText  ",
		},
		{
			title:        "Fence Without Body",
			input:        "---\nid: 3\n---",
			expectedData: map[string]any{"id": 3},
			expectedBody: "",
		},
		{
			title:        "Empty File",
			input:        "",
			expectedData: map[string]any{},
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		data, body := ParseFrontMatter(tt.input)
		assert.Equal(t, tt.expectedData, data, "failed for title: %s", tt.title)
		assert.Equal(t, tt.expectedBody, body, "failed for title: %s", tt.title)
	}
}

func TestParseFrontMatterRoundTrip(t *testing.T) {
	data := map[string]any{
		"title":    "Round Trip",
		"id":       7,
		"featured": true,
		"tags":     []any{"go", "yaml"},
	}
	body := "Some **markdown**.\n\n---\n\nAfter a rule.\n"

	block, err := yaml.Marshal(data)
	require.NoError(t, err)

	parsedData, parsedBody := ParseFrontMatter("---\n" + string(block) + "---\n" + body)
	assert.Equal(t, data, parsedData)
	assert.Equal(t, body, parsedBody)
}
