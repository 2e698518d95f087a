package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCollection(t *testing.T) {
	co := newTestCore(t, map[string]string{
		"content/posts/b-post.md":       "---\ntitle: B\n---\nB body",
		"content/posts/a-post.md":       "---\ntitle: A\n---\nA body",
		"content/posts/notes.txt":       "not markdown",
		"content/posts/drafts/draft.md": "---\ntitle: Draft\n---\n",
		"content/posts/c-post.md":       "No front matter",
	})

	raws, err := co.ReadCollection("content/posts")
	require.NoError(t, err)
	require.Len(t, raws, 3)

	assert.Equal(t, "a-post", raws[0].Slug)
	assert.Equal(t, map[string]any{"title": "A"}, raws[0].Data)
	assert.Equal(t, "A body", raws[0].Content)

	assert.Equal(t, "b-post", raws[1].Slug)

	assert.Equal(t, "c-post", raws[2].Slug)
	assert.Empty(t, raws[2].Data)
	assert.Equal(t, "No front matter", raws[2].Content)
}

func TestReadCollectionMissingDirectory(t *testing.T) {
	co := newTestCore(t, nil)

	_, err := co.ReadCollection("content/nothing")
	require.Error(t, err)
}

func TestReadContent(t *testing.T) {
	co := newTestCore(t, map[string]string{
		"content/posts/hello.md": "---\ntitle: Hello\n---\nWorld",
		"secret.md":              "---\ntitle: Secret\n---\n",
	})

	raw, err := co.ReadContent("content/posts", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", raw.Slug)
	assert.Equal(t, "World", raw.Content)

	for _, slug := range []string{"missing", "", ".", "../../secret", "../posts/hello", "a/b", `a\b`} {
		_, err = co.ReadContent("content/posts", slug)
		assert.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}
}
