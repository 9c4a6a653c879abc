package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	t.Run("accepts an object with surrounding whitespace", func(t *testing.T) {
		doc, err := parseDocument([]byte("  {\"a\":1}\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, doc.getInt("a"))
	})

	t.Run("rejects non-objects", func(t *testing.T) {
		for _, text := range []string{"[]", `"str"`, "17", "true", "null"} {
			_, err := parseDocument([]byte(text))
			assert.ErrorIs(t, err, ErrMalformedInput, text)
		}
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		for _, text := range []string{"", "{", `{"a":}`, `{"a":1,}`} {
			_, err := parseDocument([]byte(text))
			assert.ErrorIs(t, err, ErrMalformedInput, "%q", text)
		}
	})
}

func TestDocumentWriteThrough(t *testing.T) {
	t.Run("sets and deletes keys", func(t *testing.T) {
		doc := newDocument()
		doc.setString("s", "v")
		doc.setInt("n", 42)
		doc.setInt64("n64", 1<<40)
		doc.setBool("b", true)

		assert.Equal(t, "v", doc.getString("s"))
		assert.Equal(t, 42, doc.getInt("n"))
		assert.Equal(t, int64(1)<<40, doc.getInt64("n64"))
		assert.True(t, doc.getBool("b"))
		assert.True(t, doc.has("s"))

		doc.delete("s")
		assert.False(t, doc.has("s"))
		assert.Empty(t, doc.getString("s"))
	})

	t.Run("absent keys resolve to zero values", func(t *testing.T) {
		doc := newDocument()
		assert.Empty(t, doc.getString("missing"))
		assert.Zero(t, doc.getInt("missing"))
		assert.False(t, doc.getBool("missing"))
		assert.Nil(t, doc.object("missing"))
	})

	t.Run("nested objects come back as independent copies", func(t *testing.T) {
		doc, err := parseDocument([]byte(`{"child":{"k":"v"}}`))
		require.NoError(t, err)

		child := doc.object("child")
		require.NotNil(t, child)
		assert.Equal(t, "v", child.getString("k"))

		child.setString("k", "changed")
		assert.Equal(t, "v", doc.object("child").getString("k"))
	})

	t.Run("scalar under key is not an object", func(t *testing.T) {
		doc, err := parseDocument([]byte(`{"child":3}`))
		require.NoError(t, err)
		assert.Nil(t, doc.object("child"))
	})

	t.Run("clone is independent", func(t *testing.T) {
		doc := newDocument()
		doc.setString("k", "v")

		clone := doc.clone()
		clone.setString("k", "other")

		assert.Equal(t, "v", doc.getString("k"))
		assert.Equal(t, "other", clone.getString("k"))
	})
}
