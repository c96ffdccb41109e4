package jsonfiles_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localesheet/internal/domain"
	"localesheet/internal/infrastructure/jsonfiles"
)

func TestDecodeTree(t *testing.T) {
	t.Run("preserves document key order", func(t *testing.T) {
		tree, err := jsonfiles.DecodeTree(strings.NewReader(
			`{"zulu": "z", "alpha": {"beta": "b", "aaa": "a"}, "mike": "m"}`,
		))
		require.NoError(t, err)

		assert.Equal(t, []string{"zulu", "alpha", "mike"}, tree.Keys())
		alpha, ok := tree.Child("alpha")
		require.True(t, ok)
		assert.Equal(t, []string{"beta", "aaa"}, alpha.Keys())
	})

	t.Run("null leaves are dropped", func(t *testing.T) {
		tree, err := jsonfiles.DecodeTree(strings.NewReader(`{"a": null, "b": "ok"}`))
		require.NoError(t, err)

		_, ok := tree.Child("a")
		assert.False(t, ok)
		assert.Equal(t, []string{"b"}, tree.Keys())
	})

	t.Run("number leaf is rejected", func(t *testing.T) {
		_, err := jsonfiles.DecodeTree(strings.NewReader(`{"a": {"b": 42}}`))
		require.ErrorIs(t, err, domain.ErrInvalidLeafType)
		assert.Contains(t, err.Error(), `"a.b"`)
	})

	t.Run("boolean leaf is rejected", func(t *testing.T) {
		_, err := jsonfiles.DecodeTree(strings.NewReader(`{"a": true}`))
		require.ErrorIs(t, err, domain.ErrInvalidLeafType)
	})

	t.Run("array leaf is rejected", func(t *testing.T) {
		_, err := jsonfiles.DecodeTree(strings.NewReader(`{"a": ["x"]}`))
		require.ErrorIs(t, err, domain.ErrInvalidLeafType)
	})

	t.Run("root must be an object", func(t *testing.T) {
		for _, doc := range []string{`"text"`, `[1]`, `42`} {
			_, err := jsonfiles.DecodeTree(strings.NewReader(doc))
			assert.Error(t, err, doc)
		}
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		_, err := jsonfiles.DecodeTree(strings.NewReader(`{"a": "b"`))
		assert.Error(t, err)
	})

	t.Run("trailing garbage is an error", func(t *testing.T) {
		_, err := jsonfiles.DecodeTree(strings.NewReader(`{"a": "b"} {}`))
		assert.Error(t, err)
	})
}

func TestEncodeTree(t *testing.T) {
	t.Run("two-space indent, insertion order, raw UTF-8", func(t *testing.T) {
		tree, err := jsonfiles.DecodeTree(strings.NewReader(
			`{"zulu": "éèà", "alpha": {"beta": "a <b> & c"}}`,
		))
		require.NoError(t, err)

		data, err := jsonfiles.EncodeTree(tree)
		require.NoError(t, err)

		assert.Equal(t, `{
  "zulu": "éèà",
  "alpha": {
    "beta": "a <b> & c"
  }
}
`, string(data))
	})

	t.Run("empty tree encodes to an empty object", func(t *testing.T) {
		tree, err := jsonfiles.DecodeTree(strings.NewReader(`{}`))
		require.NoError(t, err)

		data, err := jsonfiles.EncodeTree(tree)
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(data))
	})

	t.Run("decode-encode round trip is stable", func(t *testing.T) {
		doc := `{
  "common": {
    "ok": "OK",
    "cancel": "Annuler"
  },
  "title": "Accueil"
}
`
		tree, err := jsonfiles.DecodeTree(strings.NewReader(doc))
		require.NoError(t, err)
		data, err := jsonfiles.EncodeTree(tree)
		require.NoError(t, err)
		assert.Equal(t, doc, string(data))
	})
}
