package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"localesheet/internal/domain/entities"
)

func TestTable(t *testing.T) {
	t.Run("rows keep first-seen order", func(t *testing.T) {
		table := entities.NewTable([]string{"en-US", "fr-FR"})
		table.Set("common.ok", "en-US", "OK")
		table.Set("common.cancel", "fr-FR", "Annuler")
		table.Set("common.ok", "fr-FR", "D'accord")

		assert.Equal(t, []string{"common.ok", "common.cancel"}, table.Keys())
		assert.Equal(t, 2, table.Len())
	})

	t.Run("empty cell reads as absent", func(t *testing.T) {
		table := entities.NewTable([]string{"en-US", "fr-FR"})
		table.Set("common.cancel", "fr-FR", "Annuler")

		_, ok := table.Get("common.cancel", "en-US")
		assert.False(t, ok)
		value, ok := table.Get("common.cancel", "fr-FR")
		assert.True(t, ok)
		assert.Equal(t, "Annuler", value)
	})

	t.Run("AddKey registers a row without cells", func(t *testing.T) {
		table := entities.NewTable([]string{"en-US"})
		table.AddKey("only.key")
		table.AddKey("only.key")

		assert.Equal(t, []string{"only.key"}, table.Keys())
	})

	t.Run("Set appends unknown locales in encounter order", func(t *testing.T) {
		table := entities.NewTable(nil)
		table.Set("k", "fr-FR", "a")
		table.Set("k", "de-DE", "b")
		table.Set("k", "fr-FR", "c")

		assert.Equal(t, []string{"fr-FR", "de-DE"}, table.Locales())
	})
}
