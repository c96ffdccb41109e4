package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localesheet/internal/application"
	"localesheet/internal/domain"
	"localesheet/internal/domain/entities"
)

// fakeLocaleRepo sert les arbres depuis la mémoire et enregistre ce
// qu'on lui demande d'écrire.
type fakeLocaleRepo struct {
	trees   map[string]*entities.Tree
	listErr error
	saveErr error
	saved   map[string]*entities.Tree
}

func (f *fakeLocaleRepo) List(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var codes []string
	for code := range f.trees {
		codes = append(codes, code)
	}
	return codes, nil
}

func (f *fakeLocaleRepo) Load(ctx context.Context, locale string) (*entities.Tree, error) {
	tree, ok := f.trees[locale]
	if !ok {
		return nil, errors.New("locale inconnue: " + locale)
	}
	return tree, nil
}

func (f *fakeLocaleRepo) SaveAll(ctx context.Context, trees map[string]*entities.Tree) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = trees
	return nil
}

// fakeTableRepo garde le dernier tableau écrit et sert celui qu'on lui
// donne à lire.
type fakeTableRepo struct {
	table    *entities.Table
	readErr  error
	writeErr error
	written  *entities.Table
}

func (f *fakeTableRepo) Read(ctx context.Context) (*entities.Table, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.table, nil
}

func (f *fakeTableRepo) Write(ctx context.Context, table *entities.Table) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = table
	return nil
}

func localeTree(pairs map[string]string) *entities.Tree {
	tree := entities.NewTree()
	for key, value := range pairs {
		tree.Attach(key, entities.Leaf(value))
	}
	return tree
}

func TestExportService(t *testing.T) {
	ctx := context.Background()

	t.Run("priority locale leads, others sorted", func(t *testing.T) {
		locales := &fakeLocaleRepo{trees: map[string]*entities.Tree{
			"fr-FR": localeTree(map[string]string{"title": "Accueil"}),
			"de-DE": localeTree(map[string]string{"title": "Start"}),
			"en-US": localeTree(map[string]string{"title": "Home"}),
		}}
		table := &fakeTableRepo{}

		summary, err := application.NewExportService(locales, table, "en-US").Export(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"en-US", "de-DE", "fr-FR"}, summary.Locales)
		require.NotNil(t, table.written)
		assert.Equal(t, []string{"en-US", "de-DE", "fr-FR"}, table.written.Locales())
		assert.Equal(t, 1, summary.Keys)
	})

	t.Run("absent priority locale changes nothing", func(t *testing.T) {
		locales := &fakeLocaleRepo{trees: map[string]*entities.Tree{
			"fr-FR": localeTree(map[string]string{"title": "Accueil"}),
		}}
		table := &fakeTableRepo{}

		summary, err := application.NewExportService(locales, table, "en-US").Export(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"fr-FR"}, summary.Locales)
	})

	t.Run("no locale files", func(t *testing.T) {
		locales := &fakeLocaleRepo{trees: map[string]*entities.Tree{}}
		_, err := application.NewExportService(locales, &fakeTableRepo{}, "en-US").Export(ctx)
		require.ErrorIs(t, err, domain.ErrNoLocaleFiles)
	})

	t.Run("structural conflict aborts before any write", func(t *testing.T) {
		en := entities.NewTree()
		en.Attach("a", entities.Leaf("x")) // a feuille
		fr := entities.NewTree()
		nested := entities.NewTree()
		nested.Attach("b", entities.Leaf("y"))
		fr.Attach("a", nested) // a nœud interne

		locales := &fakeLocaleRepo{trees: map[string]*entities.Tree{"en-US": en, "fr-FR": fr}}
		table := &fakeTableRepo{}

		_, err := application.NewExportService(locales, table, "en-US").Export(ctx)
		require.ErrorIs(t, err, domain.ErrStructuralConflict)
		assert.Nil(t, table.written)
	})

	t.Run("list and write errors propagate", func(t *testing.T) {
		cause := errors.New("disque plein")

		_, err := application.NewExportService(&fakeLocaleRepo{listErr: cause}, &fakeTableRepo{}, "en-US").Export(ctx)
		require.ErrorIs(t, err, cause)

		locales := &fakeLocaleRepo{trees: map[string]*entities.Tree{
			"en-US": localeTree(map[string]string{"title": "Home"}),
		}}
		_, err = application.NewExportService(locales, &fakeTableRepo{writeErr: cause}, "en-US").Export(ctx)
		require.ErrorIs(t, err, cause)
	})
}
