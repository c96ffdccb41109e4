package output

import (
	"context"

	"localesheet/internal/domain/entities"
)

// LocaleRepository donne accès aux fichiers de traductions par locale.
type LocaleRepository interface {
	// List renvoie les codes de locale disponibles, triés.
	List(ctx context.Context) ([]string, error)
	// Load lit l'arbre de traductions de la locale donnée.
	Load(ctx context.Context, locale string) (*entities.Tree, error)
	// SaveAll écrit un fichier par locale, en tout-ou-rien: en cas
	// d'erreur, aucun fichier n'est publié.
	SaveAll(ctx context.Context, trees map[string]*entities.Tree) error
}

// TableRepository lit et écrit le tableur de traductions.
type TableRepository interface {
	Read(ctx context.Context) (*entities.Table, error)
	Write(ctx context.Context, table *entities.Table) error
}
