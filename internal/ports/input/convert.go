package input

import "context"

// ExportUseCase convertit les fichiers de locale JSON en un tableur.
type ExportUseCase interface {
	Export(ctx context.Context) (*Summary, error)
}

// ImportUseCase convertit le tableur en fichiers de locale JSON.
type ImportUseCase interface {
	Import(ctx context.Context) (*Summary, error)
}

// Summary décrit le résultat d'une conversion réussie.
type Summary struct {
	// Locales converties, dans l'ordre de traitement.
	Locales []string
	// Keys est le nombre de clés pointées distinctes.
	Keys int
}
