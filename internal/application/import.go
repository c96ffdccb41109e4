package application

import (
	"context"
	"fmt"
	"log"

	"localesheet/internal/domain"
	"localesheet/internal/domain/entities"
	"localesheet/internal/ports/input"
	"localesheet/internal/ports/output"
)

// Ensure ImportService implements the input.ImportUseCase port.
var _ input.ImportUseCase = (*ImportService)(nil)

// ImportService pilote la conversion tableur -> JSON: chaque colonne de
// locale est extraite du tableau, dépliée en arbre, puis tous les
// arbres sont écrits d'un bloc (tout-ou-rien).
type ImportService struct {
	table   output.TableRepository
	locales output.LocaleRepository
}

func NewImportService(
	table output.TableRepository,
	locales output.LocaleRepository,
) *ImportService {
	return &ImportService{
		table:   table,
		locales: locales,
	}
}

func (s *ImportService) Import(ctx context.Context) (*input.Summary, error) {
	table, err := s.table.Read(ctx)
	if err != nil {
		return nil, err
	}

	trees := make(map[string]*entities.Tree)
	var kept []string
	for _, locale := range table.Locales() {
		// Les traducteurs ajoutent parfois des colonnes de notes: toute
		// colonne qui n'est pas un code de locale est ignorée.
		if !entities.IsLocaleCode(locale) {
			log.Printf("⚠️ Colonne %q ignorée: ce n'est pas un code de locale", locale)
			continue
		}
		tree, err := domain.Unflatten(domain.LocaleEntries(table, locale))
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", locale, err)
		}
		trees[locale] = tree
		kept = append(kept, locale)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("aucune colonne de locale dans le tableur: %w", domain.ErrNoLocaleFiles)
	}

	if err := s.locales.SaveAll(ctx, trees); err != nil {
		return nil, err
	}
	return &input.Summary{Locales: kept, Keys: table.Len()}, nil
}
