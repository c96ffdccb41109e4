package application

import (
	"context"
	"iter"
	"log"
	"sort"

	"localesheet/internal/domain"
	"localesheet/internal/domain/entities"
	"localesheet/internal/ports/input"
	"localesheet/internal/ports/output"
)

// Ensure ExportService implements the input.ExportUseCase port.
var _ input.ExportUseCase = (*ExportService)(nil)

// ExportService pilote la conversion JSON -> tableur: chaque fichier de
// locale est aplati, l'union des clés devient un tableau, le tableau
// est écrit dans le tableur.
type ExportService struct {
	locales  output.LocaleRepository
	table    output.TableRepository
	priority string
}

func NewExportService(
	locales output.LocaleRepository,
	table output.TableRepository,
	priorityLocale string,
) *ExportService {
	return &ExportService{
		locales:  locales,
		table:    table,
		priority: priorityLocale,
	}
}

func (s *ExportService) Export(ctx context.Context) (*input.Summary, error) {
	codes, err := s.locales.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, domain.ErrNoLocaleFiles
	}

	ordered := orderLocales(codes, s.priority)
	byLocale := make(map[string]iter.Seq[entities.FlatEntry], len(ordered))
	for _, code := range ordered {
		tree, err := s.locales.Load(ctx, code)
		if err != nil {
			return nil, err
		}
		if tree.Len() == 0 {
			log.Printf("⚠️ Locale %s: aucune traduction dans le fichier source", code)
		}
		byLocale[code] = domain.Flatten(tree)
	}

	table, err := domain.BuildTable(ordered, byLocale)
	if err != nil {
		return nil, err
	}
	if err := s.table.Write(ctx, table); err != nil {
		return nil, err
	}
	return &input.Summary{Locales: ordered, Keys: table.Len()}, nil
}

// orderLocales place la locale prioritaire en tête des colonnes (si
// présente), les autres restant triées.
func orderLocales(codes []string, priority string) []string {
	ordered := make([]string, 0, len(codes))
	rest := make([]string, 0, len(codes))
	for _, code := range codes {
		if code == priority {
			ordered = append(ordered, code)
			continue
		}
		rest = append(rest, code)
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
