package spreadsheet

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"localesheet/internal/domain"
	"localesheet/internal/domain/entities"
	"localesheet/internal/ports/output"
	"localesheet/pkg/atomicdir"
)

// keyColumn est l'entête de la colonne des clés pointées, seule colonne
// imposée par le format.
const keyColumn = "Key"

// Ensure Repository implements the output.TableRepository port.
var _ output.TableRepository = (*Repository)(nil)

// Repository lit et écrit le tableur de traductions. Le format est
// choisi d'après l'extension du fichier: .xlsx ou .csv.
type Repository struct {
	path string
}

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

func (r *Repository) Read(ctx context.Context) (*entities.Table, error) {
	var rows [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(r.path)); ext {
	case ".xlsx":
		rows, err = readXLSX(r.path)
	case ".csv":
		rows, err = readCSV(r.path)
	default:
		return nil, fmt.Errorf("tableur %s: extension %q non gérée (attendu .xlsx ou .csv)", r.path, ext)
	}
	if err != nil {
		return nil, err
	}
	table, err := tableFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("tableur %s: %w", r.path, err)
	}
	return table, nil
}

func (r *Repository) Write(ctx context.Context, table *entities.Table) error {
	rows := rowsFromTable(table)
	switch ext := strings.ToLower(filepath.Ext(r.path)); ext {
	case ".xlsx":
		return writeXLSX(r.path, rows)
	case ".csv":
		return writeCSV(r.path, rows)
	default:
		return fmt.Errorf("tableur %s: extension %q non gérée (attendu .xlsx ou .csv)", r.path, ext)
	}
}

// publish écrit le tableur au chemin donné via une étape temporaire:
// si l'écriture échoue, aucun fichier tronqué n'est laissé en place et
// un export précédent n'est jamais écrasé.
func publish(path string, data []byte) error {
	stage, err := atomicdir.New(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("tableur %s: %w", path, err)
	}
	defer stage.Discard()

	if err := stage.WriteFile(filepath.Base(path), data); err != nil {
		return fmt.Errorf("tableur %s: %w", path, err)
	}
	if err := stage.Commit(); err != nil {
		return fmt.Errorf("tableur %s: %w", path, err)
	}
	return nil
}

// tableFromRows reconstruit le tableau depuis les lignes brutes. La
// première ligne est l'entête; elle doit contenir la colonne Key.
func tableFromRows(rows [][]string) (*entities.Table, error) {
	if len(rows) == 0 {
		return nil, domain.ErrMalformedTable
	}
	header := rows[0]
	keyIdx := slices.Index(header, keyColumn)
	if keyIdx < 0 {
		return nil, domain.ErrMalformedTable
	}

	var locales []string
	for i, name := range header {
		if i != keyIdx && name != "" {
			locales = append(locales, name)
		}
	}

	table := entities.NewTable(locales)
	for _, row := range rows[1:] {
		if keyIdx >= len(row) || row[keyIdx] == "" {
			continue
		}
		key := row[keyIdx]
		table.AddKey(key)
		for i, name := range header {
			if i == keyIdx || name == "" || i >= len(row) {
				continue
			}
			if value := row[i]; value != "" {
				table.Set(key, name, value)
			}
		}
	}
	return table, nil
}

// rowsFromTable met le tableau à plat: entête Key + locales, puis une
// ligne par clé, cellules vides pour les traductions absentes.
func rowsFromTable(table *entities.Table) [][]string {
	header := append([]string{keyColumn}, table.Locales()...)
	rows := make([][]string, 0, table.Len()+1)
	rows = append(rows, header)
	for _, key := range table.Keys() {
		row := make([]string, 0, len(header))
		row = append(row, key)
		for _, locale := range table.Locales() {
			value, _ := table.Get(key, locale)
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	return rows
}
