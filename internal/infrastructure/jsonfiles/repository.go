package jsonfiles

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"localesheet/internal/domain/entities"
	"localesheet/internal/ports/output"
	"localesheet/pkg/atomicdir"
)

// localeFilePattern reconnaît les noms de fichiers de locale attendus
// (ex: fr-FR.json). Tout autre fichier du répertoire est ignoré.
var localeFilePattern = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}\.json$`)

// Ensure Repository implements the output.LocaleRepository port.
var _ output.LocaleRepository = (*Repository)(nil)

// Repository lit et écrit les fichiers de locale <code>.json d'un
// répertoire.
type Repository struct {
	dir string
}

func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// List renvoie les codes de locale trouvés dans le répertoire, triés.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("lecture du répertoire %s: %w", r.dir, err)
	}
	var codes []string
	for _, e := range dirEntries {
		if e.IsDir() || !localeFilePattern.MatchString(e.Name()) {
			continue
		}
		code := strings.TrimSuffix(e.Name(), ".json")
		if !entities.IsLocaleCode(code) {
			continue
		}
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes, nil
}

// Load lit et décode le fichier de la locale donnée.
func (r *Repository) Load(ctx context.Context, locale string) (*entities.Tree, error) {
	path := filepath.Join(r.dir, locale+".json")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("locale %s: %w", locale, err)
	}
	defer f.Close()

	tree, err := DecodeTree(f)
	if err != nil {
		return nil, fmt.Errorf("locale %s (%s): %w", locale, path, err)
	}
	return tree, nil
}

// SaveAll écrit un fichier <code>.json par locale, en tout-ou-rien:
// tout est préparé dans un répertoire temporaire puis publié d'un bloc.
func (r *Repository) SaveAll(ctx context.Context, trees map[string]*entities.Tree) error {
	stage, err := atomicdir.New(r.dir)
	if err != nil {
		return err
	}
	defer stage.Discard()

	for _, code := range slices.Sorted(maps.Keys(trees)) {
		data, err := EncodeTree(trees[code])
		if err != nil {
			return fmt.Errorf("locale %s: %w", code, err)
		}
		if err := stage.WriteFile(code+".json", data); err != nil {
			return fmt.Errorf("locale %s: %w", code, err)
		}
	}
	return stage.Commit()
}
