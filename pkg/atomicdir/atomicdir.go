// Package atomicdir écrit un lot de fichiers dans un répertoire en
// tout-ou-rien: les fichiers sont d'abord préparés dans un répertoire
// temporaire voisin, puis déplacés en place au Commit. Tant que Commit
// n'a pas réussi, rien n'est publié dans le répertoire cible.
package atomicdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Stage est une écriture en attente vers un répertoire cible.
type Stage struct {
	target    string
	tmp       string
	names     []string
	committed bool
}

// New prépare une écriture vers target, créé au besoin. Le répertoire
// temporaire est créé dans target lui-même pour que le déplacement
// final reste sur le même système de fichiers.
func New(target string) (*Stage, error) {
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, fmt.Errorf("atomicdir: création de %s: %w", target, err)
	}
	tmp, err := os.MkdirTemp(target, ".staging-")
	if err != nil {
		return nil, fmt.Errorf("atomicdir: répertoire temporaire dans %s: %w", target, err)
	}
	return &Stage{target: target, tmp: tmp}, nil
}

// WriteFile prépare un fichier du lot. name doit être un nom simple,
// sans séparateur de chemin.
func (s *Stage) WriteFile(name string, data []byte) error {
	if name == "" || filepath.Base(name) != name {
		return fmt.Errorf("atomicdir: nom de fichier invalide %q", name)
	}
	if err := os.WriteFile(filepath.Join(s.tmp, name), data, 0o644); err != nil {
		return fmt.Errorf("atomicdir: écriture de %s: %w", name, err)
	}
	s.names = append(s.names, name)
	return nil
}

// Commit déplace tous les fichiers préparés dans le répertoire cible
// puis supprime le répertoire temporaire.
func (s *Stage) Commit() error {
	for _, name := range s.names {
		if err := os.Rename(filepath.Join(s.tmp, name), filepath.Join(s.target, name)); err != nil {
			return fmt.Errorf("atomicdir: publication de %s: %w", name, err)
		}
	}
	s.committed = true
	return os.Remove(s.tmp)
}

// Discard supprime le répertoire temporaire et tout ce qu'il contient.
// Sans effet après un Commit réussi, ce qui permet un `defer Discard()`
// systématique.
func (s *Stage) Discard() {
	if s.committed {
		return
	}
	os.RemoveAll(s.tmp)
}
