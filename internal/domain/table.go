package domain

import (
	"fmt"
	"iter"

	"localesheet/internal/domain/entities"
)

// BuildTable construit le tableau de traductions à partir des entrées
// aplaties de chaque locale. L'ordre de locales fixe l'ordre des
// colonnes et l'ordre de traitement; l'union des clés est construite
// dans l'ordre de première apparition (la première locale donne l'ordre
// principal, les clés propres aux locales suivantes sont ajoutées à la
// suite).
//
// Renvoie ErrStructuralConflict si une clé est une feuille pour une
// locale et un nœud interne pour une autre (ex: "a.b" chaîne d'un côté,
// "a.b.c" de l'autre).
func BuildTable(locales []string, byLocale map[string]iter.Seq[entities.FlatEntry]) (*entities.Table, error) {
	table := entities.NewTable(locales)

	// Première locale ayant déclaré la clé comme feuille / comme nœud
	// interne, pour produire un message d'erreur localisable.
	leaves := make(map[string]string)
	branches := make(map[string]string)

	for _, locale := range locales {
		for entry := range byLocale[locale] {
			if other, ok := branches[entry.Key]; ok {
				return nil, fmt.Errorf("clé %q: feuille pour %s mais nœud interne pour %s: %w",
					entry.Key, locale, other, ErrStructuralConflict)
			}
			if _, ok := leaves[entry.Key]; !ok {
				leaves[entry.Key] = locale
			}
			for _, prefix := range ancestors(entry.Key) {
				if other, ok := leaves[prefix]; ok {
					return nil, fmt.Errorf("clé %q: nœud interne pour %s mais feuille pour %s: %w",
						prefix, locale, other, ErrStructuralConflict)
				}
				if _, ok := branches[prefix]; !ok {
					branches[prefix] = locale
				}
			}
			table.Set(entry.Key, locale, entry.Value)
		}
	}
	return table, nil
}

// LocaleEntries extrait du tableau la séquence des paires non vides de
// la locale donnée, dans l'ordre des lignes. Les cellules vides sont
// omises: une clé absente du fichier source reste absente de l'arbre
// reconstruit, elle ne devient pas une chaîne vide.
func LocaleEntries(table *entities.Table, locale string) iter.Seq[entities.FlatEntry] {
	return func(yield func(entities.FlatEntry) bool) {
		for _, key := range table.Keys() {
			value, ok := table.Get(key, locale)
			if !ok || value == "" {
				continue
			}
			if !yield(entities.FlatEntry{Key: key, Value: value}) {
				return
			}
		}
	}
}

// ancestors renvoie les préfixes stricts d'une clé pointée, du plus
// court au plus long ("a.b.c" -> "a", "a.b").
func ancestors(key string) []string {
	var prefixes []string
	for i, r := range key {
		if r == '.' && i > 0 {
			prefixes = append(prefixes, key[:i])
		}
	}
	return prefixes
}
