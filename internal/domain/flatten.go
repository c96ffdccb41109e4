package domain

import (
	"fmt"
	"iter"
	"strings"

	"localesheet/internal/domain/entities"
)

// Flatten parcourt l'arbre en profondeur et produit la séquence des
// paires (clé pointée, valeur), dans l'ordre d'insertion des clés du
// document source. La séquence est paresseuse et ré-itérable.
//
// Les clés contenant un '.' littéral ne sont pas échappées: le chemin
// produit est alors ambigu au retour. Le format tabulaire ne prévoit
// pas de désambiguïsation.
func Flatten(tree *entities.Tree) iter.Seq[entities.FlatEntry] {
	return func(yield func(entities.FlatEntry) bool) {
		flattenInto(tree, "", yield)
	}
}

func flattenInto(node *entities.Tree, prefix string, yield func(entities.FlatEntry) bool) bool {
	for _, key := range node.Keys() {
		child, _ := node.Child(key)
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if child.IsLeaf() {
			if !yield(entities.FlatEntry{Key: path, Value: child.Value()}) {
				return false
			}
			continue
		}
		if !flattenInto(child, path, yield) {
			return false
		}
	}
	return true
}

// Unflatten reconstruit un arbre à partir d'une séquence de paires
// (clé pointée, valeur). Chaque clé est découpée sur '.'; les segments
// intermédiaires deviennent des nœuds internes, le dernier une feuille.
// L'ordre de première apparition est conservé à chaque niveau.
//
// Renvoie ErrStructuralConflict si un segment devant être un nœud
// interne est déjà une feuille, ou l'inverse.
func Unflatten(entries iter.Seq[entities.FlatEntry]) (*entities.Tree, error) {
	root := entities.NewTree()
	for entry := range entries {
		segments := strings.Split(entry.Key, ".")
		node := root
		for i, segment := range segments[:len(segments)-1] {
			child, ok := node.Child(segment)
			switch {
			case !ok:
				child = entities.NewTree()
				node.Attach(segment, child)
			case child.IsLeaf():
				return nil, fmt.Errorf("clé %q (segment %q): %w",
					entry.Key, strings.Join(segments[:i+1], "."), ErrStructuralConflict)
			}
			node = child
		}
		last := segments[len(segments)-1]
		if existing, ok := node.Child(last); ok && !existing.IsLeaf() {
			return nil, fmt.Errorf("clé %q: %w", entry.Key, ErrStructuralConflict)
		}
		node.Attach(last, entities.Leaf(entry.Value))
	}
	return root, nil
}
