package entities

// Tree représente l'arbre de traductions d'une locale. Un nœud est soit
// une feuille (texte traduit), soit un nœud interne avec des enfants.
// L'ordre d'insertion des clés est conservé à chaque niveau, ce qu'une
// map JSON classique ne garantit pas.
type Tree struct {
	leaf     bool
	value    string
	keys     []string
	children map[string]*Tree
}

// NewTree crée un nœud interne vide (la racine d'un arbre, typiquement).
func NewTree() *Tree {
	return &Tree{children: make(map[string]*Tree)}
}

// Leaf crée une feuille portant le texte traduit donné.
func Leaf(value string) *Tree {
	return &Tree{leaf: true, value: value}
}

// IsLeaf indique si le nœud est une feuille.
func (t *Tree) IsLeaf() bool { return t.leaf }

// Value renvoie le texte d'une feuille (vide pour un nœud interne).
func (t *Tree) Value() string { return t.value }

// Keys renvoie les clés des enfants, dans l'ordre d'insertion.
func (t *Tree) Keys() []string { return t.keys }

// Len renvoie le nombre d'enfants directs du nœud.
func (t *Tree) Len() int { return len(t.children) }

// Child renvoie l'enfant porté par la clé donnée, s'il existe.
func (t *Tree) Child(key string) (*Tree, bool) {
	child, ok := t.children[key]
	return child, ok
}

// Attach ajoute un enfant sous la clé donnée. Si la clé existe déjà,
// l'enfant est remplacé mais garde sa position (même comportement que
// les clés dupliquées d'un objet JSON: la dernière valeur gagne).
func (t *Tree) Attach(key string, child *Tree) {
	if _, ok := t.children[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.children[key] = child
}

// Equal compare deux arbres structurellement, sans tenir compte de
// l'ordre des clés.
func (t *Tree) Equal(other *Tree) bool {
	if t.leaf != other.leaf {
		return false
	}
	if t.leaf {
		return t.value == other.value
	}
	if len(t.children) != len(other.children) {
		return false
	}
	for key, child := range t.children {
		otherChild, ok := other.children[key]
		if !ok || !child.Equal(otherChild) {
			return false
		}
	}
	return true
}

// FlatEntry est une paire (clé pointée, texte traduit) produite par
// l'aplatissement d'un arbre. La clé pointée est le chemin de la racine
// à la feuille, segments joints par des points.
type FlatEntry struct {
	Key   string
	Value string
}
