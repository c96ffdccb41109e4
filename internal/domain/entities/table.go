package entities

// Table est la forme tabulaire des traductions: une ligne par clé
// pointée, une colonne par locale. L'ordre des lignes et des colonnes
// est conservé tel qu'il a été construit. Une cellule absente signifie
// que la locale n'a pas de traduction pour cette clé.
type Table struct {
	locales []string
	keys    []string
	cells   map[string]map[string]string
}

// NewTable crée un tableau vide dont les colonnes suivent l'ordre des
// locales données. Des colonnes supplémentaires peuvent apparaître via
// Set.
func NewTable(locales []string) *Table {
	t := &Table{cells: make(map[string]map[string]string)}
	for _, locale := range locales {
		t.addLocale(locale)
	}
	return t
}

// Locales renvoie les codes de locale, dans l'ordre des colonnes.
func (t *Table) Locales() []string { return t.locales }

// Keys renvoie les clés pointées, dans l'ordre des lignes.
func (t *Table) Keys() []string { return t.keys }

// Len renvoie le nombre de lignes.
func (t *Table) Len() int { return len(t.keys) }

// AddKey enregistre une ligne pour la clé donnée, même sans aucune
// cellule remplie. Sans effet si la ligne existe déjà.
func (t *Table) AddKey(key string) {
	if _, ok := t.cells[key]; ok {
		return
	}
	t.keys = append(t.keys, key)
	t.cells[key] = make(map[string]string)
}

// Set remplit la cellule (clé, locale), en créant la ligne et la
// colonne au besoin.
func (t *Table) Set(key, locale, value string) {
	t.AddKey(key)
	t.addLocale(locale)
	t.cells[key][locale] = value
}

// Get renvoie le contenu de la cellule (clé, locale). Le booléen vaut
// false si la cellule est vide (locale sans traduction pour cette clé).
func (t *Table) Get(key, locale string) (string, bool) {
	row, ok := t.cells[key]
	if !ok {
		return "", false
	}
	value, ok := row[locale]
	return value, ok
}

func (t *Table) addLocale(locale string) {
	for _, known := range t.locales {
		if known == locale {
			return
		}
	}
	t.locales = append(t.locales, locale)
}
