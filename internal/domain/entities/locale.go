package entities

import (
	"regexp"

	"golang.org/x/text/language"
)

// localePattern restreint les codes acceptés à la forme langue-RÉGION
// (ex: fr-FR), celle attendue pour les noms de fichiers et les entêtes
// de colonnes.
var localePattern = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)

// IsLocaleCode indique si s est un code de locale utilisable: forme
// ll-CC et reconnu comme balise BCP 47.
func IsLocaleCode(s string) bool {
	if !localePattern.MatchString(s) {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}
