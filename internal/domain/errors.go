package domain

import "errors"

// Erreurs du domaine.
var (
	ErrInvalidLeafType    = errors.New("valeur de feuille invalide: seules les chaînes (ou null) sont acceptées")
	ErrStructuralConflict = errors.New("conflit structurel: la clé est à la fois une feuille et un nœud interne")
	ErrMalformedTable     = errors.New("tableau mal formé: colonne Key absente")
	ErrNoLocaleFiles      = errors.New("aucune locale à convertir")
	ErrInvalidLocaleCode  = errors.New("code de locale invalide: forme attendue ll-CC, ex: en-US")
)
