package jsonfiles

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"localesheet/internal/domain"
	"localesheet/internal/domain/entities"
)

// DecodeTree décode un arbre de traductions depuis du JSON en
// conservant l'ordre des clés du document (un Unmarshal vers une map le
// perdrait). Les valeurs null sont omises; tout autre type de feuille
// que la chaîne est rejeté avec ErrInvalidLeafType.
func DecodeTree(r io.Reader) (*entities.Tree, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("json invalide: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("json invalide: la racine doit être un objet")
	}

	root := entities.NewTree()
	if err := decodeObject(dec, root, ""); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("json invalide: contenu après l'objet racine")
	}
	return root, nil
}

// decodeObject consomme les membres d'un objet dont le '{' a déjà été
// lu, jusqu'au '}' compris. prefix est le chemin pointé de l'objet,
// utilisé uniquement pour les messages d'erreur.
func decodeObject(dec *json.Decoder, node *entities.Tree, prefix string) error {
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("json invalide: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("json invalide: clé inattendue %v", keyTok)
		}
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		valueTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("clé %q: json invalide: %w", path, err)
		}
		switch value := valueTok.(type) {
		case string:
			node.Attach(key, entities.Leaf(value))
		case json.Delim:
			if value != '{' {
				return fmt.Errorf("clé %q (tableau): %w", path, domain.ErrInvalidLeafType)
			}
			child := entities.NewTree()
			if err := decodeObject(dec, child, path); err != nil {
				return err
			}
			node.Attach(key, child)
		case nil:
			// null = pas d'entrée, la clé est simplement omise
		default:
			return fmt.Errorf("clé %q (%v): %w", path, value, domain.ErrInvalidLeafType)
		}
	}
	// consommer le '}' fermant
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("json invalide: %w", err)
	}
	return nil
}

// EncodeTree sérialise l'arbre en JSON indenté de deux espaces, clés
// dans l'ordre d'insertion. Ni échappement HTML ni échappement ASCII:
// les textes traduits restent lisibles tels quels dans le fichier.
func EncodeTree(tree *entities.Tree) ([]byte, error) {
	var compact bytes.Buffer
	if err := encodeNode(&compact, tree); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func encodeNode(buf *bytes.Buffer, node *entities.Tree) error {
	buf.WriteByte('{')
	for i, key := range node.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')
		child, _ := node.Child(key)
		if child.IsLeaf() {
			if err := encodeString(buf, child.Value()); err != nil {
				return err
			}
			continue
		}
		if err := encodeNode(buf, child); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// encodeString écrit une chaîne JSON sans échapper <, > ni &.
func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode ajoute un saut de ligne final dont on ne veut pas ici.
	buf.Truncate(buf.Len() - 1)
	return nil
}
