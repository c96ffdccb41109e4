package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
)

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ouverture du tableur %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Les lignes peuvent être plus courtes que l'entête (cellules de
	// fin vides): pas de contrôle du nombre de champs.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("lecture du tableur %s: %w", path, err)
	}
	return rows, nil
}

func writeCSV(path string, rows [][]string) error {
	// Le contenu est entièrement préparé en mémoire avant publication.
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("écriture du tableur %s: %w", path, err)
	}
	return publish(path, buf.Bytes())
}
