package spreadsheet

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sheetName est le nom de l'unique feuille des classeurs produits.
const sheetName = "Translations"

// readXLSX renvoie les lignes de la première feuille du classeur.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ouverture du tableur %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("tableur %s: %w", path, errors.New("classeur sans feuille"))
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("lecture du tableur %s: %w", path, err)
	}
	return rows, nil
}

// writeXLSX crée (ou remplace) le classeur avec les lignes données.
func writeXLSX(path string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	// La feuille créée par défaut s'appelle "Sheet1".
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("tableur %s: %w", path, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("tableur %s: %w", path, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("tableur %s: %w", path, err)
		}
	}

	// Le classeur est entièrement sérialisé en mémoire avant publication.
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("écriture du tableur %s: %w", path, err)
	}
	return publish(path, buf.Bytes())
}
