package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"localesheet/internal/domain"
	"localesheet/internal/domain/entities"
)

// Config regroupe les emplacements et options d'une conversion. Les
// conventions de répertoires ne sont pas des variables globales: la
// configuration est construite ici puis passée explicitement aux
// pipelines.
type Config struct {
	// LocalesDir contient les fichiers <code>.json à exporter.
	LocalesDir string
	// SpreadsheetFile est le chemin du tableur (.xlsx ou .csv). Vide =
	// emplacement conventionnel, différent selon le sens de conversion.
	SpreadsheetFile string
	// OutputDir reçoit les fichiers <code>.json produits par l'import.
	OutputDir string
	// PriorityLocale est placée en première colonne du tableur.
	PriorityLocale string
	// AppLocale est la langue des messages du convertisseur lui-même.
	AppLocale string
}

// Load charge la configuration depuis les variables d'environnement et
// la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (CI, etc.).
	}

	cfg := &Config{
		LocalesDir:      getenv("LOCALES_DIR", "input"),
		SpreadsheetFile: os.Getenv("SPREADSHEET_FILE"),
		OutputDir:       getenv("OUTPUT_DIR", filepath.Join("output", "translations")),
		PriorityLocale:  getenv("PRIORITY_LOCALE", "en-US"),
		AppLocale:       getenv("APP_LOCALE", "fr"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ExportSpreadsheet renvoie le chemin du tableur à produire.
func (c *Config) ExportSpreadsheet() string {
	if c.SpreadsheetFile != "" {
		return c.SpreadsheetFile
	}
	return filepath.Join("output", "translations.xlsx")
}

// ImportSpreadsheet renvoie le chemin du tableur à lire.
func (c *Config) ImportSpreadsheet() string {
	if c.SpreadsheetFile != "" {
		return c.SpreadsheetFile
	}
	return filepath.Join("input", "translations.xlsx")
}

// validate applique toutes les règles sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.LocalesDir) == "" {
		return fmt.Errorf("config: LOCALES_DIR ne peut pas être vide")
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("config: OUTPUT_DIR ne peut pas être vide")
	}

	if !entities.IsLocaleCode(c.PriorityLocale) {
		return fmt.Errorf("config: PRIORITY_LOCALE invalide (%q): %w", c.PriorityLocale, domain.ErrInvalidLocaleCode)
	}

	if file := c.SpreadsheetFile; file != "" {
		switch ext := strings.ToLower(filepath.Ext(file)); ext {
		case ".xlsx", ".csv":
		default:
			return fmt.Errorf("config: SPREADSHEET_FILE invalide (%q): extension .xlsx ou .csv attendue", file)
		}
	}

	return nil
}

// getenv renvoie la variable d'environnement ou la valeur par défaut.
func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
