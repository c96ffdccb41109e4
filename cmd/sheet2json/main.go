package main

import (
	"context"
	"log"
	"os"

	"localesheet/internal/application"
	"localesheet/internal/config"
	"localesheet/internal/infrastructure/i18n"
	"localesheet/internal/infrastructure/jsonfiles"
	"localesheet/internal/infrastructure/spreadsheet"
	"localesheet/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	var translator output.T = i18n.NewTranslator(cfg.AppLocale)
	table := spreadsheet.NewRepository(cfg.ImportSpreadsheet())
	locales := jsonfiles.NewRepository(cfg.OutputDir)

	svc := application.NewImportService(table, locales)
	summary, err := svc.Import(context.Background())
	if err != nil {
		log.Printf("❌ %s: %v", translator.T(cfg.AppLocale, "import_failed", nil), err)
		os.Exit(1)
	}

	log.Printf("✅ %s", translator.T(cfg.AppLocale, "import_done", map[string]any{
		"Dir":         cfg.OutputDir,
		"LocaleCount": len(summary.Locales),
		"KeyCount":    summary.Keys,
	}))
}
