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
	locales := jsonfiles.NewRepository(cfg.LocalesDir)
	table := spreadsheet.NewRepository(cfg.ExportSpreadsheet())

	svc := application.NewExportService(locales, table, cfg.PriorityLocale)
	summary, err := svc.Export(context.Background())
	if err != nil {
		log.Printf("❌ %s: %v", translator.T(cfg.AppLocale, "export_failed", nil), err)
		os.Exit(1)
	}

	log.Printf("✅ %s", translator.T(cfg.AppLocale, "export_done", map[string]any{
		"Path":        cfg.ExportSpreadsheet(),
		"LocaleCount": len(summary.Locales),
		"KeyCount":    summary.Keys,
	}))
}
