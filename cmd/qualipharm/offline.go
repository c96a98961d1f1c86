package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/internal/config"
	"github.com/qualipharm/qualipharm/internal/services"
	"github.com/qualipharm/qualipharm/internal/store"
	"github.com/qualipharm/qualipharm/pkg/logger"
	"github.com/qualipharm/qualipharm/registry"
	"github.com/qualipharm/qualipharm/report"
	"github.com/qualipharm/qualipharm/schema"
)

// runRender renders a submission JSON file to a PDF without touching the
// database. Useful for previewing template changes.
func runRender(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading submission file: %w", err)
	}

	var sub services.Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return fmt.Errorf("decoding submission file: %w", err)
	}

	tpl, ok := registry.TemplateByID(sub.TemplateID)
	if !ok {
		return fmt.Errorf("unknown template %q", sub.TemplateID)
	}

	rec := &schema.FilledRecord{
		ID:           uuid.NewString(),
		TemplateID:   tpl.ID,
		PharmacyName: sub.PharmacyName,
		Data:         sub.Data,
		CreatedAt:    time.Now(),
		Signatures:   sub.Signatures,
	}
	if err := schema.Validate(tpl, rec); err != nil {
		return err
	}

	c := compose.NewComposer()
	if err := services.RenderDocument(c, tpl, rec, &sub); err != nil {
		return err
	}
	return writePDF(c, args[1])
}

// runCompile queries the database for one month of records and writes the
// compilation PDF.
func runCompile(cmd *cobra.Command, args []string) error {
	templateID := args[0]
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[1])
	}
	m, err := strconv.Atoi(args[2])
	if err != nil || m < 1 || m > 12 {
		return fmt.Errorf("invalid month %q", args[2])
	}

	tpl, ok := registry.TemplateByID(templateID)
	if !ok {
		return fmt.Errorf("unknown template %q", templateID)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Environment)
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := store.Open(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.RecordsByMonth(cmd.Context(), templateID, year, time.Month(m))
	if err != nil {
		return err
	}

	c := compose.NewComposer()
	if err := report.RenderCompilation(c, tpl, records, year, time.Month(m)); err != nil {
		return err
	}
	return writePDF(c, args[3])
}

func writePDF(c *compose.Composer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := c.Output(f); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
