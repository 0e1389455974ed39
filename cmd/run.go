package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pg-atlas/config"
	"pg-atlas/ingest"
	"pg-atlas/services"
	"pg-atlas/storage"
	"pg-atlas/utils"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: ingest, normalize, export, report",
	Run: func(cmd *cobra.Command, args []string) {
		runPipeline()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline() {
	cfg := config.Load()
	logger := utils.NewLogger(utils.ParseLevel(cfg.LogLevel))

	logger.Info("=== pg-atlas pipeline starting ===")
	logger.Info("Config — sheet: %s | concurrency: %d", cfg.SheetPath, cfg.MaxConcurrency)

	atlas, err := config.LoadAtlas(cfg.AtlasPath)
	if err != nil {
		logger.Error("Failed to load atlas config: %v", err)
		os.Exit(1)
	}
	logger.Info("Atlas loaded — %d hubs, %d tag rules", len(atlas.Hubs), len(atlas.TagRules))

	raw, err := ingest.ReadSheet(cfg.SheetPath)
	if err != nil {
		logger.Error("Sheet ingestion failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Ingested %d raw rows from %s", len(raw), cfg.SheetPath)

	pipeline, err := services.NewPipeline(atlas, logger, cfg.MaxConcurrency)
	if err != nil {
		logger.Error("Pipeline setup failed: %v", err)
		os.Exit(1)
	}

	listings := pipeline.Run(raw)

	csvWriter, err := storage.NewCSVWriter(cfg.DatasetPath)
	if err != nil {
		logger.Error("Failed to create dataset writer: %v", err)
		os.Exit(1)
	}
	defer csvWriter.Close()

	if err := csvWriter.Write(listings); err != nil {
		logger.Error("Dataset write failed: %v", err)
	} else {
		logger.Info("Normalized dataset saved to %s", cfg.DatasetPath)
	}

	mapWriter := storage.NewMapWriter(cfg.MapPath)
	if err := mapWriter.Export(listings); err != nil {
		logger.Error("Map export failed: %v", err)
	} else {
		logger.Info("Map points saved to %s", cfg.MapPath)
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(listings)
	insightSvc.Print(report)

	fmt.Printf("  Done. Dataset → %s | Map points → %s\n\n", cfg.DatasetPath, cfg.MapPath)
}
