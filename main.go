package main

import (
	"context"
	"fmt"
	"os"

	"airbnb-price-tracker/config"
	"airbnb-price-tracker/scraper/airbnb"
	"airbnb-price-tracker/services"
	"airbnb-price-tracker/storage"
	"airbnb-price-tracker/utils"
)

func main() {
	// ================== Bootstrap ====================
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("Airbnb Nightly Price Tracker")

	maxDays := "ALL"
	if cfg.MaxDays > 0 {
		maxDays = fmt.Sprintf("%d", cfg.MaxDays)
	}
	logger.Info("Currency: %s | Max days per listing: %s | Adults: %d", cfg.Currency, maxDays, cfg.Adults)
	logger.Info("Probe delay: %v | Listing delay: %v | Retries: %d", cfg.ProbeDelay, cfg.ListingDelay, cfg.MaxRetries)

	// =================== Room IDs ====================
	roomIDs, err := config.LoadRoomIDs(cfg.RoomIDsFile)
	if err != nil {
		logger.Error("Cannot load room IDs: %v", err)
		logger.Error("Create %q with one room ID per line", cfg.RoomIDsFile)
		os.Exit(1)
	}
	if len(roomIDs) == 0 {
		logger.Error("Room IDs file %q holds no identifiers", cfg.RoomIDsFile)
		os.Exit(1)
	}
	logger.Info("%d room IDs to process", len(roomIDs))

	// =================== Credentials =================
	ctx := context.Background()

	apiKey, err := airbnb.AcquireAPIKey(ctx, cfg, logger)
	if err != nil {
		logger.Error("API key acquisition failed: %v", err)
		os.Exit(1)
	}

	client, err := airbnb.NewClient(cfg, logger, apiKey)
	if err != nil {
		logger.Error("Client setup failed: %v", err)
		os.Exit(1)
	}

	// =================== Collection ==================
	pacer := utils.NewFixedPacer(cfg.ProbeDelay, cfg.ListingDelay)
	collector := services.NewCollector(cfg, logger, client, client, pacer)
	quotes := collector.Run(ctx, roomIDs)

	if len(quotes) == 0 {
		logger.Warn("No quotes gathered, nothing to report")
	}

	// =================== Reports =====================
	window := services.DateWindow(cfg.RunStamp, cfg.WindowDays)
	detail := services.BuildDetail(quotes)
	matrix := services.BuildMatrix(window, roomIDs, quotes)

	writer := storage.NewCSVWriter(logger)
	var outputs []string

	if err := writer.WriteDetail(cfg.DetailCSVPath(), detail); err != nil {
		logger.Error("Failed to write detail report: %v", err)
	} else {
		outputs = append(outputs, cfg.DetailCSVPath())
	}
	if err := writer.WriteMatrix(cfg.MatrixCSVPath(), matrix); err != nil {
		logger.Error("Failed to write matrix report: %v", err)
	} else {
		outputs = append(outputs, cfg.MatrixCSVPath())
	}

	// =================== Summary =====================
	summary := services.BuildRunSummary(roomIDs, quotes, outputs)
	services.PrintRunSummary(summary, cfg.Currency)

	// =================== Publish =====================
	if cfg.Publish && len(outputs) > 0 {
		publisher := storage.NewGitPublisher(".", logger)
		message := fmt.Sprintf("Prices data: %d records from %d listings", len(detail), len(roomIDs))
		if err := publisher.Publish(message); err != nil {
			logger.Warn("Publish failed (reports stay on disk): %v", err)
		}
	}
}
