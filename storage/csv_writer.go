package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"airbnb-price-tracker/models"
	"airbnb-price-tracker/utils"
)

// DetailHeader is the column layout of the detail-view report.
var DetailHeader = []string{
	"date", "room_id", "available", "nights",
	"price_original", "price_discounted", "price_final", "discount_amount",
	"currency", "title", "room_type",
}

// CSVWriter writes the two report views as comma-separated UTF-8 files
type CSVWriter struct {
	logger *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(logger *utils.Logger) *CSVWriter {
	return &CSVWriter{logger: logger}
}

// WriteDetail writes one row per attempted probe. Null price fields
// render as empty cells.
func (w *CSVWriter) WriteDetail(path string, quotes []models.PriceQuote) error {
	writer, file, err := w.open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	defer writer.Flush()

	if err := writer.Write(DetailHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, q := range quotes {
		row := []string{
			q.CheckIn,
			q.RoomID,
			strconv.FormatBool(q.Available),
			strconv.Itoa(q.Nights),
			q.PriceOriginal.String(),
			q.PriceDiscounted.String(),
			q.PriceFinal.String(),
			q.DiscountAmount.String(),
			q.Currency,
			q.Title,
			q.RoomType,
		}
		if err := writer.Write(row); err != nil {
			w.logger.Error("Failed to write CSV row for room %s on %s: %v", q.RoomID, q.CheckIn, err)
		}
	}

	w.logger.Info("Detail report written to: %s (%d rows)", path, len(quotes))
	return nil
}

// WriteMatrix writes the date × listing view.
func (w *CSVWriter) WriteMatrix(path string, report *models.MatrixReport) error {
	writer, file, err := w.open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	defer writer.Flush()

	if err := writer.Write(report.Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range report.Rows {
		if err := writer.Write(row); err != nil {
			w.logger.Error("Failed to write matrix row %s: %v", row[0], err)
		}
	}

	w.logger.Info("Matrix report written to: %s (%d rows × %d listings)",
		path, len(report.Rows), len(report.Header)-1)
	return nil
}

func (w *CSVWriter) open(path string) (*csv.Writer, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create CSV file: %w", err)
	}
	return csv.NewWriter(file), file, nil
}
