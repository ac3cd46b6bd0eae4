package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"airbnb-price-tracker/models"
	"airbnb-price-tracker/utils"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestWriteDetail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "prices.csv")
	writer := NewCSVWriter(utils.NewLogger())

	quotes := []models.PriceQuote{
		{
			RoomID:         "100",
			CheckIn:        "2025-03-01",
			CheckOut:       "2025-03-03",
			Nights:         2,
			PriceOriginal:  models.NewAmount(decimal.NewFromInt(100)),
			PriceFinal:     models.NewAmount(decimal.RequireFromString("90.5")),
			DiscountAmount: models.NewAmount(decimal.NewFromInt(19)),
			Currency:       "USD",
			Title:          "Sea-view studio",
			RoomType:       "Entire rental unit",
			Available:      true,
		},
		{
			// Failed probe: all price fields null.
			RoomID:    "200",
			CheckIn:   "2025-03-02",
			CheckOut:  "2025-03-03",
			Nights:    1,
			Currency:  "USD",
			Available: true,
			Failed:    true,
		},
	}

	if err := writer.WriteDetail(path, quotes); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	for i, col := range DetailHeader {
		if rows[0][i] != col {
			t.Fatalf("header = %v, want %v", rows[0], DetailHeader)
		}
	}

	first := rows[1]
	if first[0] != "2025-03-01" || first[1] != "100" || first[2] != "true" || first[3] != "2" {
		t.Errorf("row 1 identity columns wrong: %v", first)
	}
	if first[4] != "100.00" || first[6] != "90.50" || first[7] != "19.00" {
		t.Errorf("row 1 price columns wrong: %v", first)
	}
	if first[5] != "" {
		t.Errorf("null discounted price = %q, want empty cell", first[5])
	}

	second := rows[2]
	for _, i := range []int{4, 5, 6, 7} {
		if second[i] != "" {
			t.Errorf("failed probe column %d = %q, want empty", i, second[i])
		}
	}
}

func TestWriteMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.csv")
	writer := NewCSVWriter(utils.NewLogger())

	report := &models.MatrixReport{
		Header: []string{"date", "100", "200"},
		Rows: [][]string{
			{"2025-03-01", "90.00", ""},
			{"2025-03-02", "", ""},
		},
	}
	if err := writer.WriteMatrix(path, report); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[1][1] != "90.00" || rows[2][1] != "" {
		t.Errorf("matrix cells wrong: %v", rows)
	}
}
