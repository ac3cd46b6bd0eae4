package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"airbnb-price-tracker/models"
)

func pricedQuote(roomID, date, price string) models.PriceQuote {
	v, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}
	return models.PriceQuote{
		RoomID:     roomID,
		CheckIn:    date,
		PriceFinal: models.NewAmount(v),
		Available:  true,
	}
}

func TestBuildDetailSortOrder(t *testing.T) {
	quotes := []models.PriceQuote{
		pricedQuote("200", "2025-03-02", "80.00"),
		pricedQuote("100", "2025-03-02", "70.00"),
		pricedQuote("200", "2025-03-01", "60.00"),
		pricedQuote("100", "2025-03-01", "50.00"),
	}

	rows := BuildDetail(quotes)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		a, b := rows[i-1], rows[i]
		dateOrdered := a.CheckIn < b.CheckIn
		tieOrdered := a.CheckIn == b.CheckIn && a.RoomID <= b.RoomID
		if !dateOrdered && !tieOrdered {
			t.Errorf("rows %d,%d out of order: (%s,%s) before (%s,%s)",
				i-1, i, a.CheckIn, a.RoomID, b.CheckIn, b.RoomID)
		}
	}

	// Input untouched.
	if quotes[0].RoomID != "200" || quotes[0].CheckIn != "2025-03-02" {
		t.Error("BuildDetail mutated its input")
	}
}

func TestBuildDetailKeepsFailedProbes(t *testing.T) {
	quotes := []models.PriceQuote{
		{RoomID: "100", CheckIn: "2025-03-01", Failed: true, Available: true},
		pricedQuote("100", "2025-03-02", "50.00"),
	}
	rows := BuildDetail(quotes)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want failed probe kept", len(rows))
	}
	if !rows[0].Failed || rows[0].PriceFinal.Valid {
		t.Errorf("failed row altered: %+v", rows[0])
	}
}

func TestBuildMatrixShape(t *testing.T) {
	window := []string{"2025-03-01", "2025-03-02", "2025-03-03"}
	roomIDs := []string{"100", "200"}

	unknown := pricedQuote("100", "2025-03-02", "500.00")
	unknown.Unit = models.RateUnitUnknown

	quotes := []models.PriceQuote{
		pricedQuote("100", "2025-03-01", "90.00"),
		unknown, // unknown unit: must not appear in the matrix
		{RoomID: "200", CheckIn: "2025-03-03", Failed: true, Available: true},
	}

	m := BuildMatrix(window, roomIDs, quotes)

	wantHeader := []string{"date", "100", "200"}
	if len(m.Header) != len(wantHeader) {
		t.Fatalf("header = %v, want %v", m.Header, wantHeader)
	}
	for i := range wantHeader {
		if m.Header[i] != wantHeader[i] {
			t.Fatalf("header = %v, want %v", m.Header, wantHeader)
		}
	}

	if len(m.Rows) != len(window) {
		t.Fatalf("got %d rows, want one per window date", len(m.Rows))
	}

	want := [][]string{
		{"2025-03-01", "90.00", ""},
		{"2025-03-02", "", ""},
		{"2025-03-03", "", ""},
	}
	for i, row := range m.Rows {
		for j, cell := range row {
			if cell != want[i][j] {
				t.Errorf("cell [%d][%d] = %q, want %q", i, j, cell, want[i][j])
			}
		}
	}
}

func TestBuildMatrixEmptyColumnForQuietListing(t *testing.T) {
	window := []string{"2025-03-01", "2025-03-02"}
	m := BuildMatrix(window, []string{"100", "200"}, []models.PriceQuote{
		pricedQuote("100", "2025-03-01", "90.00"),
	})
	for i, row := range m.Rows {
		if row[2] != "" {
			t.Errorf("row %d: listing 200 cell = %q, want empty", i, row[2])
		}
	}
}
