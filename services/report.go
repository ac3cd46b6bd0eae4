package services

import (
	"sort"

	"airbnb-price-tracker/models"
)

// BuildDetail returns the detail-view rows: every attempted probe,
// stable-sorted by (date, room_id) ascending. Failed probes stay in;
// a fetch failure is not a reason to drop the row.
func BuildDetail(quotes []models.PriceQuote) []models.PriceQuote {
	rows := make([]models.PriceQuote, len(quotes))
	copy(rows, quotes)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CheckIn != rows[j].CheckIn {
			return rows[i].CheckIn < rows[j].CheckIn
		}
		return rows[i].RoomID < rows[j].RoomID
	})
	return rows
}

// BuildMatrix projects the quotes onto the full requested window: one row
// per window date, one column per configured listing, cell = final nightly
// price or empty. Dates never probed still get a row; quotes whose rate
// unit is unknown render empty rather than pass off a stay total as a
// nightly price.
func BuildMatrix(window []string, roomIDs []string, quotes []models.PriceQuote) *models.MatrixReport {
	type cellKey struct{ date, roomID string }
	cells := make(map[cellKey]string, len(quotes))
	for _, q := range quotes {
		if !q.PriceFinal.Valid || q.Unit != models.RatePerNight {
			continue
		}
		key := cellKey{q.CheckIn, q.RoomID}
		if _, exists := cells[key]; !exists {
			cells[key] = q.PriceFinal.String()
		}
	}

	header := make([]string, 0, len(roomIDs)+1)
	header = append(header, "date")
	header = append(header, roomIDs...)

	rows := make([][]string, 0, len(window))
	for _, date := range window {
		row := make([]string, 0, len(roomIDs)+1)
		row = append(row, date)
		for _, roomID := range roomIDs {
			row = append(row, cells[cellKey{date, roomID}])
		}
		rows = append(rows, row)
	}

	return &models.MatrixReport{Header: header, Rows: rows}
}
