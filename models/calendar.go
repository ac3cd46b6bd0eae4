package models

import "encoding/json"

// CalendarDayRecord is one day as it appears on the wire, before defaults
// are applied.
type CalendarDayRecord struct {
	CalendarDate string `json:"calendarDate"`
	Available    bool   `json:"available"`
	MinNights    int    `json:"minNights"`
	MaxNights    int    `json:"maxNights"`
}

// CalendarMonth is one month block of a listing's availability calendar.
type CalendarMonth struct {
	Month int          `json:"month"`
	Year  int          `json:"year"`
	Days  CalendarDays `json:"days"`
}

// CalendarMonths is the full calendar payload for one listing.
//
// The marketplace occasionally returns something that is not a month list
// at all. Decoding is lenient: a non-array payload yields a nil slice and
// malformed elements are dropped, so a bad calendar degrades to "no
// availability" instead of failing the listing.
type CalendarMonths []CalendarMonth

func (m *CalendarMonths) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*m = nil
		return nil
	}
	months := make(CalendarMonths, 0, len(raw))
	for _, el := range raw {
		var month CalendarMonth
		if err := json.Unmarshal(el, &month); err != nil {
			continue
		}
		months = append(months, month)
	}
	*m = months
	return nil
}

// CalendarDays applies the same leniency to the day list inside a month.
type CalendarDays []CalendarDayRecord

func (d *CalendarDays) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*d = nil
		return nil
	}
	days := make(CalendarDays, 0, len(raw))
	for _, el := range raw {
		var day CalendarDayRecord
		if err := json.Unmarshal(el, &day); err != nil {
			continue
		}
		days = append(days, day)
	}
	*d = days
	return nil
}

// CalendarDay is one day's availability state for one listing after
// defaults are applied. Instances are built once per scrape run and never
// mutated. MinNights > MaxNights is upstream data, passed through as-is.
type CalendarDay struct {
	Date      string // ISO 8601
	Available bool
	MinNights int
	MaxNights int
}
