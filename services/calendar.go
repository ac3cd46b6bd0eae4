package services

import (
	"fmt"
	"time"

	"airbnb-price-tracker/models"
)

const (
	defaultMinNights = 1
	defaultMaxNights = 365
)

// ReconcileCalendar flattens a listing's month blocks into a date-keyed
// map with defaults applied. A nil or empty payload yields an empty map;
// day records without a date are skipped. MinNights > MaxNights is left
// alone; that is upstream data, not ours to fix.
func ReconcileCalendar(months models.CalendarMonths) map[string]models.CalendarDay {
	byDate := make(map[string]models.CalendarDay)
	for _, month := range months {
		for _, raw := range month.Days {
			if raw.CalendarDate == "" {
				continue
			}
			byDate[raw.CalendarDate] = applyDefaults(raw)
		}
	}
	return byDate
}

// AvailableDays returns the available days of a calendar in payload order,
// which is the order the count-bounded probing mode consumes them in.
func AvailableDays(months models.CalendarMonths) []models.CalendarDay {
	var days []models.CalendarDay
	for _, month := range months {
		for _, raw := range month.Days {
			if raw.CalendarDate == "" || !raw.Available {
				continue
			}
			days = append(days, applyDefaults(raw))
		}
	}
	return days
}

func applyDefaults(raw models.CalendarDayRecord) models.CalendarDay {
	day := models.CalendarDay{
		Date:      raw.CalendarDate,
		Available: raw.Available,
		MinNights: raw.MinNights,
		MaxNights: raw.MaxNights,
	}
	if day.MinNights <= 0 {
		day.MinNights = defaultMinNights
	}
	if day.MaxNights <= 0 {
		day.MaxNights = defaultMaxNights
	}
	return day
}

// CapDays applies the count-bounded probing limit: at most the first max
// days in payload order. max <= 0 means unbounded.
func CapDays(days []models.CalendarDay, max int) []models.CalendarDay {
	if max > 0 && len(days) > max {
		return days[:max]
	}
	return days
}

// DateWindow generates every date in [start, start+spanDays] inclusive as
// ISO strings. spanDays=365 yields 366 consecutive dates.
func DateWindow(start time.Time, spanDays int) []string {
	if spanDays < 0 {
		return nil
	}
	dates := make([]string, 0, spanDays+1)
	day := start
	for i := 0; i <= spanDays; i++ {
		dates = append(dates, day.Format("2006-01-02"))
		day = day.AddDate(0, 0, 1)
	}
	return dates
}

// CheckOutDate computes the probe's checkout: check-in plus the day's
// minimum stay. The minimum stay is always what gets priced.
func CheckOutDate(checkIn string, nights int) (string, error) {
	t, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return "", fmt.Errorf("check-in date %q: %w", checkIn, err)
	}
	return t.AddDate(0, 0, nights).Format("2006-01-02"), nil
}
