package models

import (
	"encoding/json"
	"testing"
)

func TestCalendarMonthsLenientDecode(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    int
	}{
		{"object instead of array", `{"error":"rate limited"}`, 0},
		{"string", `"nope"`, 0},
		{"null", `null`, 0},
		{"well formed", `[{"month":3,"year":2025,"days":[{"calendarDate":"2025-03-01","available":true,"minNights":2,"maxNights":30}]}]`, 1},
		{"bad element dropped", `[{"month":3,"year":2025,"days":[]}, "garbage", {"month":4,"year":2025,"days":[]}]`, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var months CalendarMonths
			if err := json.Unmarshal([]byte(c.payload), &months); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(months) != c.want {
				t.Errorf("got %d months, want %d", len(months), c.want)
			}
		})
	}
}

func TestCalendarDaysLenientDecode(t *testing.T) {
	payload := `{"month":3,"year":2025,"days":{"not":"an array"}}`
	var month CalendarMonth
	if err := json.Unmarshal([]byte(payload), &month); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(month.Days) != 0 {
		t.Errorf("got %d days, want 0", len(month.Days))
	}

	payload = `{"days":[{"calendarDate":"2025-03-01","available":true}, 7]}`
	if err := json.Unmarshal([]byte(payload), &month); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(month.Days) != 1 || month.Days[0].CalendarDate != "2025-03-01" {
		t.Errorf("bad day element not dropped: %+v", month.Days)
	}
}

func TestAmountString(t *testing.T) {
	var null Amount
	if got := null.String(); got != "" {
		t.Errorf("null amount = %q, want empty", got)
	}
}
