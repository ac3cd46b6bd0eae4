package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"airbnb-price-tracker/models"
)

var (
	// "2 nights x ﺩ.ﺇ3,390.50", "1 night x $150.00": any non-digit
	// currency glyph run may sit between the "x" and the amount.
	nightlyLabelRegex = regexp.MustCompile(`(?i)(\d+)\s*nights?\s*x\s*[^\d]*([\d,]+\.?\d*)`)
	amountRegex       = regexp.MustCompile(`([\d,]+\.?\d*)`)
)

// AbsenceReason says why an extracted price field is null.
type AbsenceReason int

const (
	ReasonNone AbsenceReason = iota
	ReasonNoMatch
	ReasonMalformedAmount
	ReasonZeroNights
)

func (r AbsenceReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonMalformedAmount:
		return "malformed_amount"
	case ReasonZeroNights:
		return "zero_nights"
	default:
		return "no_match"
	}
}

// FieldResult is one extracted monetary field: either a value or the
// reason it is absent.
type FieldResult struct {
	Amount models.Amount
	Reason AbsenceReason
}

func fieldOK(v decimal.Decimal) FieldResult {
	return FieldResult{Amount: models.NewAmount(v), Reason: ReasonNone}
}

// RateExtract is the parser's best-effort normalization of one price
// breakdown. Every field may be absent; absence is an expected outcome,
// never an error.
type RateExtract struct {
	Nights          int
	PerNight        FieldResult // original nightly rate, total / nights
	StayTotal       FieldResult // total behind PerNight, or the unscoped fallback figure
	Discount        FieldResult // total discount over the stay
	Final           FieldResult // nightly rate after discount
	DiscountedTotal FieldResult // discounted stay total as displayed
	Unit            models.RateUnit
}

// ExtractRate normalizes a price breakdown into per-night figures.
//
// The breakdown labels are scanned in payload order for the first
// "N night(s) x AMOUNT" pattern; a separate scan picks up the first
// "discount" label. When the nightly pattern is missing entirely, the
// headline display strings stand in as an unscoped total tagged
// RateUnitUnknown; the caller must not assume it is per-night.
func ExtractRate(pb models.PriceBreakdown) RateExtract {
	ex := RateExtract{
		Unit:            models.RatePerNight,
		PerNight:        FieldResult{Reason: ReasonNoMatch},
		StayTotal:       FieldResult{Reason: ReasonNoMatch},
		Discount:        FieldResult{Reason: ReasonNoMatch},
		Final:           FieldResult{Reason: ReasonNoMatch},
		DiscountedTotal: FieldResult{Reason: ReasonNoMatch},
	}

	// Nightly-rate label: first match wins, in payload order.
	for _, line := range pb.Lines {
		m := nightlyLabelRegex.FindStringSubmatch(line.Label)
		if m == nil {
			continue
		}
		nights, err := strconv.Atoi(m[1])
		if err != nil || nights == 0 {
			ex.PerNight.Reason = ReasonZeroNights
			break
		}
		total, err := parseAmount(m[2])
		if err != nil {
			ex.PerNight.Reason = ReasonMalformedAmount
			break
		}
		ex.Nights = nights
		ex.StayTotal = fieldOK(total)
		ex.PerNight = fieldOK(total.DivRound(decimal.NewFromInt(int64(nights)), 2))
		break
	}

	// Discount label: independent scan, first match wins. The amount may
	// sit in the label itself or in the attached display value.
	for _, line := range pb.Lines {
		if !strings.Contains(strings.ToLower(line.Label), "discount") {
			continue
		}
		ex.Discount = firstAmount(line.Label)
		if !ex.Discount.Amount.Valid {
			ex.Discount = firstAmount(line.Value)
		}
		break
	}

	// Discounted stay total as displayed, carried through unnormalized.
	ex.DiscountedTotal = firstAmount(pb.Main.DiscountedPrice)

	switch {
	case ex.PerNight.Amount.Valid && ex.Discount.Amount.Valid && ex.Nights > 0:
		perNightDiscount := ex.Discount.Amount.Value.DivRound(decimal.NewFromInt(int64(ex.Nights)), 2)
		ex.Final = fieldOK(ex.PerNight.Amount.Value.Sub(perNightDiscount).Round(2))
	case ex.PerNight.Amount.Valid:
		// No discount found: the undiscounted rate stands in for the
		// final rate.
		ex.Final = ex.PerNight
	}

	// Fallback: no usable nightly figure, recover a bare number from the
	// headline strings. No night count exists on this path, so the figure
	// is an unscoped total of unknown unit.
	if !ex.PerNight.Amount.Valid {
		for _, display := range []string{pb.Main.DiscountedPrice, pb.Main.OriginalPrice} {
			if fr := firstAmount(display); fr.Amount.Valid {
				ex.StayTotal = fr
				ex.Unit = models.RateUnitUnknown
				break
			}
		}
	}

	return ex
}

// firstAmount extracts the first embedded decimal number from a display
// string, or a no-match result.
func firstAmount(s string) FieldResult {
	m := amountRegex.FindStringSubmatch(s)
	if m == nil {
		return FieldResult{Reason: ReasonNoMatch}
	}
	v, err := parseAmount(m[1])
	if err != nil {
		return FieldResult{Reason: ReasonMalformedAmount}
	}
	return fieldOK(v)
}

func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}
