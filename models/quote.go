package models

// PriceLine is one label/value pair from the marketplace's price
// breakdown, in payload order. Labels are human-readable and
// locale-formatted, e.g. "2 nights x $200.00".
type PriceLine struct {
	Label string
	Value string
}

// MainPrice holds the headline display strings of a price breakdown.
type MainPrice struct {
	OriginalPrice   string
	DiscountedPrice string
}

// PriceBreakdown is the price portion of a listing-detail response.
type PriceBreakdown struct {
	Lines []PriceLine
	Main  MainPrice
}

// ListingDetail is the slice of a pricing response this tool cares about.
type ListingDetail struct {
	Title    string
	RoomType string
	Price    PriceBreakdown
}

// PriceQuote is the price observed for one listing on one candidate
// check-in date, for a stay of the day's minimum-night length. One quote
// is created per attempted probe and never mutated.
type PriceQuote struct {
	RoomID   string
	CheckIn  string // ISO 8601
	CheckOut string // CheckIn + Nights days
	Nights   int

	PriceOriginal   Amount // per night, unless Unit says otherwise
	PriceDiscounted Amount // discounted stay total as displayed
	PriceFinal      Amount // per night after discount
	DiscountAmount  Amount // total discount over the stay
	Unit            RateUnit

	Currency  string
	Title     string
	RoomType  string
	Available bool
	Failed    bool // transport failure; price fields are null
}

// MatrixReport is the date × listing projection: one row per date in the
// requested window, one column per listing, cell = final nightly price or
// empty.
type MatrixReport struct {
	Header []string
	Rows   [][]string
}

// RunSummary holds the end-of-run totals printed to the terminal.
type RunSummary struct {
	ListingsRequested int
	ListingsProbed    int
	ProbesAttempted   int
	ProbesFailed      int
	PricedQuotes      int
	MinNightly        Amount
	MaxNightly        Amount
	AvgNightly        Amount
	RowsPerListing    map[string]int
	OutputFiles       []string
}
