package storage

import "airbnb-price-tracker/models"

// ReportSink defines the interface for persisting the two report views
type ReportSink interface {
	WriteDetail(path string, quotes []models.PriceQuote) error
	WriteMatrix(path string, report *models.MatrixReport) error
}

// Publisher defines the interface for pushing finished reports to a remote
type Publisher interface {
	Publish(message string) error
}
