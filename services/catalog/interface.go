package catalog

import "doctorportal/models"

// CatalogService exposes the treatment catalog.
type CatalogService interface {
	// ListNames returns every service projected to its name.
	ListNames() ([]models.ServiceSummary, error)
	// Availability returns every service with its slots reduced to the
	// ones still open on the given date.
	Availability(date string) ([]models.Service, error)
}
