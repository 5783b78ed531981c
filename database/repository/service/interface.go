package serviceRepo

import "doctorportal/models"

// ServiceRepository defines methods for treatment catalog data access.
type ServiceRepository interface {
	// GetAll retrieves all services with full documents.
	GetAll() ([]models.Service, error)
	// GetNames retrieves all services projected to name only.
	GetNames() ([]models.ServiceSummary, error)
}
