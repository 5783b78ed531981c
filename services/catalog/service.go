package catalog

import (
	bookingRepo "doctorportal/database/repository/booking"
	serviceRepo "doctorportal/database/repository/service"
	"doctorportal/models"
)

// DefaultCatalogService implements CatalogService over the document store.
type DefaultCatalogService struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}

// ListNames returns every service projected to its name.
func (s *DefaultCatalogService) ListNames() ([]models.ServiceSummary, error) {
	return s.Services.GetNames()
}

// Availability loads the full catalog and the day's bookings, then
// subtracts the booked slots per service.
func (s *DefaultCatalogService) Availability(date string) ([]models.Service, error) {
	services, err := s.Services.GetAll()
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.FindByDate(date)
	if err != nil {
		return nil, err
	}
	return ComputeAvailability(date, services, bookings), nil
}
