package bookingRepo

import (
	"doctorportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its hex ObjectID.
	// Returns (nil, nil) when no booking matches.
	GetByID(id string) (*models.Booking, error)
	// FindByPatient retrieves all bookings made by the given patient email.
	FindByPatient(patient string) ([]models.Booking, error)
	// FindByDate retrieves all bookings for the given date label.
	FindByDate(date string) ([]models.Booking, error)
	// FindByKey retrieves the booking matching the de-duplication key
	// (treatment, date, patient). Returns (nil, nil) when absent.
	FindByKey(treatment, date, patient string) (*models.Booking, error)
	// Insert stores a new booking. The unique (treatment, date, patient)
	// index makes a concurrent duplicate surface as a duplicate-key error.
	Insert(b *models.Booking) (*mongo.InsertOneResult, error)
	// MarkPaid sets paid=true and the transaction id on the booking.
	MarkPaid(id string, transactionID string) (*mongo.UpdateResult, error)
}
