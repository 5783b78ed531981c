package appointment

import (
	"doctorportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateResult reports the outcome of a booking request. Success is false
// when the (treatment, date, patient) key already has a booking, in which
// case Booking carries the existing record.
type CreateResult struct {
	Success bool                   `json:"success"`
	Booking *models.Booking        `json:"booking,omitempty"`
	Result  *mongo.InsertOneResult `json:"result,omitempty"`
}

// AppointmentService drives the booking lifecycle: Requested, then Paid.
// No other transitions exist; bookings are never deleted.
type AppointmentService interface {
	// Create records a booking request, de-duplicating on
	// (treatment, date, patient).
	Create(b models.Booking) (*CreateResult, error)
	// ListByPatient returns all bookings made by the given patient email.
	ListByPatient(patient string) ([]models.Booking, error)
	// GetByID returns the booking with the given hex id, or nil.
	GetByID(id string) (*models.Booking, error)
	// MarkPaid appends the payment to the log and flips the booking to paid.
	MarkPaid(id string, p models.Payment) (*mongo.UpdateResult, error)
}
