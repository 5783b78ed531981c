package appointment

import (
	"fmt"
	"time"

	bookingRepo "doctorportal/database/repository/booking"
	paymentRepo "doctorportal/database/repository/payment"
	"doctorportal/models"
	"doctorportal/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
}

func validateBooking(b models.Booking) error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Treatment, validation.Required),
		validation.Field(&b.Date, validation.Required),
		validation.Field(&b.Patient, validation.Required),
		validation.Field(&b.Slot, validation.Required),
	)
}

// Create records a booking request. The pre-insert lookup returns the
// existing record for a repeat attempt; the unique (treatment, date,
// patient) index catches the concurrent case the lookup cannot.
func (s *DefaultAppointmentService) Create(b models.Booking) (*CreateResult, error) {
	if err := validateBooking(b); err != nil {
		return nil, fmt.Errorf("invalid booking: %w", err)
	}

	existing, err := s.Bookings.FindByKey(b.Treatment, b.Date, b.Patient)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &CreateResult{Success: false, Booking: existing}, nil
	}

	result, err := s.Bookings.Insert(&b)
	if err != nil {
		if bookingRepo.IsDuplicateKey(err) {
			// Lost the race to a concurrent create; report the winner.
			existing, findErr := s.Bookings.FindByKey(b.Treatment, b.Date, b.Patient)
			if findErr != nil {
				return nil, findErr
			}
			return &CreateResult{Success: false, Booking: existing}, nil
		}
		return nil, err
	}
	return &CreateResult{Success: true, Result: result}, nil
}

// ListByPatient returns all bookings made by the given patient email.
func (s *DefaultAppointmentService) ListByPatient(patient string) ([]models.Booking, error) {
	return s.Bookings.FindByPatient(patient)
}

// GetByID returns the booking with the given hex id, or nil.
func (s *DefaultAppointmentService) GetByID(id string) (*models.Booking, error) {
	return s.Bookings.GetByID(id)
}

// MarkPaid appends the payment to the log, then updates the booking. The
// two writes are not atomic: if the update fails after the log insert, an
// orphan payment record remains and the booking stays unpaid. Mongo
// multi-document transactions need a replica set we do not assume, so the
// orphan is logged instead of rolled back.
func (s *DefaultAppointmentService) MarkPaid(id string, p models.Payment) (*mongo.UpdateResult, error) {
	if err := validation.Validate(p.TransactionID, validation.Required); err != nil {
		return nil, fmt.Errorf("invalid payment: transactionId: %w", err)
	}

	p.PaymentID = uuid.New().String()
	p.BookingID = id
	p.CreatedAt = time.Now()

	if _, err := s.Payments.Insert(&p); err != nil {
		return nil, err
	}

	result, err := s.Bookings.MarkPaid(id, p.TransactionID)
	if err != nil {
		utils.GetLogger().Error("payment recorded but booking update failed",
			zap.String("bookingId", id),
			zap.String("transactionId", p.TransactionID),
			zap.Error(err))
		return nil, err
	}
	return result, nil
}
