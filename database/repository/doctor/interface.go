package doctorRepo

import (
	"doctorportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository defines methods for doctor roster data access.
type DoctorRepository interface {
	// GetAll retrieves all doctors.
	GetAll() ([]models.Doctor, error)
	// Insert adds a doctor to the roster.
	Insert(d *models.Doctor) (*mongo.InsertOneResult, error)
	// DeleteByEmail removes the doctor with the given email.
	DeleteByEmail(email string) (*mongo.DeleteResult, error)
}
