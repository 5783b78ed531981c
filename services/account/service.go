package account

import (
	"fmt"

	"doctorportal/auth"
	doctorRepo "doctorportal/database/repository/doctor"
	userRepo "doctorportal/database/repository/user"
	"doctorportal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultAccountService implements AccountService.
type DefaultAccountService struct {
	Users   userRepo.UserRepository
	Doctors doctorRepo.DoctorRepository
	Tokens  *auth.TokenManager
}

// ListUsers returns every user document, role included.
func (s *DefaultAccountService) ListUsers() ([]bson.M, error) {
	return s.Users.GetAll()
}

// UpsertUser replaces or creates the profile keyed by email and issues a
// fresh token for that email.
func (s *DefaultAccountService) UpsertUser(email string, profile map[string]interface{}) (*UpsertResult, error) {
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return nil, fmt.Errorf("invalid email %q: %w", email, err)
	}

	doc := bson.M{}
	for k, v := range profile {
		doc[k] = v
	}
	// The path parameter is authoritative for the key field.
	doc["email"] = email

	result, err := s.Users.Upsert(email, doc)
	if err != nil {
		return nil, err
	}

	token, err := s.Tokens.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token for %s: %w", email, err)
	}
	return &UpsertResult{Result: result, Token: token}, nil
}

// PromoteAdmin elevates the given email to the admin role.
func (s *DefaultAccountService) PromoteAdmin(email string) (*mongo.UpdateResult, error) {
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return nil, fmt.Errorf("invalid email %q: %w", email, err)
	}
	return s.Users.SetRole(email, models.RoleAdmin)
}

// ListDoctors returns the doctor roster.
func (s *DefaultAccountService) ListDoctors() ([]models.Doctor, error) {
	return s.Doctors.GetAll()
}

// AddDoctor adds a doctor to the roster.
func (s *DefaultAccountService) AddDoctor(d models.Doctor) (*mongo.InsertOneResult, error) {
	if err := validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Email, validation.Required, is.Email),
	); err != nil {
		return nil, fmt.Errorf("invalid doctor: %w", err)
	}
	return s.Doctors.Insert(&d)
}

// RemoveDoctor deletes the doctor with the given email.
func (s *DefaultAccountService) RemoveDoctor(email string) (*mongo.DeleteResult, error) {
	return s.Doctors.DeleteByEmail(email)
}
