package account

import (
	"doctorportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpsertResult carries the store's write result alongside the freshly
// issued token. A new token is issued on every upsert, whether or not the
// account already existed.
type UpsertResult struct {
	Result *mongo.UpdateResult `json:"result"`
	Token  string              `json:"token"`
}

// AccountService manages user accounts and the doctor roster.
type AccountService interface {
	// ListUsers returns every user document, role included.
	ListUsers() ([]bson.M, error)
	// UpsertUser replaces or creates the profile keyed by email and
	// issues a fresh token for that email.
	UpsertUser(email string, profile map[string]interface{}) (*UpsertResult, error)
	// PromoteAdmin elevates the given email to the admin role.
	PromoteAdmin(email string) (*mongo.UpdateResult, error)

	// ListDoctors returns the doctor roster.
	ListDoctors() ([]models.Doctor, error)
	// AddDoctor adds a doctor to the roster.
	AddDoctor(d models.Doctor) (*mongo.InsertOneResult, error)
	// RemoveDoctor deletes the doctor with the given email.
	RemoveDoctor(email string) (*mongo.DeleteResult, error)
}
