package userRepo

import (
	"doctorportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines methods for user account data access.
type UserRepository interface {
	// GetByEmail retrieves a user by its email address.
	// Returns (nil, nil) when no account exists.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all user documents, free-form profile fields included.
	GetAll() ([]bson.M, error)
	// Upsert replaces or creates the user document keyed by email.
	Upsert(email string, doc bson.M) (*mongo.UpdateResult, error)
	// SetRole sets the account role for the given email.
	SetRole(email string, role models.Role) (*mongo.UpdateResult, error)
}
