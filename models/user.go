package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the closed set of account roles.
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is an account keyed by email. Profile fields beyond these are
// free-form and stored as-is by the upsert path.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}
