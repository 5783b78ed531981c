package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable treatment with a fixed daily slot schedule.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price" json:"price"`
}

// ServiceSummary is the name-only projection returned by the catalog listing.
type ServiceSummary struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
