package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking ties a patient to a treatment slot on a given date.
// Treatment references Service.Name; there is no enforced foreign key.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment     string             `bson:"treatment" json:"treatment"`
	Date          string             `bson:"date" json:"date"`
	Slot          string             `bson:"slot" json:"slot"`
	Patient       string             `bson:"patient" json:"patient"`
	PatientName   string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
