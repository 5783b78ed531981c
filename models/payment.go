package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only log entry written when a booking is marked paid.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PaymentID     string             `bson:"paymentId" json:"paymentId"`
	BookingID     string             `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Patient       string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Treatment     string             `bson:"treatment,omitempty" json:"treatment,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
