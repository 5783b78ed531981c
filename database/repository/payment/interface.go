package paymentRepo

import (
	"doctorportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository defines methods for the append-only payment log.
type PaymentRepository interface {
	// Insert appends a payment record. Records are never updated or deleted.
	Insert(p *models.Payment) (*mongo.InsertOneResult, error)
}
