package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &MongoPaymentRepo{coll: db.Collection("payments")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Insert appends a payment record.
func (r *MongoPaymentRepo) Insert(p *models.Payment) (*mongo.InsertOneResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return result, nil
}
