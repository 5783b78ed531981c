package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"doctorportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the dedupe index plus the query indexes.
// The unique compound index is what closes the check-then-insert race:
// two concurrent creates for the same key can both pass FindByKey, but
// only one insert lands.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "treatment", Value: 1},
				{Key: "date", Value: 1},
				{Key: "patient", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "patient", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its hex ObjectID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id %q: %w", id, err)
	}

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// FindByPatient retrieves all bookings made by the given patient email.
func (r *MongoBookingRepo) FindByPatient(patient string) ([]models.Booking, error) {
	return r.find(bson.M{"patient": patient})
}

// FindByDate retrieves all bookings for the given date label.
func (r *MongoBookingRepo) FindByDate(date string) ([]models.Booking, error) {
	return r.find(bson.M{"date": date})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// FindByKey retrieves the booking matching the de-duplication key.
func (r *MongoBookingRepo) FindByKey(treatment, date, patient string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"treatment": treatment, "date": date, "patient": patient}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking for %s/%s/%s: %w", treatment, date, patient, err)
	}
	return &booking, nil
}

// Insert stores a new booking document.
func (r *MongoBookingRepo) Insert(b *models.Booking) (*mongo.InsertOneResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return result, nil
}

// MarkPaid sets paid=true and the transaction id on the booking.
func (r *MongoBookingRepo) MarkPaid(id string, transactionID string) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id %q: %w", id, err)
	}

	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to mark booking %s paid: %w", id, err)
	}
	return result, nil
}

// IsDuplicateKey reports whether err is a unique-index violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
