package userRepo

import (
	"context"
	"fmt"
	"time"

	"doctorportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes keeps accounts unique per email.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetAll retrieves all user documents. Raw documents are returned so that
// free-form profile fields written by the upsert path survive the round trip.
func (r *MongoUserRepo) GetAll() ([]bson.M, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []bson.M
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// Upsert replaces or creates the user document keyed by email.
func (r *MongoUserRepo) Upsert(email string, doc bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	result, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": doc}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user with email %s: %w", email, err)
	}
	return result, nil
}

// SetRole sets the account role for the given email. No upsert: promoting
// an email that has no account matches zero documents, and the raw update
// result carries that fact back to the caller.
func (r *MongoUserRepo) SetRole(email string, role models.Role) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": role}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to set role for user %s: %w", email, err)
	}
	return result, nil
}
