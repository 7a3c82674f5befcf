package mybank

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAccountRepository implements Repository over a Mongo collection.
type MongoAccountRepository struct {
	collection *mongo.Collection
}

func NewMongoAccountRepository(c *mongo.Collection) *MongoAccountRepository {
	return &MongoAccountRepository{collection: c}
}

// EnsureIndexes creates the unique index on email that backs the
// store-level uniqueness guarantee. It must run before the repository
// serves traffic.
func (m *MongoAccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var acc Account
	sr := m.collection.FindOne(ctx, bson.M{"email": email})

	if errors.Is(sr.Err(), mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}

	if err := sr.Decode(&acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (m *MongoAccountRepository) Store(ctx context.Context, acc *Account) error {
	acc.ID = NewID()
	acc.CreatedAt = time.Now().UTC()

	if _, err := m.collection.InsertOne(ctx, acc); err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// isDuplicateKey reports whether err is the unique-index violation the
// server raises when two inserts race on the same email.
func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 || e.Code == 11001 {
				return true
			}
		}
	}
	return false
}

var _ Repository = (*MongoAccountRepository)(nil)
