// Package store provides the MongoDB access layer.
// Each collection gets typed operations; documents are validated
// at this boundary before they reach the driver.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names, fixed by the persisted data layout.
const (
	collProducts = "product"
	collUsers    = "users"
	collOrders   = "orders"
	collReviews  = "myreview"
	collPayments = "payments"
	collProfiles = "myprofile"
)

// Common errors for store operations.
var (
	// ErrNotFound is returned when no document matches the filter.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when a caller-supplied id is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid document id")
	// ErrMissingEmail is returned when an owned record carries no owner email.
	ErrMissingEmail = errors.New("email is required")
)

// Store provides database access methods.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and returns a Store bound to the named database.
func New(ctx context.Context, mongoURL, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) products() *mongo.Collection { return s.db.Collection(collProducts) }
func (s *Store) users() *mongo.Collection    { return s.db.Collection(collUsers) }
func (s *Store) orders() *mongo.Collection   { return s.db.Collection(collOrders) }
func (s *Store) reviews() *mongo.Collection  { return s.db.Collection(collReviews) }
func (s *Store) payments() *mongo.Collection { return s.db.Collection(collPayments) }
func (s *Store) profiles() *mongo.Collection { return s.db.Collection(collProfiles) }
