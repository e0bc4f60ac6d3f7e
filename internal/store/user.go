package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/highway/highway/internal/model"
)

// ListUsers returns every user account.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	cur, err := s.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cur.Close(ctx)

	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// GetUserByEmail retrieves a user by email.
// Returns ErrNotFound when no account exists for the email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// UpsertUser creates or updates the user document keyed by email.
// Zero-value fields are left untouched, so a plain profile update
// cannot strip an existing role.
func (s *Store) UpsertUser(ctx context.Context, email string, user model.User) (*UpdateResult, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	user.Email = email

	res, err := s.users().UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": user},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return newUpdateResult(res), nil
}

// GrantAdmin sets the admin role on an existing user.
// No upsert: granting admin to a missing account matches nothing.
func (s *Store) GrantAdmin(ctx context.Context, email string) (*UpdateResult, error) {
	res, err := s.users().UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": model.RoleAdmin}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to grant admin: %w", err)
	}
	return newUpdateResult(res), nil
}
