package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/highway/highway/internal/model"
)

// ListReviewsByEmail returns the reviews owned by the given email.
func (s *Store) ListReviewsByEmail(ctx context.Context, email string) ([]model.Review, error) {
	cur, err := s.reviews().Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cur.Close(ctx)

	reviews := []model.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview inserts a new review.
func (s *Store) CreateReview(ctx context.Context, review model.Review) (*InsertResult, error) {
	if review.Email == "" {
		return nil, ErrMissingEmail
	}

	res, err := s.reviews().InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return newInsertResult(res), nil
}

// CreateProfile inserts a new profile document.
func (s *Store) CreateProfile(ctx context.Context, profile model.Profile) (*InsertResult, error) {
	if profile.Email == "" {
		return nil, ErrMissingEmail
	}

	res, err := s.profiles().InsertOne(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return newInsertResult(res), nil
}
