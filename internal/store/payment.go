package store

import (
	"context"
	"fmt"

	"github.com/highway/highway/internal/model"
)

// InsertPayment appends a payment record. Payment documents are
// immutable after insertion; there is no update path.
func (s *Store) InsertPayment(ctx context.Context, payment model.Payment) (*InsertResult, error) {
	res, err := s.payments().InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	return newInsertResult(res), nil
}
