package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/highway/highway/internal/model"
)

// ListOrdersByEmail returns the orders owned by the given email.
func (s *Store) ListOrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	cur, err := s.orders().Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := []model.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// GetOrder fetches one order by its hex id.
func (s *Store) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var order model.Order
	err = s.orders().FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// CreateOrder inserts a new order. Orders are always created unpaid.
func (s *Store) CreateOrder(ctx context.Context, order model.Order) (*InsertResult, error) {
	if order.Email == "" {
		return nil, ErrMissingEmail
	}
	order.Paid = false
	order.TransactionID = ""

	res, err := s.orders().InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return newInsertResult(res), nil
}

// MarkOrderPaid flips the order to paid and attaches the transaction id,
// returning the updated document. The update is idempotent: marking an
// already-paid order paid again rewrites the same fields.
func (s *Store) MarkOrderPaid(ctx context.Context, id, transactionID string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": transactionID,
	}}

	var order model.Order
	err = s.orders().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark order paid: %w", err)
	}
	return &order, nil
}
