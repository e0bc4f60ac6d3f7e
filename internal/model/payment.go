package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a settlement attempt.
// Records are never updated or deleted after insertion.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PaymentID     string             `bson:"paymentId" json:"paymentId"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        float64            `bson:"amount" json:"amount"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
