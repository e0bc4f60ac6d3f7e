package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order represents a purchase placed by a user.
//
// An order is created unpaid. It transitions to paid exactly once,
// when a settlement records the payment confirmation; a paid order
// never transitions back.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	ProductID     string             `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName   string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Quantity      int                `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
