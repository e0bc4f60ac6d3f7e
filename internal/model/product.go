package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a purchasable item in the catalog.
type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Img               string             `bson:"img,omitempty" json:"img,omitempty"`
	Price             float64            `bson:"price" json:"price"`
	MinOrderQuantity  int                `bson:"minOrderQuantity,omitempty" json:"minOrderQuantity,omitempty"`
	AvailableQuantity int                `bson:"availableQuantity,omitempty" json:"availableQuantity,omitempty"`
}
