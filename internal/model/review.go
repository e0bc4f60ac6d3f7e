package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a product review owned by a user (by email match).
type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Rating      float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Img         string             `bson:"img,omitempty" json:"img,omitempty"`
}

// Profile holds free-form public profile fields for a user.
type Profile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Education string             `bson:"education,omitempty" json:"education,omitempty"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedIn  string             `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Img       string             `bson:"img,omitempty" json:"img,omitempty"`
}
