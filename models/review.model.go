package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review mendefinisikan struktur ulasan sebuah UMKM.
type Review struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UmkmID    primitive.ObjectID `json:"umkm_id" bson:"umkm_id"`
	UserName  string             `json:"user_name" bson:"user_name"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	Image     string             `json:"image" bson:"image"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// ReviewInput mendefinisikan body permintaan pembuatan/pembaruan ulasan.
type ReviewInput struct {
	UmkmID   string `json:"umkm_id"`
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Image    string `json:"image"`
}
