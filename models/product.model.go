package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product mendefinisikan struktur produk milik sebuah UMKM.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UmkmID      primitive.ObjectID `json:"umkm_id" bson:"umkm_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       int                `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image" bson:"image"`
	IsAvailable bool               `json:"is_available" bson:"is_available"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProductInput mendefinisikan body permintaan pembuatan/pembaruan produk.
type ProductInput struct {
	UmkmID      string `json:"umkm_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	IsAvailable *bool  `json:"is_available"`
}
