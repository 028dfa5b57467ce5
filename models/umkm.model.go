package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Umkm mendefinisikan struktur record UMKM di koleksi "umkm".
type Umkm struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Category        string             `json:"category" bson:"category"`
	Description     string             `json:"description" bson:"description"`
	Address         string             `json:"address" bson:"address"`
	City            string             `json:"city" bson:"city"`
	Province        string             `json:"province" bson:"province"`
	Latitude        float64            `json:"latitude" bson:"latitude"`
	Longitude       float64            `json:"longitude" bson:"longitude"`
	Rating          float64            `json:"rating" bson:"rating"`
	Image           string             `json:"image" bson:"image"`
	Contact         string             `json:"contact" bson:"contact"`
	OperatingHours  string             `json:"operating_hours" bson:"operating_hours"`
	OwnerName       string             `json:"owner_name" bson:"owner_name"`
	EstablishedYear *int               `json:"established_year" bson:"established_year"`
	EmployeeCount   int                `json:"employee_count" bson:"employee_count"`
	TotalCustomers  int                `json:"total_customers" bson:"total_customers"`
	TotalReviews    int                `json:"total_reviews" bson:"total_reviews"`
	IsActive        bool               `json:"is_active" bson:"is_active"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`

	// Diisi hanya pada endpoint detail.
	Products []Product `json:"products,omitempty" bson:"-"`
	Reviews  []Review  `json:"reviews,omitempty" bson:"-"`
}

// UmkmInput mendefinisikan body permintaan pembuatan/pembaruan UMKM.
// Field numerik opsional bernilai pointer agar null bisa dibedakan dari nol.
type UmkmInput struct {
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	Address         string         `json:"address"`
	City            string         `json:"city"`
	Province        string         `json:"province"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	Contact         string         `json:"contact"`
	OperatingHours  string         `json:"operating_hours"`
	Image           string         `json:"image"`
	OwnerName       string         `json:"owner_name"`
	EstablishedYear *int           `json:"established_year"`
	EmployeeCount   int            `json:"employee_count"`
	Products        []ProductInput `json:"products"`
}
