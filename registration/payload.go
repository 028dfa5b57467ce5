package registration

import (
	"strconv"
	"strings"
)

// ProductPayload adalah satu produk unggulan dalam bentuk ternormalisasi,
// siap dikirim ke penyimpanan record.
type ProductPayload struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Price       int    `json:"price" bson:"price"`
	Image       string `json:"image" bson:"image"`
}

// Payload adalah satu-satunya definisi "data pendaftaran yang sah":
// bentuk ternormalisasi hasil rakitan draft yang dipakai baik oleh
// validator permintaan langsung maupun oleh pipeline pengiriman.
type Payload struct {
	Name            string           `json:"name" bson:"name"`
	Category        string           `json:"category" bson:"category"`
	Description     string           `json:"description" bson:"description"`
	Address         string           `json:"address" bson:"address"`
	City            string           `json:"city" bson:"city"`
	Province        string           `json:"province" bson:"province"`
	Contact         string           `json:"contact" bson:"contact"`
	OperatingHours  string           `json:"operating_hours" bson:"operating_hours"`
	Image           string           `json:"image" bson:"image"`
	OwnerName       string           `json:"owner_name" bson:"owner_name"`
	EstablishedYear *int             `json:"established_year" bson:"established_year"`
	EmployeeCount   int              `json:"employee_count" bson:"employee_count"`
	Products        []ProductPayload `json:"products,omitempty" bson:"-"`
}

// BuildPayload merakit payload dari draft yang sudah lolos validasi.
// imageURL adalah URL gambar utama hasil unggahan (atau URL lama);
// productImages berisi URL gambar tiap produk sesuai posisinya, string
// kosong untuk produk yang unggahannya gagal.
func BuildPayload(d *Draft, imageURL string, productImages []string) Payload {
	p := Payload{
		Name:           d.Name,
		Category:       d.Category,
		Description:    d.Description,
		Address:        d.Address,
		City:           d.City,
		Province:       d.Province,
		Contact:        d.Contact,
		OperatingHours: d.OperatingHoursStart + "-" + d.OperatingHoursEnd,
		Image:          imageURL,
		OwnerName:      d.OwnerName,
	}

	// String numerik opsional yang kosong menjadi null / 0.
	if year, err := strconv.Atoi(strings.TrimSpace(d.EstablishedYear)); err == nil && d.EstablishedYear != "" {
		p.EstablishedYear = &year
	}
	if count, err := strconv.Atoi(strings.TrimSpace(d.EmployeeCount)); err == nil && d.EmployeeCount != "" {
		p.EmployeeCount = count
	}

	for i, prod := range d.FeaturedProducts {
		image := ""
		if i < len(productImages) {
			image = productImages[i]
		}
		p.Products = append(p.Products, ProductPayload{
			Name:        prod.Name,
			Description: prod.Description,
			Price:       ParsePrice(prod.Price),
			Image:       image,
		})
	}

	return p
}
