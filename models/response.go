package models

// APIResponse adalah amplop seragam semua jawaban API:
// {success, data, message}.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
	Total   *int   `json:"total,omitempty"`
}

// Stats mendefinisikan struktur statistik aplikasi.
type Stats struct {
	TotalUmkm     int64 `json:"total_umkm"`
	TotalProducts int64 `json:"total_products"`
	TotalReviews  int64 `json:"total_reviews"`
}
