package models

// Province adalah satu entri provinsi dari API wilayah.
type Province struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Regency adalah satu entri kota/kabupaten di bawah sebuah provinsi.
type Regency struct {
	ID         string `json:"id"`
	ProvinceID string `json:"province_id"`
	Name       string `json:"name"`
}

// District adalah satu entri kecamatan di bawah sebuah kota/kabupaten.
type District struct {
	ID        string `json:"id"`
	RegencyID string `json:"regency_id"`
	Name      string `json:"name"`
}
