package wilayah

import "teroka-backend/models"

// staticProvinces adalah daftar provinsi bawaan, dipakai bila API
// wilayah tidak terjangkau.
var staticProvinces = []models.Province{
	{ID: "11", Name: "Aceh"},
	{ID: "12", Name: "Sumatera Utara"},
	{ID: "13", Name: "Sumatera Barat"},
	{ID: "14", Name: "Riau"},
	{ID: "15", Name: "Jambi"},
	{ID: "16", Name: "Sumatera Selatan"},
	{ID: "17", Name: "Bengkulu"},
	{ID: "18", Name: "Lampung"},
	{ID: "19", Name: "Kepulauan Bangka Belitung"},
	{ID: "21", Name: "Kepulauan Riau"},
	{ID: "31", Name: "DKI Jakarta"},
	{ID: "32", Name: "Jawa Barat"},
	{ID: "33", Name: "Jawa Tengah"},
	{ID: "34", Name: "DI Yogyakarta"},
	{ID: "35", Name: "Jawa Timur"},
	{ID: "36", Name: "Banten"},
	{ID: "51", Name: "Bali"},
	{ID: "52", Name: "Nusa Tenggara Barat"},
	{ID: "53", Name: "Nusa Tenggara Timur"},
	{ID: "61", Name: "Kalimantan Barat"},
	{ID: "62", Name: "Kalimantan Tengah"},
	{ID: "63", Name: "Kalimantan Selatan"},
	{ID: "64", Name: "Kalimantan Timur"},
	{ID: "65", Name: "Kalimantan Utara"},
	{ID: "71", Name: "Sulawesi Utara"},
	{ID: "72", Name: "Sulawesi Tengah"},
	{ID: "73", Name: "Sulawesi Selatan"},
	{ID: "74", Name: "Sulawesi Tenggara"},
	{ID: "75", Name: "Gorontalo"},
	{ID: "76", Name: "Sulawesi Barat"},
	{ID: "81", Name: "Maluku"},
	{ID: "82", Name: "Maluku Utara"},
	{ID: "91", Name: "Papua Barat"},
	{ID: "94", Name: "Papua"},
}

// StaticProvinces mengembalikan salinan daftar provinsi bawaan.
func StaticProvinces() []models.Province {
	out := make([]models.Province, len(staticProvinces))
	copy(out, staticProvinces)
	return out
}
