package registration

import (
	"encoding/json"
	"io"
)

// MaxFeaturedProducts membatasi jumlah produk unggulan per pendaftaran.
const MaxFeaturedProducts = 5

// Categories berisi kategori UMKM yang diterima oleh sistem.
var Categories = []string{"makanan", "minuman", "jasa", "fashion", "lainnya"}

// ValidCategory memeriksa apakah kategori termasuk dalam daftar yang diterima.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// FileRef mewakili berkas gambar yang belum diunggah. Validator hanya
// membaca tipe dan ukurannya; isi berkas baru dibuka saat diunggah.
type FileRef interface {
	ContentType() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// Image menampung nilai field gambar: kosong, URL yang sudah ada,
// atau berkas yang belum diunggah.
type Image struct {
	URL  string
	File FileRef
}

// IsEmpty melaporkan apakah belum ada gambar sama sekali.
func (im Image) IsEmpty() bool {
	return im.URL == "" && im.File == nil
}

// UnmarshalJSON menerima bentuk string (URL atau kosong) dari klien.
func (im *Image) UnmarshalJSON(b []byte) error {
	var url string
	if err := json.Unmarshal(b, &url); err != nil {
		return err
	}
	im.URL = url
	im.File = nil
	return nil
}

// MarshalJSON menuliskan kembali URL-nya; berkas lokal tidak ikut.
func (im Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(im.URL)
}

// ProductDraft adalah satu produk unggulan di dalam formulir.
// Harga disimpan sebagai string berformat pemisah ribuan (mis. "25.000").
type ProductDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       Image  `json:"image"`
}

// Draft adalah isi formulir pendaftaran UMKM yang sedang berjalan.
// Field numerik disimpan dalam bentuk string mentah dari input pengguna
// dan baru diparse saat penyusunan payload.
type Draft struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`

	Address    string `json:"address"`
	ProvinceID string `json:"province_id"`
	Province   string `json:"province"`
	CityID     string `json:"city_id"`
	City       string `json:"city"`
	District   string `json:"district"`

	Contact             string `json:"contact"`
	OperatingHoursStart string `json:"operating_hours_start"`
	OperatingHoursEnd   string `json:"operating_hours_end"`

	OwnerName       string `json:"owner_name"`
	EstablishedYear string `json:"established_year"`
	EmployeeCount   string `json:"employee_count"`
	Image           Image  `json:"image"`

	FeaturedProducts []ProductDraft `json:"featured_products"`
}

// NewDraft membuat draft kosong dengan nilai awal formulir.
func NewDraft() Draft {
	return Draft{
		Category:            "makanan",
		OperatingHoursStart: "08:00",
		OperatingHoursEnd:   "17:00",
	}
}

// ProductErrors memetakan field produk ke pesan kesalahannya.
type ProductErrors = map[string]string

// FormErrors mencerminkan bentuk Draft: pesan per field ditambah daftar
// kesalahan per produk sesuai posisinya. Field yang valid tidak punya entri.
type FormErrors struct {
	Fields   map[string]string `json:"fields,omitempty"`
	Products []ProductErrors   `json:"featured_products,omitempty"`
}

// Empty melaporkan apakah tidak ada satu pun kesalahan.
func (e FormErrors) Empty() bool {
	if len(e.Fields) > 0 {
		return false
	}
	for _, pe := range e.Products {
		if len(pe) > 0 {
			return false
		}
	}
	return true
}

func (e *FormErrors) setField(field, msg string) {
	if msg == "" {
		delete(e.Fields, field)
		return
	}
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

func (e *FormErrors) setProductField(index int, field, msg string) {
	for len(e.Products) <= index {
		e.Products = append(e.Products, nil)
	}
	if msg == "" {
		delete(e.Products[index], field)
		return
	}
	if e.Products[index] == nil {
		e.Products[index] = make(ProductErrors)
	}
	e.Products[index][field] = msg
}
