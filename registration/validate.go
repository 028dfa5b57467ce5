package registration

import (
	"strconv"
	"strings"
	"time"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

const (
	// MaxListingImageSize adalah batas ukuran gambar utama UMKM (5MB).
	MaxListingImageSize = 5 * 1024 * 1024
	// MaxProductImageSize adalah batas ukuran gambar produk (3MB).
	MaxProductImageSize = 3 * 1024 * 1024
)

// digitsOnly membuang semua karakter non-digit.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParsePrice membuang pemisah ribuan lalu memparse harga sebagai integer.
// String tanpa digit menghasilkan 0.
func ParsePrice(s string) int {
	digits := digitsOnly(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// FormatPrice memformat nilai harga dengan pemisah ribuan gaya id-ID,
// mis. 25000 -> "25.000". Memformat lalu memparse kembali mengembalikan
// nilai semula.
func FormatPrice(n int) string {
	if n < 0 {
		n = 0
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func validateImage(value any, maxSize int64) string {
	im, ok := value.(Image)
	if !ok {
		return ""
	}
	if im.File == nil {
		return ""
	}
	if !allowedImageTypes[im.File.ContentType()] {
		return "Format file harus JPG, PNG, atau WebP"
	}
	if im.File.Size() > maxSize {
		if maxSize == MaxProductImageSize {
			return "Ukuran file maksimal 3MB"
		}
		return "Ukuran file maksimal 5MB"
	}
	return ""
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

// ValidateField memeriksa satu field UMKM dan mengembalikan pesan
// kesalahan, atau string kosong bila valid. Aturan diperiksa berurutan
// dan berhenti pada pelanggaran pertama.
func ValidateField(field string, value any) string {
	switch field {
	case "name":
		v := asString(value)
		if v == "" {
			return "Nama UMKM wajib diisi"
		}
		if len([]rune(v)) < 3 {
			return "Nama UMKM minimal 3 karakter"
		}
		if len([]rune(v)) > 100 {
			return "Nama UMKM maksimal 100 karakter"
		}

	case "category":
		v := asString(value)
		if v == "" {
			return "Kategori wajib diisi"
		}
		if !ValidCategory(v) {
			return "Kategori tidak valid"
		}

	case "contact":
		v := asString(value)
		if v == "" {
			return "Nomor telepon wajib diisi"
		}
		digits := digitsOnly(v)
		if !strings.HasPrefix(digits, "62") {
			return "Nomor harus diawali +62 atau 62"
		}
		if len(digits) < 10 {
			return "Nomor telepon tidak valid"
		}
		if len(digits) > 15 {
			return "Nomor telepon terlalu panjang"
		}

	case "address":
		v := asString(value)
		if v == "" {
			return "Alamat wajib diisi"
		}
		if len([]rune(v)) < 10 {
			return "Alamat minimal 10 karakter"
		}

	case "city":
		v := asString(value)
		if v == "" {
			return "Kota wajib diisi"
		}
		if len([]rune(v)) < 2 {
			return "Nama kota tidak valid"
		}

	case "province":
		v := asString(value)
		if v == "" {
			return "Provinsi wajib diisi"
		}
		if len([]rune(v)) < 2 {
			return "Nama provinsi tidak valid"
		}

	case "operating_hours_start":
		if asString(value) == "" {
			return "Jam buka wajib diisi"
		}

	case "operating_hours_end":
		if asString(value) == "" {
			return "Jam tutup wajib diisi"
		}

	case "owner_name":
		v := asString(value)
		if v == "" {
			return "Nama pemilik wajib diisi"
		}
		if len([]rune(v)) < 2 {
			return "Nama pemilik minimal 2 karakter"
		}
		if len([]rune(v)) > 50 {
			return "Nama pemilik maksimal 50 karakter"
		}

	case "established_year":
		v := asString(value)
		if v != "" {
			year, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				// String non-numerik dibiarkan; wajib-tidaknya field
				// diperiksa lewat kekosongan, bukan di sini.
				return ""
			}
			if year < 1900 {
				return "Tahun tidak valid"
			}
			if year > time.Now().Year() {
				return "Tahun tidak boleh lebih dari tahun sekarang"
			}
		}

	case "employee_count":
		v := asString(value)
		if v != "" {
			count, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return ""
			}
			if count < 0 {
				return "Jumlah karyawan tidak boleh negatif"
			}
			if count > 10000 {
				return "Jumlah karyawan tidak valid"
			}
		}

	case "image":
		return validateImage(value, MaxListingImageSize)
	}

	return ""
}

// ValidateProductField memeriksa satu field produk unggulan.
func ValidateProductField(field string, value any) string {
	switch field {
	case "name":
		v := asString(value)
		if v == "" {
			return "Nama produk wajib diisi"
		}
		if len([]rune(v)) < 2 {
			return "Nama produk minimal 2 karakter"
		}
		if len([]rune(v)) > 100 {
			return "Nama produk maksimal 100 karakter"
		}

	case "description":
		v := asString(value)
		if v == "" {
			return "Deskripsi produk wajib diisi"
		}
		if len([]rune(v)) < 10 {
			return "Deskripsi produk minimal 10 karakter"
		}
		if len([]rune(v)) > 500 {
			return "Deskripsi produk maksimal 500 karakter"
		}

	case "price":
		v := asString(value)
		if v == "" {
			return "Harga produk wajib diisi"
		}
		price := ParsePrice(v)
		if price < 1000 {
			return "Harga minimal Rp 1.000"
		}
		if price > 999999999 {
			return "Harga terlalu tinggi"
		}

	case "image":
		im, ok := value.(Image)
		if ok && im.IsEmpty() {
			return "Gambar produk wajib diisi"
		}
		return validateImage(value, MaxProductImageSize)
	}

	return ""
}

// validateHours memeriksa aturan lintas-field jam operasional: jam tutup
// harus lebih besar dari jam buka (perbandingan leksikografis "HH:MM").
func validateHours(start, end string) string {
	if start != "" && end != "" && start >= end {
		return "Jam tutup harus setelah jam buka"
	}
	return ""
}

func productFieldValue(p ProductDraft, field string) any {
	switch field {
	case "name":
		return p.Name
	case "description":
		return p.Description
	case "price":
		return p.Price
	case "image":
		return p.Image
	}
	return ""
}

func fieldValue(d *Draft, field string) any {
	switch field {
	case "name":
		return d.Name
	case "category":
		return d.Category
	case "description":
		return d.Description
	case "address":
		return d.Address
	case "province":
		return d.Province
	case "city":
		return d.City
	case "district":
		return d.District
	case "contact":
		return d.Contact
	case "operating_hours_start":
		return d.OperatingHoursStart
	case "operating_hours_end":
		return d.OperatingHoursEnd
	case "owner_name":
		return d.OwnerName
	case "established_year":
		return d.EstablishedYear
	case "employee_count":
		return d.EmployeeCount
	case "image":
		return d.Image
	}
	return ""
}

var umkmFields = []string{
	"name", "category", "description", "address", "province", "city",
	"district", "contact", "operating_hours_start", "operating_hours_end",
	"owner_name", "established_year", "employee_count", "image",
}

func validateProduct(p ProductDraft) ProductErrors {
	var errs ProductErrors
	for _, field := range []string{"name", "description", "price", "image"} {
		if msg := ValidateProductField(field, productFieldValue(p, field)); msg != "" {
			if errs == nil {
				errs = make(ProductErrors)
			}
			errs[field] = msg
		}
	}
	return errs
}

// ValidateForm menjalankan seluruh validator atas semua field draft,
// termasuk produk unggulan dan aturan jam operasional.
func ValidateForm(d *Draft) FormErrors {
	var errs FormErrors
	for _, field := range umkmFields {
		errs.setField(field, ValidateField(field, fieldValue(d, field)))
	}
	if msg := validateHours(d.OperatingHoursStart, d.OperatingHoursEnd); msg != "" {
		errs.setField("operating_hours_end", msg)
	}
	if len(d.FeaturedProducts) > 0 {
		errs.Products = make([]ProductErrors, len(d.FeaturedProducts))
		for i, p := range d.FeaturedProducts {
			errs.Products[i] = validateProduct(p)
		}
	}
	return errs
}

// requiredFields adalah field yang wajib terisi agar formulir bisa dikirim.
var requiredFields = []string{
	"name", "category", "address", "city", "province", "contact",
	"operating_hours_start", "operating_hours_end", "owner_name",
}

// IsValid adalah predikat agregat "apakah formulir ini bisa dikirim":
// semua field wajib terisi dan tidak ada kesalahan tersisa.
func IsValid(d *Draft, errs FormErrors) bool {
	for _, field := range requiredFields {
		if asString(fieldValue(d, field)) == "" {
			return false
		}
	}
	return errs.Empty()
}
