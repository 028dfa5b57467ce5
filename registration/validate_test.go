package registration

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFile memenuhi FileRef untuk pengujian tanpa berkas sungguhan.
type fakeFile struct {
	contentType string
	size        int64
}

func (f fakeFile) ContentType() string { return f.contentType }
func (f fakeFile) Size() int64         { return f.size }
func (f fakeFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("data")), nil
}

func TestValidateFieldName(t *testing.T) {
	assert.Equal(t, "Nama UMKM wajib diisi", ValidateField("name", ""))
	assert.Equal(t, "Nama UMKM minimal 3 karakter", ValidateField("name", "Ab"))
	assert.Equal(t, "Nama UMKM maksimal 100 karakter", ValidateField("name", strings.Repeat("a", 101)))
	assert.Empty(t, ValidateField("name", "Warung Nasi Bu Ani"))
}

func TestValidateFieldCategory(t *testing.T) {
	assert.Equal(t, "Kategori wajib diisi", ValidateField("category", ""))
	assert.Equal(t, "Kategori tidak valid", ValidateField("category", "elektronik"))
	for _, c := range Categories {
		assert.Empty(t, ValidateField("category", c))
	}
}

func TestValidateFieldOperatingHoursRequired(t *testing.T) {
	assert.Equal(t, "Jam buka wajib diisi", ValidateField("operating_hours_start", ""))
	assert.Equal(t, "Jam tutup wajib diisi", ValidateField("operating_hours_end", ""))
	assert.Empty(t, ValidateField("operating_hours_start", "08:00"))
	assert.Empty(t, ValidateField("operating_hours_end", "17:00"))
}

func TestValidateFieldContact(t *testing.T) {
	assert.Equal(t, "Nomor telepon wajib diisi", ValidateField("contact", ""))
	// Angka nol di depan bukan format internasional.
	assert.Equal(t, "Nomor harus diawali +62 atau 62", ValidateField("contact", "0812345678"))
	assert.Equal(t, "Nomor telepon tidak valid", ValidateField("contact", "+62812"))
	assert.Equal(t, "Nomor telepon terlalu panjang", ValidateField("contact", "+62812345678901234"))
	assert.Empty(t, ValidateField("contact", "+628123456789"))
	assert.Empty(t, ValidateField("contact", "62 812-3456-789"))
}

func TestValidateFieldEstablishedYear(t *testing.T) {
	assert.Equal(t, "Tahun tidak valid", ValidateField("established_year", "1899"))
	assert.Empty(t, ValidateField("established_year", "1900"))

	now := time.Now().Year()
	assert.Empty(t, ValidateField("established_year", fmt.Sprintf("%d", now)))
	assert.Equal(t, "Tahun tidak boleh lebih dari tahun sekarang",
		ValidateField("established_year", fmt.Sprintf("%d", now+1)))

	// Kosong dan non-numerik bukan urusan validator rentang.
	assert.Empty(t, ValidateField("established_year", ""))
	assert.Empty(t, ValidateField("established_year", "abc"))
}

func TestValidateFieldEmployeeCount(t *testing.T) {
	assert.Equal(t, "Jumlah karyawan tidak boleh negatif", ValidateField("employee_count", "-1"))
	assert.Equal(t, "Jumlah karyawan tidak valid", ValidateField("employee_count", "10001"))
	assert.Empty(t, ValidateField("employee_count", "0"))
	assert.Empty(t, ValidateField("employee_count", "10000"))
	assert.Empty(t, ValidateField("employee_count", ""))
}

func TestValidateFieldImage(t *testing.T) {
	assert.Empty(t, ValidateField("image", Image{}))
	assert.Empty(t, ValidateField("image", Image{File: fakeFile{"image/png", 1024}}))
	assert.Equal(t, "Format file harus JPG, PNG, atau WebP",
		ValidateField("image", Image{File: fakeFile{"image/gif", 1024}}))
	assert.Equal(t, "Ukuran file maksimal 5MB",
		ValidateField("image", Image{File: fakeFile{"image/png", MaxListingImageSize + 1}}))
}

func TestValidateProductField(t *testing.T) {
	assert.Equal(t, "Nama produk wajib diisi", ValidateProductField("name", ""))
	assert.Equal(t, "Nama produk minimal 2 karakter", ValidateProductField("name", "A"))

	assert.Equal(t, "Deskripsi produk wajib diisi", ValidateProductField("description", ""))
	assert.Equal(t, "Deskripsi produk minimal 10 karakter", ValidateProductField("description", "pendek"))

	assert.Equal(t, "Harga produk wajib diisi", ValidateProductField("price", ""))
	assert.Equal(t, "Harga minimal Rp 1.000", ValidateProductField("price", "999"))
	assert.Equal(t, "Harga terlalu tinggi", ValidateProductField("price", "1.000.000.000"))
	assert.Empty(t, ValidateProductField("price", "25.000"))

	// Gambar produk wajib, batasnya 3MB.
	assert.Equal(t, "Gambar produk wajib diisi", ValidateProductField("image", Image{}))
	assert.Equal(t, "Ukuran file maksimal 3MB",
		ValidateProductField("image", Image{File: fakeFile{"image/jpeg", MaxProductImageSize + 1}}))
	assert.Empty(t, ValidateProductField("image", Image{URL: "https://example.com/a.jpg"}))
}

func TestPriceRoundTrip(t *testing.T) {
	assert.Equal(t, "0", FormatPrice(0))
	assert.Equal(t, "999", FormatPrice(999))
	assert.Equal(t, "1.000", FormatPrice(1000))
	assert.Equal(t, "25.000", FormatPrice(25000))
	assert.Equal(t, "1.234.567", FormatPrice(1234567))

	for _, n := range []int{0, 999, 1000, 25000, 999999999} {
		assert.Equal(t, n, ParsePrice(FormatPrice(n)))
	}
	assert.Equal(t, 0, ParsePrice("abc"))
	assert.Equal(t, 25000, ParsePrice("Rp 25.000"))
}

func TestValidateHoursRule(t *testing.T) {
	d := NewDraft()
	d.OperatingHoursStart = "20:00"
	d.OperatingHoursEnd = "08:00"

	errs := ValidateStep(&d, 3)
	require.NotNil(t, errs.Fields)
	assert.Equal(t, "Jam tutup harus setelah jam buka", errs.Fields["operating_hours_end"])

	d.OperatingHoursEnd = "21:00"
	errs = ValidateStep(&d, 3)
	assert.NotContains(t, errs.Fields, "operating_hours_end")
}

func newValidDraft() Draft {
	d := NewDraft()
	d.Name = "Warung Nasi Bu Ani"
	d.Category = "makanan"
	d.Description = "Warung nasi rumahan"
	d.Address = "Jl. Melati No. 12, Bandung"
	d.Province = "Jawa Barat"
	d.City = "Bandung"
	d.Contact = "+628123456789"
	d.OwnerName = "Bu Ani"
	return d
}

func TestValidateFormAndIsValid(t *testing.T) {
	d := newValidDraft()
	errs := ValidateForm(&d)
	assert.True(t, errs.Empty())
	assert.True(t, IsValid(&d, errs))

	// Field wajib kosong menggagalkan IsValid walau tanpa pesan baru.
	d.OwnerName = ""
	errs = ValidateForm(&d)
	assert.False(t, IsValid(&d, errs))
}

func TestValidateFormRejectsInvalidCategory(t *testing.T) {
	// Kategori di luar enum harus tertangkap sapuan penuh, bukan hanya
	// oleh rute admin.
	d := newValidDraft()
	d.Category = "elektronik"
	errs := ValidateForm(&d)
	assert.Equal(t, "Kategori tidak valid", errs.Fields["category"])
	assert.False(t, errs.Empty())

	d.Category = ""
	errs = ValidateForm(&d)
	assert.Equal(t, "Kategori wajib diisi", errs.Fields["category"])
}

func TestValidateFormRejectsEmptiedHours(t *testing.T) {
	d := newValidDraft()
	d.OperatingHoursStart = ""
	d.OperatingHoursEnd = ""
	errs := ValidateForm(&d)
	assert.Equal(t, "Jam buka wajib diisi", errs.Fields["operating_hours_start"])
	assert.Equal(t, "Jam tutup wajib diisi", errs.Fields["operating_hours_end"])
}

func TestValidateFormProducts(t *testing.T) {
	d := newValidDraft()
	d.FeaturedProducts = []ProductDraft{
		{Name: "Nasi Liwet", Description: "Nasi liwet khas Sunda", Price: "15.000",
			Image: Image{URL: "https://example.com/liwet.jpg"}},
		{Name: "", Description: "x", Price: "500"},
	}

	errs := ValidateForm(&d)
	require.Len(t, errs.Products, 2)
	assert.Empty(t, errs.Products[0])
	assert.Equal(t, "Nama produk wajib diisi", errs.Products[1]["name"])
	assert.Equal(t, "Deskripsi produk minimal 10 karakter", errs.Products[1]["description"])
	assert.Equal(t, "Harga minimal Rp 1.000", errs.Products[1]["price"])
	assert.Equal(t, "Gambar produk wajib diisi", errs.Products[1]["image"])
	assert.False(t, errs.Empty())
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("elektronik"))
	assert.False(t, ValidCategory(""))
}
