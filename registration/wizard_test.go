package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardNextGatedByStepValidation(t *testing.T) {
	w := NewWizard()

	// Langkah 1 dengan nama kosong tidak boleh maju.
	next, ok := w.Next()
	assert.False(t, ok)
	assert.Equal(t, 1, next.Step)
	assert.Equal(t, "Nama UMKM wajib diisi", next.Errors.Fields["name"])

	// Setelah nama valid, maju ke langkah 2.
	w = w.SetField("name", "Warung Nasi Bu Ani")
	next, ok = w.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, next.Step)
}

func TestWizardSetFieldRevalidates(t *testing.T) {
	w := NewWizard().SetField("contact", "0812345678")
	assert.Equal(t, "Nomor harus diawali +62 atau 62", w.Errors.Fields["contact"])

	w = w.SetField("contact", "+628123456789")
	assert.NotContains(t, w.Errors.Fields, "contact")
}

func TestWizardImmutability(t *testing.T) {
	w := NewWizard()
	_ = w.SetField("name", "Toko Baru")
	assert.Empty(t, w.Draft.Name)

	withProduct := w.AddProduct()
	assert.Empty(t, w.Draft.FeaturedProducts)
	assert.Len(t, withProduct.Draft.FeaturedProducts, 1)
}

func TestWizardPreviousFloorsAtOne(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, 1, w.Previous().Step)
	assert.True(t, w.CanCancel())

	w.Step = 3
	assert.Equal(t, 2, w.Previous().Step)
	assert.False(t, w.CanCancel())
}

func TestWizardSetWilayahCascadingReset(t *testing.T) {
	w := NewWizard().
		SetWilayah("province", "32", "Jawa Barat").
		SetWilayah("city", "3273", "Kota Bandung").
		SetWilayah("district", "3273010", "Sukasari")

	assert.Equal(t, "Jawa Barat", w.Draft.Province)
	assert.Equal(t, "Kota Bandung", w.Draft.City)
	assert.Equal(t, "Sukasari", w.Draft.District)

	// Ganti provinsi: kota dan kecamatan ikut kosong.
	w = w.SetWilayah("province", "33", "Jawa Tengah")
	assert.Equal(t, "Jawa Tengah", w.Draft.Province)
	assert.Empty(t, w.Draft.City)
	assert.Empty(t, w.Draft.District)

	// Ganti kota: hanya kecamatan yang kosong.
	w = w.SetWilayah("city", "3273", "Kota Bandung").
		SetWilayah("district", "3273010", "Sukasari").
		SetWilayah("city", "3204", "Kabupaten Bandung")
	assert.Equal(t, "Kabupaten Bandung", w.Draft.City)
	assert.Empty(t, w.Draft.District)
}

func TestWizardProductLimit(t *testing.T) {
	w := NewWizard()
	for i := 0; i < MaxFeaturedProducts+2; i++ {
		w = w.AddProduct()
	}
	assert.Len(t, w.Draft.FeaturedProducts, MaxFeaturedProducts)

	w = w.RemoveProduct(0)
	assert.Len(t, w.Draft.FeaturedProducts, MaxFeaturedProducts-1)

	// Index di luar rentang tidak mengubah apa pun.
	assert.Len(t, w.RemoveProduct(99).Draft.FeaturedProducts, MaxFeaturedProducts-1)
}

func TestWizardSetProductField(t *testing.T) {
	w := NewWizard().AddProduct()
	w = w.SetProductField(0, "price", "500")
	require.Len(t, w.Errors.Products, 1)
	assert.Equal(t, "Harga minimal Rp 1.000", w.Errors.Products[0]["price"])

	w = w.SetProductField(0, "price", "15.000")
	assert.NotContains(t, w.Errors.Products[0], "price")
}

func TestWizardSubmitJumpsToEarliestErrorStep(t *testing.T) {
	d := newValidDraft()
	d.Province = "" // langkah 2
	d.FeaturedProducts = []ProductDraft{{}} // langkah 4

	w := Wizard{Step: 5, Draft: d}
	w, ok := w.Submit()
	assert.False(t, ok)
	assert.Equal(t, 2, w.Step)

	// Perbaiki langkah 2: lompatan berikutnya ke produk (langkah 4).
	w.Draft.Province = "Jawa Barat"
	w, ok = w.Submit()
	assert.False(t, ok)
	assert.Equal(t, 4, w.Step)

	w.Draft.FeaturedProducts = nil
	w, ok = w.Submit()
	assert.True(t, ok)
	assert.True(t, w.Errors.Empty())
}

func TestWizardSubmitRejectsInvalidCategory(t *testing.T) {
	d := newValidDraft()
	d.Category = "elektronik"

	w := Wizard{Step: 5, Draft: d}
	w, ok := w.Submit()
	assert.False(t, ok)
	assert.Equal(t, 1, w.Step)
	assert.Equal(t, "Kategori tidak valid", w.Errors.Fields["category"])
}

func TestEarliestErrorStepOrdering(t *testing.T) {
	errs := FormErrors{Fields: map[string]string{
		"owner_name": "Nama pemilik wajib diisi",
		"contact":    "Nomor telepon wajib diisi",
	}}
	assert.Equal(t, 3, EarliestErrorStep(errs))

	errs = FormErrors{Products: []ProductErrors{{"name": "Nama produk wajib diisi"}}}
	assert.Equal(t, 4, EarliestErrorStep(errs))

	errs = FormErrors{Fields: map[string]string{"image": "Ukuran file maksimal 5MB"}}
	assert.Equal(t, 5, EarliestErrorStep(errs))
}
