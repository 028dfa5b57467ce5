package registration

// StepCount adalah jumlah langkah formulir pendaftaran.
const StepCount = 5

// stepFields memetakan langkah ke field yang divalidasi saat pengguna
// menekan "Selanjutnya". Langkah 4 berisi produk unggulan dan ditangani
// terpisah. Pemetaan ini tetap, tidak bergantung pada jawaban field lain.
var stepFields = map[int][]string{
	1: {"name", "category", "description"},
	2: {"province", "city", "district", "address"},
	3: {"contact", "operating_hours_start", "operating_hours_end"},
	5: {"owner_name", "established_year", "employee_count", "image"},
}

// Wizard adalah mesin langkah formulir pendaftaran. Nilainya immutable:
// setiap transisi mengembalikan Wizard baru tanpa mengubah penerimanya,
// sehingga bisa diuji tanpa lingkungan render.
type Wizard struct {
	Step   int        `json:"step"`
	Draft  Draft      `json:"draft"`
	Errors FormErrors `json:"errors"`
}

// NewWizard membuat wizard di langkah pertama dengan draft kosong.
func NewWizard() Wizard {
	return Wizard{Step: 1, Draft: NewDraft()}
}

// SetField memperbarui satu field draft dan langsung memvalidasi ulang
// field tersebut, meniru umpan balik per-ketikan di formulir.
func (w Wizard) SetField(field string, value any) Wizard {
	switch field {
	case "name":
		w.Draft.Name = asString(value)
	case "category":
		w.Draft.Category = asString(value)
	case "description":
		w.Draft.Description = asString(value)
	case "address":
		w.Draft.Address = asString(value)
	case "contact":
		w.Draft.Contact = asString(value)
	case "operating_hours_start":
		w.Draft.OperatingHoursStart = asString(value)
	case "operating_hours_end":
		w.Draft.OperatingHoursEnd = asString(value)
	case "owner_name":
		w.Draft.OwnerName = asString(value)
	case "established_year":
		w.Draft.EstablishedYear = asString(value)
	case "employee_count":
		w.Draft.EmployeeCount = asString(value)
	case "image":
		if im, ok := value.(Image); ok {
			w.Draft.Image = im
		}
	}
	w.Errors = copyErrors(w.Errors)
	w.Errors.setField(field, ValidateField(field, fieldValue(&w.Draft, field)))
	return w
}

// SetWilayah mencatat pilihan wilayah beserta nama denormalisasinya.
// Mengganti provinsi mengosongkan kota dan kecamatan; mengganti kota
// mengosongkan kecamatan.
func (w Wizard) SetWilayah(level, id, name string) Wizard {
	switch level {
	case "province":
		w.Draft.ProvinceID = id
		w.Draft.Province = name
		w.Draft.CityID = ""
		w.Draft.City = ""
		w.Draft.District = ""
	case "city":
		w.Draft.CityID = id
		w.Draft.City = name
		w.Draft.District = ""
	case "district":
		w.Draft.District = name
	}
	return w
}

// AddProduct menambah produk unggulan kosong, maksimal MaxFeaturedProducts.
func (w Wizard) AddProduct() Wizard {
	if len(w.Draft.FeaturedProducts) >= MaxFeaturedProducts {
		return w
	}
	w.Draft.FeaturedProducts = append(copyProducts(w.Draft.FeaturedProducts), ProductDraft{})
	return w
}

// RemoveProduct membuang produk pada posisi index beserta kesalahannya.
func (w Wizard) RemoveProduct(index int) Wizard {
	if index < 0 || index >= len(w.Draft.FeaturedProducts) {
		return w
	}
	products := copyProducts(w.Draft.FeaturedProducts)
	w.Draft.FeaturedProducts = append(products[:index], products[index+1:]...)
	w.Errors = copyErrors(w.Errors)
	if index < len(w.Errors.Products) {
		w.Errors.Products = append(w.Errors.Products[:index], w.Errors.Products[index+1:]...)
	}
	return w
}

// SetProductField memperbarui satu field produk dan memvalidasinya.
func (w Wizard) SetProductField(index int, field string, value any) Wizard {
	if index < 0 || index >= len(w.Draft.FeaturedProducts) {
		return w
	}
	products := copyProducts(w.Draft.FeaturedProducts)
	p := &products[index]
	switch field {
	case "name":
		p.Name = asString(value)
	case "description":
		p.Description = asString(value)
	case "price":
		p.Price = asString(value)
	case "image":
		if im, ok := value.(Image); ok {
			p.Image = im
		}
	}
	w.Draft.FeaturedProducts = products
	w.Errors = copyErrors(w.Errors)
	w.Errors.setProductField(index, field, ValidateProductField(field, productFieldValue(*p, field)))
	return w
}

// ValidateStep menjalankan validator untuk field milik satu langkah saja.
func ValidateStep(d *Draft, step int) FormErrors {
	var errs FormErrors
	for _, field := range stepFields[step] {
		errs.setField(field, ValidateField(field, fieldValue(d, field)))
	}
	if step == 3 {
		if msg := validateHours(d.OperatingHoursStart, d.OperatingHoursEnd); msg != "" {
			errs.setField("operating_hours_end", msg)
		}
	}
	if step == 4 && len(d.FeaturedProducts) > 0 {
		errs.Products = make([]ProductErrors, len(d.FeaturedProducts))
		for i, p := range d.FeaturedProducts {
			errs.Products[i] = validateProduct(p)
		}
	}
	return errs
}

// Next maju satu langkah bila semua field langkah saat ini lolos
// validasi. Bila tidak, langkah tetap dan kesalahan langkah tersebut
// diisi untuk ditampilkan.
func (w Wizard) Next() (Wizard, bool) {
	stepErrs := ValidateStep(&w.Draft, w.Step)
	w.Errors = stepErrs
	if !stepErrs.Empty() {
		return w, false
	}
	if w.Step < StepCount {
		w.Step++
	}
	return w, true
}

// Previous mundur satu langkah tanpa validasi, minimum langkah 1.
func (w Wizard) Previous() Wizard {
	if w.Step > 1 {
		w.Step--
	}
	return w
}

// CanCancel melaporkan apakah tombol batal tersedia (hanya langkah 1);
// navigasi keluarnya sendiri diserahkan ke pemanggil.
func (w Wizard) CanCancel() bool {
	return w.Step == 1
}

// Submit menjalankan validasi penuh. Bila ada pelanggaran, wizard
// melompat ke langkah paling awal yang memuat field bermasalah dan
// pengiriman dibatalkan. Bila lolos, draft siap masuk pipeline.
func (w Wizard) Submit() (Wizard, bool) {
	errs := ValidateForm(&w.Draft)
	w.Errors = errs
	if !errs.Empty() {
		w.Step = EarliestErrorStep(errs)
		return w, false
	}
	return w, true
}

// EarliestErrorStep menentukan langkah paling awal yang memuat
// kesalahan, dengan urutan tetap: langkah 1, 2, 3, produk (4), lalu 5.
func EarliestErrorStep(errs FormErrors) int {
	for _, step := range []int{1, 2, 3} {
		for _, field := range stepFields[step] {
			if _, ok := errs.Fields[field]; ok {
				return step
			}
		}
	}
	// Aturan jam operasional menempel pada operating_hours_end (langkah 3).
	for _, pe := range errs.Products {
		if len(pe) > 0 {
			return 4
		}
	}
	for _, field := range stepFields[5] {
		if _, ok := errs.Fields[field]; ok {
			return 5
		}
	}
	return StepCount
}

func copyProducts(products []ProductDraft) []ProductDraft {
	out := make([]ProductDraft, len(products))
	copy(out, products)
	return out
}

func copyErrors(errs FormErrors) FormErrors {
	out := FormErrors{}
	if errs.Fields != nil {
		out.Fields = make(map[string]string, len(errs.Fields))
		for k, v := range errs.Fields {
			out.Fields[k] = v
		}
	}
	if errs.Products != nil {
		out.Products = make([]ProductErrors, len(errs.Products))
		for i, pe := range errs.Products {
			if pe != nil {
				cp := make(ProductErrors, len(pe))
				for k, v := range pe {
					cp[k] = v
				}
				out.Products[i] = cp
			}
		}
	}
	return out
}
