package registration

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Uploader adalah kolaborator penyimpanan objek eksternal.
type Uploader interface {
	Upload(ctx context.Context, file FileRef) (string, error)
}

// Recorder adalah kolaborator pembuatan record UMKM. Mengembalikan id
// record yang dibuat.
type Recorder interface {
	Create(ctx context.Context, payload Payload) (string, error)
}

// Result adalah hasil pipeline yang berhasil.
type Result struct {
	ID      string
	Payload Payload
}

// StageError menandai kegagalan fatal pada satu tahap pipeline.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("tahap %s gagal: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Nama tahap pipeline, dipakai pemetaan pesan kesalahan di controller.
const (
	StageListingImage  = "unggah-gambar-utama"
	StageProductImages = "unggah-gambar-produk"
	StageAssemble      = "rakit-payload"
	StageCreateRecord  = "simpan-record"
)

type stageResult int

const (
	stageOK stageResult = iota
	stageFatal
	stageTolerated
)

// submission adalah state berjalan satu kali eksekusi pipeline.
type submission struct {
	draft         *Draft
	imageURL      string
	productImages []string
	payload       Payload
	result        *Result
}

type stage struct {
	name string
	run  func(ctx context.Context, s *submission) (stageResult, error)
}

// Pipeline menjalankan pengiriman pendaftaran: unggah gambar, rakit
// payload, simpan record. Kebijakan kegagalan tiap tahap dideklarasikan
// oleh tahapnya sendiri: gagal fatal menghentikan seluruh pengiriman,
// gagal yang ditoleransi hanya dicatat ke log.
type Pipeline struct {
	Storage Uploader
	Records Recorder
}

// NewPipeline membuat pipeline dengan kolaborator yang diberikan.
func NewPipeline(storage Uploader, records Recorder) *Pipeline {
	return &Pipeline{Storage: storage, Records: records}
}

// Run mengeksekusi pipeline sekali, setelah validasi agregat lolos.
// Pemanggilan ulang setelah gagal akan mengunggah ulang gambar; tidak
// ada cache URL lintas percobaan.
func (p *Pipeline) Run(ctx context.Context, d *Draft) (*Result, error) {
	s := &submission{draft: d}

	stages := []stage{
		{StageListingImage, p.uploadListingImage},
		{StageProductImages, p.uploadProductImages},
		{StageAssemble, p.assemblePayload},
		{StageCreateRecord, p.createRecord},
	}

	for _, st := range stages {
		outcome, err := st.run(ctx, s)
		switch outcome {
		case stageFatal:
			return nil, &StageError{Stage: st.name, Err: err}
		case stageTolerated:
			log.Printf("registration: tahap %s sebagian gagal (diabaikan): %v", st.name, err)
		}
	}

	return s.result, nil
}

// uploadListingImage mengunggah gambar utama bila berupa berkas.
// Kegagalan di sini fatal: record tidak boleh dibuat tanpa gambar yang
// memang hendak dipasang.
func (p *Pipeline) uploadListingImage(ctx context.Context, s *submission) (stageResult, error) {
	im := s.draft.Image
	if im.File == nil {
		s.imageURL = im.URL
		return stageOK, nil
	}
	url, err := p.Storage.Upload(ctx, im.File)
	if err != nil {
		return stageFatal, err
	}
	s.imageURL = url
	return stageOK, nil
}

// uploadProductImages mengunggah gambar produk secara paralel. Gagalnya
// satu gambar produk tidak menghentikan pipeline: produk itu berlanjut
// dengan gambar kosong dan bisa dilengkapi lagi lewat halaman admin.
func (p *Pipeline) uploadProductImages(ctx context.Context, s *submission) (stageResult, error) {
	products := s.draft.FeaturedProducts
	s.productImages = make([]string, len(products))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed []error

	for i, prod := range products {
		if prod.Image.File == nil {
			s.productImages[i] = prod.Image.URL
			continue
		}
		wg.Add(1)
		go func(i int, file FileRef) {
			defer wg.Done()
			url, err := p.Storage.Upload(ctx, file)
			if err != nil {
				mu.Lock()
				failed = append(failed, fmt.Errorf("produk %d: %w", i, err))
				mu.Unlock()
				return
			}
			s.productImages[i] = url
		}(i, prod.Image.File)
	}
	wg.Wait()

	if len(failed) > 0 {
		return stageTolerated, fmt.Errorf("%d gambar produk gagal diunggah: %v", len(failed), failed)
	}
	return stageOK, nil
}

func (p *Pipeline) assemblePayload(_ context.Context, s *submission) (stageResult, error) {
	s.payload = BuildPayload(s.draft, s.imageURL, s.productImages)
	return stageOK, nil
}

func (p *Pipeline) createRecord(ctx context.Context, s *submission) (stageResult, error) {
	id, err := p.Records.Create(ctx, s.payload)
	if err != nil {
		return stageFatal, err
	}
	s.result = &Result{ID: id, Payload: s.payload}
	return stageOK, nil
}
