// File: controllers/register.controller.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"teroka-backend/registration"
	"teroka-backend/storage"
)

// formFileRef mengadaptasi berkas multipart ke registration.FileRef.
type formFileRef struct {
	header *multipart.FileHeader
}

func (f formFileRef) ContentType() string { return f.header.Header.Get("Content-Type") }
func (f formFileRef) Size() int64         { return f.header.Size }
func (f formFileRef) Open() (io.ReadCloser, error) {
	return f.header.Open()
}

// bindDraft membaca draft pendaftaran dari form multipart: field "data"
// berisi JSON draft, berkas "image" untuk gambar utama, dan
// "product_image_<i>" untuk gambar produk posisi ke-i.
func bindDraft(c *gin.Context) (*registration.Draft, error) {
	raw := c.PostForm("data")
	if raw == "" {
		return nil, errors.New("field 'data' kosong")
	}

	draft := registration.NewDraft()
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, err
	}
	if len(draft.FeaturedProducts) > registration.MaxFeaturedProducts {
		return nil, fmt.Errorf("maksimal %d produk unggulan", registration.MaxFeaturedProducts)
	}

	if header, err := c.FormFile("image"); err == nil {
		draft.Image = registration.Image{File: formFileRef{header: header}}
	}
	for i := range draft.FeaturedProducts {
		if header, err := c.FormFile(fmt.Sprintf("product_image_%d", i)); err == nil {
			draft.FeaturedProducts[i].Image = registration.Image{File: formFileRef{header: header}}
		}
	}

	return &draft, nil
}

// Register menangani pengiriman akhir formulir pendaftaran: validasi
// agregat, lalu pipeline unggah-rakit-simpan. Draft pengguna tidak
// pernah direset di sini; reset terjadi di klien setelah sukses.
func (ctrl *Controller) Register(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	draft, err := bindDraft(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Body permintaan tidak valid: "+err.Error())
		return
	}

	errs := registration.ValidateForm(draft)
	if !errs.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"data": gin.H{
				"errors": errs,
				"step":   registration.EarliestErrorStep(errs),
			},
			"message": "Mohon lengkapi semua field yang wajib diisi dengan benar",
		})
		return
	}

	result, err := ctrl.Pipeline.Run(ctx, draft)
	if err != nil {
		ctrl.respondPipelineError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{"id": result.ID, "umkm": result.Payload},
		"UMKM berhasil didaftarkan! Tim kami akan meninjau data Anda.")
}

// respondPipelineError memetakan kegagalan tahap pipeline ke pesan yang
// bisa ditindaklanjuti pengguna. Pesan server yang spesifik menang atas
// fallback generik.
func (ctrl *Controller) respondPipelineError(c *gin.Context, err error) {
	var stageErr *registration.StageError
	if !errors.As(err, &stageErr) {
		log.Println("Registration pipeline error:", err)
		respondError(c, http.StatusInternalServerError, "Terjadi kesalahan. Silakan coba lagi.")
		return
	}

	log.Printf("Registration pipeline error at %s: %v", stageErr.Stage, stageErr.Err)

	switch stageErr.Stage {
	case registration.StageListingImage:
		if errors.Is(stageErr.Err, storage.ErrNotConfigured) {
			respondError(c, http.StatusInternalServerError,
				"Kredensial penyimpanan belum dikonfigurasi. Hubungi administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError,
			"Gagal mengunggah gambar UMKM. Silakan coba lagi.")
	case registration.StageCreateRecord:
		if isUnauthorizedWrite(stageErr.Err) {
			respondError(c, http.StatusForbidden,
				"Tidak memiliki izin menulis data. Hubungi administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError,
			"Gagal mendaftarkan UMKM. Silakan coba lagi.")
	default:
		respondError(c, http.StatusInternalServerError, "Terjadi kesalahan. Silakan coba lagi.")
	}
}

// ValidateRegistration menangani validasi draft tanpa menyimpan apa pun.
// Dengan query ?step=N hanya field langkah itu yang diperiksa (gerbang
// tombol "Selanjutnya"); tanpa step, seluruh formulir disapu.
func (ctrl *Controller) ValidateRegistration(c *gin.Context) {
	draft := registration.NewDraft()
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondError(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	if stepParam := c.Query("step"); stepParam != "" {
		step, err := strconv.Atoi(stepParam)
		if err != nil || step < 1 || step > registration.StepCount {
			respondError(c, http.StatusBadRequest, "Langkah tidak valid")
			return
		}
		errs := registration.ValidateStep(&draft, step)
		respond(c, http.StatusOK, gin.H{"valid": errs.Empty(), "errors": errs},
			"Validasi selesai")
		return
	}

	errs := registration.ValidateForm(&draft)
	payload := gin.H{
		"valid":  registration.IsValid(&draft, errs),
		"errors": errs,
	}
	if !errs.Empty() {
		payload["step"] = registration.EarliestErrorStep(errs)
	}
	respond(c, http.StatusOK, payload, "Validasi selesai")
}
