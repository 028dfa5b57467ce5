// File: controllers/upload.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teroka-backend/registration"
)

// UploadImage menangani unggahan gambar tunggal (dipakai dialog admin).
// Tipe dan ukuran diperiksa dengan aturan yang sama seperti formulir
// pendaftaran sebelum berkas dikirim ke penyimpanan.
func (ctrl *Controller) UploadImage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Tidak ada berkas yang dikirim")
		return
	}

	file := formFileRef{header: header}
	if msg := registration.ValidateField("image", registration.Image{File: file}); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	if !ctrl.Storage.Configured() {
		respondError(c, http.StatusInternalServerError,
			"Kredensial penyimpanan belum dikonfigurasi. Hubungi administrator.")
		return
	}

	url, err := ctrl.Storage.Upload(ctx, file)
	if err != nil {
		log.Println("Upload error:", err)
		respondError(c, http.StatusInternalServerError, "Gagal mengunggah berkas")
		return
	}

	respond(c, http.StatusOK, gin.H{"url": url}, "Berkas berhasil diunggah")
}
