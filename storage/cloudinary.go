// Package storage membungkus kolaborator penyimpanan objek (Cloudinary).
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"teroka-backend/registration"
)

// ErrNotConfigured dikembalikan bila kredensial penyimpanan tidak ada.
var ErrNotConfigured = errors.New("storage credentials not configured")

// Cloudinary mengunggah gambar ke bucket Cloudinary dan mengembalikan
// URL publiknya. Nil-safe: tanpa kredensial, semua unggahan ditolak
// dengan ErrNotConfigured.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// New membuat klien penyimpanan dari CLOUDINARY_URL. URL kosong
// menghasilkan klien nonaktif, bukan error.
func New(cloudinaryURL, folder string) (*Cloudinary, error) {
	if cloudinaryURL == "" {
		return &Cloudinary{folder: folder}, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("error initializing Cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld, folder: folder}, nil
}

// Configured melaporkan apakah kredensial penyimpanan tersedia.
func (s *Cloudinary) Configured() bool {
	return s != nil && s.cld != nil
}

// Upload mengirim satu berkas gambar dan mengembalikan URL publiknya.
func (s *Cloudinary) Upload(ctx context.Context, file registration.FileRef) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}

	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening file: %w", err)
	}
	defer rc.Close()

	result, err := s.cld.Upload.Upload(ctx, rc, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload error: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload rejected: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}
