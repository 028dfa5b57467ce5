// Package data menyediakan dataset UMKM statis bawaan. Jalur baca
// katalog memakainya sebagai cadangan saat database tidak terjangkau,
// supaya halaman pencarian tetap bisa ditelusuri.
package data

import (
	_ "embed"
	"encoding/json"
	"log"
	"sync"

	"teroka-backend/models"
)

//go:embed umkm.json
var umkmJSON []byte

var (
	once     sync.Once
	fallback []models.Umkm
)

// FallbackUmkm mengembalikan salinan dataset UMKM statis.
func FallbackUmkm() []models.Umkm {
	once.Do(func() {
		if err := json.Unmarshal(umkmJSON, &fallback); err != nil {
			// Dataset ikut terkompilasi; gagal parse berarti berkasnya rusak.
			log.Printf("data: gagal memuat dataset statis: %v", err)
		}
	})
	out := make([]models.Umkm, len(fallback))
	copy(out, fallback)
	return out
}
