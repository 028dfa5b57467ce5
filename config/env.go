package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig menampung semua variabel konfigurasi aplikasi.
type AppConfig struct {
	Port           string
	Env            string
	MongoMode      string
	MongoURI       string
	MongoDBName    string
	CloudinaryURL  string
	WilayahBaseURL string
}

// Load memuat konfigurasi dari file .env atau environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:           getEnv("PORT", "5000"),
		Env:            getEnv("ENVIRONMENT", "development"),
		MongoMode:      getEnv("MONGO_MODE", "local"),
		MongoDBName:    getEnv("MONGO_DB_NAME", "teroka"),
		CloudinaryURL:  getEnv("CLOUDINARY_URL", ""),
		WilayahBaseURL: getEnv("WILAYAH_BASE_URL", "https://www.emsifa.com/api-wilayah-indonesia/api"),
	}

	// Atur URI MongoDB berdasarkan mode
	if cfg.MongoMode == "atlas" {
		cfg.MongoURI = getEnv("MONGO_URI_ATLAS", "")
		if cfg.MongoURI == "" {
			log.Fatal("MONGO_MODE 'atlas' but MONGO_URI_ATLAS is not set")
		}
	} else {
		cfg.MongoURI = getEnv("MONGO_URI_LOCAL", "mongodb://localhost:27017/teroka")
	}

	// Tanpa CLOUDINARY_URL aplikasi tetap jalan; operasi unggah akan
	// ditolak dengan pesan kredensial belum dikonfigurasi.
	if cfg.CloudinaryURL == "" {
		log.Println("CLOUDINARY_URL not set, image upload disabled")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
