package main

import (
	"fmt"
	"log"

	"teroka-backend/config"
	"teroka-backend/controllers"
	"teroka-backend/routes"
	"teroka-backend/storage"
	"teroka-backend/wilayah"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	db := client.Database(cfg.MongoDBName)

	store, err := storage.New(cfg.CloudinaryURL, "teroka/umkm")
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	wil := wilayah.NewClient(cfg.WilayahBaseURL)

	ctrl := controllers.New(db, store, wil)
	r := routes.Setup(ctrl, cfg.Env)

	fmt.Printf("🚀 Teroka backend running on http://localhost:%s\n", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
