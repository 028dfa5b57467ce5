// File: controllers/umkm.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"teroka-backend/data"
	"teroka-backend/models"
	"teroka-backend/registration"
)

// requiredUmkmFields adalah field yang wajib ada pada body POST/PUT UMKM.
var requiredUmkmFields = []struct {
	name  string
	value func(*models.UmkmInput) string
}{
	{"name", func(in *models.UmkmInput) string { return in.Name }},
	{"category", func(in *models.UmkmInput) string { return in.Category }},
	{"address", func(in *models.UmkmInput) string { return in.Address }},
	{"city", func(in *models.UmkmInput) string { return in.City }},
	{"province", func(in *models.UmkmInput) string { return in.Province }},
	{"contact", func(in *models.UmkmInput) string { return in.Contact }},
	{"operating_hours", func(in *models.UmkmInput) string { return in.OperatingHours }},
}

func missingUmkmFields(in *models.UmkmInput) []string {
	var missing []string
	for _, f := range requiredUmkmFields {
		if f.value(in) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// matchCatalog meniru filter halaman pencarian: kategori persis, kata
// kunci dicocokkan ke nama, deskripsi, dan kota.
func matchCatalog(u models.Umkm, category, query string) bool {
	if category != "" && category != "semua" && u.Category != category {
		return false
	}
	if query != "" {
		q := strings.ToLower(query)
		if !strings.Contains(strings.ToLower(u.Name), q) &&
			!strings.Contains(strings.ToLower(u.Description), q) &&
			!strings.Contains(strings.ToLower(u.City), q) {
			return false
		}
	}
	return true
}

// GetUmkmList menangani pengambilan katalog UMKM aktif, dengan filter
// kategori dan kata kunci opsional. Bila database tidak terjangkau,
// dataset statis bawaan dipakai agar katalog tetap bisa ditelusuri.
func (ctrl *Controller) GetUmkmList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category := c.Query("category")
	query := c.Query("q")

	filter := bson.M{"is_active": true}
	if category != "" && category != "semua" {
		filter["category"] = category
	}
	if query != "" {
		regex := bson.M{"$regex": query, "$options": "i"}
		filter["$or"] = []bson.M{{"name": regex}, {"description": regex}, {"city": regex}}
	}

	collection := ctrl.DB.Collection("umkm")
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("Mongo error, serving static dataset:", err)
		ctrl.serveFallbackList(c, category, query)
		return
	}
	defer cursor.Close(ctx)

	var umkmList []models.Umkm
	if err = cursor.All(ctx, &umkmList); err != nil {
		log.Println("Mongo error, serving static dataset:", err)
		ctrl.serveFallbackList(c, category, query)
		return
	}

	if umkmList == nil {
		umkmList = []models.Umkm{}
	}
	respondWithTotal(c, http.StatusOK, umkmList, "Data berhasil dimuat", len(umkmList))
}

func (ctrl *Controller) serveFallbackList(c *gin.Context, category, query string) {
	filtered := []models.Umkm{}
	for _, u := range data.FallbackUmkm() {
		if matchCatalog(u, category, query) {
			filtered = append(filtered, u)
		}
	}
	respondWithTotal(c, http.StatusOK, filtered, "Data berhasil dimuat (data statis)", len(filtered))
}

// GetUmkmDetail menangani pengambilan satu UMKM beserta produk dan
// ulasannya.
func (ctrl *Controller) GetUmkmDetail(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID UMKM tidak valid")
		return
	}

	var umkm models.Umkm
	collection := ctrl.DB.Collection("umkm")
	err = collection.FindOne(ctx, bson.M{"_id": objectID, "is_active": true}).Decode(&umkm)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "UMKM tidak ditemukan")
			return
		}
		log.Println("Mongo error, searching static dataset:", err)
		for _, u := range data.FallbackUmkm() {
			if u.ID == objectID {
				respond(c, http.StatusOK, u, "Data UMKM berhasil dimuat (data statis)")
				return
			}
		}
		respondError(c, http.StatusInternalServerError, "Gagal memuat data UMKM")
		return
	}

	// Produk dan ulasan bersifat pelengkap; kegagalan subkueri hanya dicatat.
	umkm.Products = []models.Product{}
	prodCursor, err := ctrl.DB.Collection("products").Find(ctx,
		bson.M{"umkm_id": objectID, "is_available": true},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err == nil {
		if err := prodCursor.All(ctx, &umkm.Products); err != nil {
			log.Println("Error loading products for UMKM detail:", err)
		}
	} else {
		log.Println("Error loading products for UMKM detail:", err)
	}

	umkm.Reviews = []models.Review{}
	revCursor, err := ctrl.DB.Collection("reviews").Find(ctx,
		bson.M{"umkm_id": objectID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err == nil {
		if err := revCursor.All(ctx, &umkm.Reviews); err != nil {
			log.Println("Error loading reviews for UMKM detail:", err)
		}
	} else {
		log.Println("Error loading reviews for UMKM detail:", err)
	}

	respond(c, http.StatusOK, umkm, "Data UMKM berhasil dimuat")
}

// CreateUmkm menangani pendaftaran UMKM lewat permintaan JSON langsung
// (jalur admin). Jalur wizard dengan unggah berkas ada di /api/register.
func (ctrl *Controller) CreateUmkm(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.UmkmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	if missing := missingUmkmFields(&input); len(missing) > 0 {
		respondError(c, http.StatusBadRequest, "Field yang wajib diisi: "+strings.Join(missing, ", "))
		return
	}
	if !registration.ValidCategory(input.Category) {
		respondError(c, http.StatusBadRequest, "Kategori tidak valid")
		return
	}

	payload := registration.Payload{
		Name:            input.Name,
		Category:        input.Category,
		Description:     input.Description,
		Address:         input.Address,
		City:            input.City,
		Province:        input.Province,
		Contact:         input.Contact,
		OperatingHours:  input.OperatingHours,
		Image:           input.Image,
		OwnerName:       input.OwnerName,
		EstablishedYear: input.EstablishedYear,
		EmployeeCount:   input.EmployeeCount,
	}
	for _, p := range input.Products {
		payload.Products = append(payload.Products, registration.ProductPayload{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
		})
	}

	id, err := ctrl.Create(ctx, payload)
	if err != nil {
		if isUnauthorizedWrite(err) {
			respondError(c, http.StatusForbidden, "Tidak memiliki izin menulis data. Hubungi administrator.")
			return
		}
		log.Println("Mongo insert error:", err)
		respondError(c, http.StatusInternalServerError, "Gagal mendaftarkan UMKM. Silakan coba lagi.")
		return
	}

	respond(c, http.StatusCreated, gin.H{"id": id, "umkm": payload},
		"UMKM berhasil didaftarkan! Tim kami akan meninjau data Anda.")
}

// Create menyimpan payload pendaftaran sebagai record UMKM baru plus
// baris produknya. Implementasi Recorder untuk pipeline pendaftaran.
// Gagalnya penyisipan produk setelah record UMKM dibuat ditoleransi dan
// hanya dicatat; produk bisa dilengkapi lewat halaman admin.
func (ctrl *Controller) Create(ctx context.Context, payload registration.Payload) (string, error) {
	now := time.Now()
	umkm := models.Umkm{
		Name:            payload.Name,
		Category:        payload.Category,
		Description:     payload.Description,
		Address:         payload.Address,
		City:            payload.City,
		Province:        payload.Province,
		Contact:         payload.Contact,
		OperatingHours:  payload.OperatingHours,
		Image:           payload.Image,
		OwnerName:       payload.OwnerName,
		EstablishedYear: payload.EstablishedYear,
		EmployeeCount:   payload.EmployeeCount,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	result, err := ctrl.DB.Collection("umkm").InsertOne(ctx, umkm)
	if err != nil {
		return "", err
	}
	umkmID := result.InsertedID.(primitive.ObjectID)

	if len(payload.Products) > 0 {
		docs := make([]interface{}, 0, len(payload.Products))
		for _, p := range payload.Products {
			docs = append(docs, models.Product{
				UmkmID:      umkmID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Category:    payload.Category,
				Image:       p.Image,
				IsAvailable: true,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
		if _, err := ctrl.DB.Collection("products").InsertMany(ctx, docs); err != nil {
			log.Printf("UMKM %s created but product rows failed: %v", umkmID.Hex(), err)
		}
	}

	return umkmID.Hex(), nil
}

// UpdateUmkm menangani pembaruan data UMKM, id lewat query parameter.
func (ctrl *Controller) UpdateUmkm(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Query("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID UMKM tidak valid")
		return
	}

	var input models.UmkmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}
	if missing := missingUmkmFields(&input); len(missing) > 0 {
		respondError(c, http.StatusBadRequest, "Field yang wajib diisi: "+strings.Join(missing, ", "))
		return
	}
	if !registration.ValidCategory(input.Category) {
		respondError(c, http.StatusBadRequest, "Kategori tidak valid")
		return
	}

	update := bson.M{"$set": bson.M{
		"name":             input.Name,
		"category":         input.Category,
		"description":      input.Description,
		"address":          input.Address,
		"city":             input.City,
		"province":         input.Province,
		"latitude":         input.Latitude,
		"longitude":        input.Longitude,
		"contact":          input.Contact,
		"operating_hours":  input.OperatingHours,
		"image":            input.Image,
		"owner_name":       input.OwnerName,
		"established_year": input.EstablishedYear,
		"employee_count":   input.EmployeeCount,
		"updated_at":       time.Now(),
	}}

	result, err := ctrl.DB.Collection("umkm").UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		if isUnauthorizedWrite(err) {
			respondError(c, http.StatusForbidden, "Tidak memiliki izin menulis data. Hubungi administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal memperbarui UMKM")
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "UMKM tidak ditemukan")
		return
	}

	respond(c, http.StatusOK, gin.H{"id": id}, "UMKM berhasil diperbarui!")
}

// DeleteUmkm menangani penghapusan UMKM. Soft delete: flag is_active
// dimatikan, barisnya tidak dihapus.
func (ctrl *Controller) DeleteUmkm(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Query("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID UMKM tidak valid")
		return
	}

	update := bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now()}}
	result, err := ctrl.DB.Collection("umkm").UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		if isUnauthorizedWrite(err) {
			respondError(c, http.StatusForbidden, "Tidak memiliki izin menulis data. Hubungi administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal menghapus UMKM")
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "UMKM tidak ditemukan")
		return
	}

	respond(c, http.StatusOK, gin.H{"id": id}, "UMKM berhasil dihapus!")
}
