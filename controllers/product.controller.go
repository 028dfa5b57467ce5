// File: controllers/product.controller.go
package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"teroka-backend/models"
)

// GetProducts menangani pengambilan produk milik satu UMKM.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	umkmID := c.Query("umkm_id")
	if umkmID == "" {
		respondError(c, http.StatusBadRequest, "UMKM ID diperlukan")
		return
	}
	objectID, err := primitive.ObjectIDFromHex(umkmID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "UMKM ID tidak valid")
		return
	}

	collection := ctrl.DB.Collection("products")
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"umkm_id": objectID, "is_available": true}, opts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat data produk")
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat data produk")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	respond(c, http.StatusOK, products, "Data produk berhasil dimuat")
}

func missingProductFields(in *models.ProductInput, withUmkmID bool) []string {
	var missing []string
	if withUmkmID && in.UmkmID == "" {
		missing = append(missing, "umkm_id")
	}
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Price == 0 {
		missing = append(missing, "price")
	}
	return missing
}

// CreateProduct menangani pembuatan produk baru untuk sebuah UMKM.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}
	if missing := missingProductFields(&input, true); len(missing) > 0 {
		respondError(c, http.StatusBadRequest, "Field yang wajib diisi: "+strings.Join(missing, ", "))
		return
	}

	umkmObjectID, err := primitive.ObjectIDFromHex(input.UmkmID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "UMKM ID tidak valid")
		return
	}

	now := time.Now()
	product := models.Product{
		UmkmID:      umkmObjectID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := ctrl.DB.Collection("products").InsertOne(ctx, product)
	if err != nil {
		if isUnauthorizedWrite(err) {
			respondError(c, http.StatusForbidden, "Tidak memiliki izin menulis data. Hubungi administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal menambahkan produk")
		return
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	respond(c, http.StatusCreated, product, "Produk berhasil ditambahkan!")
}

// UpdateProduct menangani pembaruan data produk, id lewat query parameter.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Query("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID produk tidak valid")
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}
	if missing := missingProductFields(&input, false); len(missing) > 0 {
		respondError(c, http.StatusBadRequest, "Field yang wajib diisi: "+strings.Join(missing, ", "))
		return
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	update := bson.M{"$set": bson.M{
		"name":         input.Name,
		"description":  input.Description,
		"price":        input.Price,
		"category":     input.Category,
		"image":        input.Image,
		"is_available": isAvailable,
		"updated_at":   time.Now(),
	}}

	var updated models.Product
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = ctrl.DB.Collection("products").
		FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).
		Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "Produk tidak ditemukan")
			return
		}
		if isUnauthorizedWrite(err) {
			respondError(c, http.StatusForbidden, "Tidak memiliki izin menulis data. Hubungi administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal memperbarui produk")
		return
	}

	respond(c, http.StatusOK, updated, "Produk berhasil diperbarui!")
}

// DeleteProduct menangani penghapusan produk. Soft delete: flag
// is_available dimatikan.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Query("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID produk tidak valid")
		return
	}

	update := bson.M{"$set": bson.M{"is_available": false, "updated_at": time.Now()}}
	var deleted models.Product
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = ctrl.DB.Collection("products").
		FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).
		Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "Produk tidak ditemukan")
			return
		}
		if isUnauthorizedWrite(err) {
			respondError(c, http.StatusForbidden, "Tidak memiliki izin menulis data. Hubungi administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal menghapus produk")
		return
	}

	respond(c, http.StatusOK, deleted, "Produk berhasil dihapus!")
}
