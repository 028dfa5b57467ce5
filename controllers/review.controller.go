// File: controllers/review.controller.go
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

// GetReviews menangani pengambilan ulasan milik satu UMKM.
func (ctrl *Controller) GetReviews(c *gin.Context) {
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

	collection := ctrl.DB.Collection("reviews")
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"umkm_id": objectID}, opts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat data review")
		return
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat data review")
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	respond(c, http.StatusOK, reviews, "Data review berhasil dimuat")
}

func validateReviewInput(in *models.ReviewInput, withUmkmID bool) (int, string) {
	var missing []string
	if withUmkmID && in.UmkmID == "" {
		missing = append(missing, "umkm_id")
	}
	if in.UserName == "" {
		missing = append(missing, "user_name")
	}
	if in.Rating == 0 {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		return http.StatusBadRequest, "Field yang wajib diisi: " + strings.Join(missing, ", ")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return http.StatusBadRequest, "Rating harus antara 1-5"
	}
	return 0, ""
}

// CreateReview menangani pembuatan ulasan baru.
func (ctrl *Controller) CreateReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}
	if status, msg := validateReviewInput(&input, true); msg != "" {
		respondError(c, status, msg)
		return
	}

	umkmObjectID, err := primitive.ObjectIDFromHex(input.UmkmID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "UMKM ID tidak valid")
		return
	}

	now := time.Now()
	review := models.Review{
		UmkmID:    umkmObjectID,
		UserName:  input.UserName,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Image:     input.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := ctrl.DB.Collection("reviews").InsertOne(ctx, review)
	if err != nil {
		if isUnauthorizedWrite(err) {
			respondError(c, http.StatusForbidden, "Tidak memiliki izin menulis data. Hubungi administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal menambahkan review")
		return
	}

	review.ID = result.InsertedID.(primitive.ObjectID)
	respond(c, http.StatusCreated, review, "Review berhasil ditambahkan!")
}

// UpdateReview menangani pembaruan ulasan, id lewat query parameter.
func (ctrl *Controller) UpdateReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Query("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID review tidak valid")
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}
	if status, msg := validateReviewInput(&input, false); msg != "" {
		respondError(c, status, msg)
		return
	}

	update := bson.M{"$set": bson.M{
		"user_name":  input.UserName,
		"rating":     input.Rating,
		"comment":    input.Comment,
		"image":      input.Image,
		"updated_at": time.Now(),
	}}

	var updated models.Review
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = ctrl.DB.Collection("reviews").
		FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).
		Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "Review tidak ditemukan")
			return
		}
		if isUnauthorizedWrite(err) {
			respondError(c, http.StatusForbidden, "Tidak memiliki izin menulis data. Hubungi administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal memperbarui review")
		return
	}

	respond(c, http.StatusOK, updated, "Review berhasil diperbarui!")
}

// DeleteReview menangani penghapusan ulasan. Berbeda dari UMKM dan
// produk, ulasan dihapus permanen.
func (ctrl *Controller) DeleteReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Query("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID review tidak valid")
		return
	}

	result, err := ctrl.DB.Collection("reviews").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		if isUnauthorizedWrite(err) {
			respondError(c, http.StatusForbidden, "Tidak memiliki izin menulis data. Hubungi administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal menghapus review")
		return
	}
	if result.DeletedCount == 0 {
		respondError(c, http.StatusNotFound, "Review tidak ditemukan")
		return
	}

	respond(c, http.StatusOK, gin.H{"id": id}, "Review berhasil dihapus!")
}
