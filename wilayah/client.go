// Package wilayah mengkonsumsi API wilayah Indonesia (provinsi,
// kota/kabupaten, kecamatan) sebagai tiga lookup berantai read-only.
package wilayah

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"teroka-backend/models"
)

// Client adalah klien HTTP untuk API wilayah.
type Client struct {
	http *resty.Client
}

// NewClient membuat klien dengan timeout dan retry untuk meredam
// gangguan jaringan.
func NewClient(baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(10 * time.Second)
	client.SetRetryCount(2)
	return &Client{http: client}
}

// Provinces mengambil daftar provinsi. Bila API tidak terjangkau,
// daftar statis bawaan dikembalikan agar formulir tetap bisa dipakai.
func (c *Client) Provinces(ctx context.Context) ([]models.Province, error) {
	var provinces []models.Province
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&provinces).
		Get("/provinces.json")
	if err != nil || resp.IsError() {
		// Permintaan yang dibatalkan pemanggilnya bukan kegagalan API;
		// jangan disamarkan sebagai jawaban statis yang sukses.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("error fetching provinces: %w", ctx.Err())
		}
		log.Printf("wilayah: gagal memuat provinsi, memakai daftar statis: %v", describeFailure(resp, err))
		return StaticProvinces(), nil
	}
	return provinces, nil
}

// Regencies mengambil kota/kabupaten milik satu provinsi.
func (c *Client) Regencies(ctx context.Context, provinceID string) ([]models.Regency, error) {
	var regencies []models.Regency
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&regencies).
		Get(fmt.Sprintf("/regencies/%s.json", provinceID))
	if err != nil {
		return nil, fmt.Errorf("error fetching regencies: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching regencies: status %d", resp.StatusCode())
	}
	return regencies, nil
}

// Districts mengambil kecamatan milik satu kota/kabupaten.
func (c *Client) Districts(ctx context.Context, regencyID string) ([]models.District, error) {
	var districts []models.District
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&districts).
		Get(fmt.Sprintf("/districts/%s.json", regencyID))
	if err != nil {
		return nil, fmt.Errorf("error fetching districts: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching districts: status %d", resp.StatusCode())
	}
	return districts, nil
}

func describeFailure(resp *resty.Response, err error) string {
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("status %d", resp.StatusCode())
}
