package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teroka-backend/models"
)

func newTestController() *Controller {
	gin.SetMode(gin.TestMode)
	return New(nil, nil, nil)
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestValidateRegistrationStep(t *testing.T) {
	ctrl := newTestController()

	body := `{"name":"Ab","category":"makanan","description":"Warung kecil"}`
	w := performJSON(t, ctrl.ValidateRegistration, http.MethodPost, "/api/register/validate?step=1", body)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, false, data["valid"])
	errs := data["errors"].(map[string]any)
	fields := errs["fields"].(map[string]any)
	assert.Equal(t, "Nama UMKM minimal 3 karakter", fields["name"])
}

func TestValidateRegistrationStepOutOfRange(t *testing.T) {
	ctrl := newTestController()

	w := performJSON(t, ctrl.ValidateRegistration, http.MethodPost, "/api/register/validate?step=9", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Langkah tidak valid", decodeResponse(t, w).Message)
}

func TestValidateRegistrationFullForm(t *testing.T) {
	ctrl := newTestController()

	body := `{
		"name": "Warung Nasi Bu Ani",
		"category": "makanan",
		"description": "Warung nasi rumahan",
		"address": "Jl. Melati No. 12, Bandung",
		"province": "Jawa Barat",
		"city": "Bandung",
		"contact": "+628123456789",
		"operating_hours_start": "08:00",
		"operating_hours_end": "21:00",
		"owner_name": "Bu Ani"
	}`
	w := performJSON(t, ctrl.ValidateRegistration, http.MethodPost, "/api/register/validate", body)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, true, data["valid"])
	assert.NotContains(t, data, "step")
}

func TestValidateRegistrationReportsEarliestStep(t *testing.T) {
	ctrl := newTestController()

	// Kontak (langkah 3) dan nama pemilik (langkah 5) sama-sama kosong;
	// langkah yang dilaporkan harus yang paling awal.
	body := `{
		"name": "Warung Nasi Bu Ani",
		"category": "makanan",
		"address": "Jl. Melati No. 12, Bandung",
		"province": "Jawa Barat",
		"city": "Bandung",
		"operating_hours_start": "08:00",
		"operating_hours_end": "21:00"
	}`
	w := performJSON(t, ctrl.ValidateRegistration, http.MethodPost, "/api/register/validate", body)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, false, data["valid"])
	assert.Equal(t, float64(3), data["step"])
}

func TestRegisterRejectsInvalidForm(t *testing.T) {
	ctrl := newTestController()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	form := "data=" + `{"name":""}`
	c.Request = httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(form))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	ctrl.Register(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
		Message string         `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Mohon lengkapi semua field yang wajib diisi dengan benar", resp.Message)
	assert.Equal(t, float64(1), resp.Data["step"])
}

func TestRegisterRejectsInvalidCategory(t *testing.T) {
	ctrl := newTestController()

	// Draft lengkap dan valid, kecuali kategori di luar enum: pipeline
	// tidak boleh berjalan dan tidak ada record yang dibuat.
	draft := `{
		"name": "Warung Nasi Bu Ani",
		"category": "elektronik",
		"description": "Warung nasi rumahan",
		"address": "Jl. Melati No. 12, Bandung",
		"province": "Jawa Barat",
		"city": "Bandung",
		"contact": "628123456789",
		"operating_hours_start": "08:00",
		"operating_hours_end": "21:00",
		"owner_name": "Bu Ani"
	}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("data="+draft))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	ctrl.Register(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, float64(1), resp.Data["step"])

	errs := resp.Data["errors"].(map[string]any)
	fields := errs["fields"].(map[string]any)
	assert.Equal(t, "Kategori tidak valid", fields["category"])
}

func TestRegisterRejectsMissingData(t *testing.T) {
	ctrl := newTestController()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/register", nil)
	ctrl.Register(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeResponse(t, w).Message, "Body permintaan tidak valid")
}

func TestCreateUmkmMissingFields(t *testing.T) {
	ctrl := newTestController()

	w := performJSON(t, ctrl.CreateUmkm, http.MethodPost, "/api/umkm", `{"name":"Toko Maju"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	msg := decodeResponse(t, w).Message
	assert.Contains(t, msg, "Field yang wajib diisi:")
	assert.Contains(t, msg, "category")
	assert.Contains(t, msg, "contact")
	assert.NotContains(t, msg, "name")
}

func TestCreateUmkmInvalidCategory(t *testing.T) {
	ctrl := newTestController()

	body := `{
		"name": "Toko Maju",
		"category": "elektronik",
		"address": "Jl. Kenanga No. 5, Semarang",
		"city": "Semarang",
		"province": "Jawa Tengah",
		"contact": "+628123456789",
		"operating_hours": "08:00-17:00"
	}`
	w := performJSON(t, ctrl.CreateUmkm, http.MethodPost, "/api/umkm", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Kategori tidak valid", decodeResponse(t, w).Message)
}

func TestMatchCatalog(t *testing.T) {
	u := models.Umkm{Name: "Warung Nasi Bu Ani", Description: "Nasi rumahan", City: "Bandung", Category: "makanan"}

	assert.True(t, matchCatalog(u, "", ""))
	assert.True(t, matchCatalog(u, "semua", ""))
	assert.True(t, matchCatalog(u, "makanan", "bandung"))
	assert.True(t, matchCatalog(u, "", "NASI"))
	assert.False(t, matchCatalog(u, "minuman", ""))
	assert.False(t, matchCatalog(u, "makanan", "yogyakarta"))
}

func TestIsUnauthorizedWrite(t *testing.T) {
	assert.True(t, isUnauthorizedWrite(errAuthorization("(Unauthorized) not authorized on teroka to execute command")))
	assert.False(t, isUnauthorizedWrite(errAuthorization("connection refused")))
}

type errAuthorization string

func (e errAuthorization) Error() string { return string(e) }
