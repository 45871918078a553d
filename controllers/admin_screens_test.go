// file: controllers/admin_screens_test.go
//go:build unit
// +build unit

package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toursListBody = `{"data":[
	{"_id":"t1","title":"Leopard Trail","description":"Full day","duration":"1 Day","price":25000,"maxParticipants":6,"includes":["Meals"],"image":"/uploads/t1.jpg"},
	{"_id":"t2","title":"Lagoon Cruise","description":"Half day","duration":"4 Hours","price":12000,"maxParticipants":10,"includes":[],"image":"https://cdn.example.com/t2.jpg"}
]}`

func validTourFields() map[string]string {
	return map[string]string{
		"title":           "Leopard Trail",
		"description":     "Full day safari",
		"duration":        "1 Day",
		"price":           "25000",
		"maxParticipants": "6",
		"includes":        "Meals, Guide",
	}
}

func multipartBody(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		part, err := w.CreateFormFile("image", "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("jpegdata"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func postMultipart(router http.Handler, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminTours_ShowRendersCatalog(t *testing.T) {
	backend := newStubBackend(t)
	backend.respond("GET /api/tours", http.StatusOK, toursListBody)
	router := setupTestRouter(t, backend.server.URL)
	router.GET("/admin/tours", AdminTours)

	req, _ := http.NewRequest("GET", "/admin/tours", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "[t1]")
	assert.Contains(t, w.Body.String(), "[t2]")
}

func TestAdminTours_ShowSurfacesLoadFailure(t *testing.T) {
	backend := newStubBackend(t)
	backend.respond("GET /api/tours", http.StatusInternalServerError, `{"message":"database unavailable"}`)
	router := setupTestRouter(t, backend.server.URL)
	router.GET("/admin/tours", AdminTours)

	req, _ := http.NewRequest("GET", "/admin/tours", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "database unavailable")
}

func TestAdminToursSave_CreateSubmitsAndReloadsOnce(t *testing.T) {
	backend := newStubBackend(t)
	router := setupTestRouter(t, backend.server.URL)
	router.POST("/admin/tours/save", AdminToursSave)

	body, contentType := multipartBody(t, validTourFields(), true)
	w := postMultipart(router, "/admin/tours/save", body, contentType)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/tours", w.Header().Get("Location"))

	assert.Equal(t, 1, backend.countOf("POST", "/api/tours"))
	assert.Equal(t, 1, backend.countOf("GET", "/api/tours"), "exactly one refetch after the mutation")

	for _, r := range backend.recorded() {
		if r.Method == "POST" {
			assert.Equal(t, `["Meals","Guide"]`, r.Form["includes"])
			assert.True(t, r.HasFile)
		}
	}
}

func TestAdminToursSave_ValidationErrorKeepsValues(t *testing.T) {
	backend := newStubBackend(t)
	router := setupTestRouter(t, backend.server.URL)
	router.POST("/admin/tours/save", AdminToursSave)

	fields := validTourFields()
	fields["title"] = "   "
	body, contentType := multipartBody(t, fields, true)
	w := postMultipart(router, "/admin/tours/save", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "please enter a title")
	assert.Zero(t, backend.countOf("POST", "/api/tours"), "validation aborts before any network call")
	assert.Equal(t, "Full day safari", tourForm.Field("description"), "entered values kept for retry")
}

func TestAdminToursSave_UpdateRequiresConfirmation(t *testing.T) {
	backend := newStubBackend(t)
	backend.respond("GET /api/tours", http.StatusOK, toursListBody)
	router := setupTestRouter(t, backend.server.URL)
	router.GET("/admin/tours", AdminTours)
	router.POST("/admin/tours/save", AdminToursSave)

	// seed the form from the existing tour
	seedReq, _ := http.NewRequest("GET", "/admin/tours?edit=t1", nil)
	seedW := httptest.NewRecorder()
	router.ServeHTTP(seedW, seedReq)
	assert.Contains(t, seedW.Body.String(), "editing:t1")

	// unconfirmed update is refused
	body, contentType := multipartBody(t, validTourFields(), false)
	w := postMultipart(router, "/admin/tours/save", body, contentType)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "confirmation required")
	assert.Zero(t, backend.countOf("PUT", "/api/tours/t1"))

	// confirmed update goes through as PUT without an image part
	fields := validTourFields()
	fields["confirm"] = "true"
	body, contentType = multipartBody(t, fields, false)
	w = postMultipart(router, "/admin/tours/save", body, contentType)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 1, backend.countOf("PUT", "/api/tours/t1"))

	for _, r := range backend.recorded() {
		if r.Method == "PUT" {
			assert.False(t, r.HasFile, "keeping the stored image sends no image part")
		}
	}
}

func TestAdminToursSave_ServerErrorSurfacesMessage(t *testing.T) {
	backend := newStubBackend(t)
	backend.respond("POST /api/tours", http.StatusBadRequest, `{"message":"title already exists"}`)
	router := setupTestRouter(t, backend.server.URL)
	router.POST("/admin/tours/save", AdminToursSave)

	body, contentType := multipartBody(t, validTourFields(), true)
	w := postMultipart(router, "/admin/tours/save", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "title already exists")
	assert.Zero(t, backend.countOf("GET", "/api/tours"), "no refetch after a failed mutation")
}

func TestAdminToursDelete_RequiresConfirmation(t *testing.T) {
	backend := newStubBackend(t)
	router := setupTestRouter(t, backend.server.URL)
	router.POST("/admin/tours/delete", AdminToursDelete)

	w := postForm(router, "/admin/tours/delete", "id=t1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "confirmation required")
	assert.Zero(t, backend.countOf("DELETE", "/api/tours/t1"))
}

func TestAdminToursDelete_ConfirmedDeletesAndReloads(t *testing.T) {
	backend := newStubBackend(t)
	router := setupTestRouter(t, backend.server.URL)
	router.POST("/admin/tours/delete", AdminToursDelete)

	w := postForm(router, "/admin/tours/delete", "id=t1&confirm=true")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 1, backend.countOf("DELETE", "/api/tours/t1"))
	assert.Equal(t, 1, backend.countOf("GET", "/api/tours"))
}

func TestAdminGallerySave_CreateWorksAcrossEntities(t *testing.T) {
	backend := newStubBackend(t)
	router := setupTestRouter(t, backend.server.URL)
	router.POST("/admin/gallery/save", AdminGallerySave)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Leopard at dusk",
		"type":        "Wildlife",
		"description": "Evening sighting",
	}, true)
	w := postMultipart(router, "/admin/gallery/save", body, contentType)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 1, backend.countOf("POST", "/api/gallery"))
	assert.Equal(t, 1, backend.countOf("GET", "/api/gallery"))
}
