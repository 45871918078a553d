// file: services/backend_client_test.go
package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yala-safari-web/models"
)

func TestList_DecodesDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tours", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"data":[{"_id":"t1","title":"Safari"},{"_id":"t2","title":"Lagoon"}]}`))
	}))
	defer server.Close()

	client := NewBackendClient(server.URL)
	tours, err := List[models.Tour](context.Background(), client, "/tours")

	require.NoError(t, err)
	require.Len(t, tours, 2)
	assert.Equal(t, "t1", tours[0].ID)
	assert.Equal(t, "Lagoon", tours[1].Title)
}

func TestList_MissingEnvelopeMeansEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewBackendClient(server.URL)
	tours, err := List[models.Tour](context.Background(), client, "/tours")

	require.NoError(t, err)
	assert.Empty(t, tours)
}

func TestList_ServerRejectionCarriesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database unavailable"}`))
	}))
	defer server.Close()

	client := NewBackendClient(server.URL)
	_, err := List[models.Tour](context.Background(), client, "/tours")

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusInternalServerError, be.Status)
	assert.Equal(t, "database unavailable", be.Message)
	assert.False(t, be.Connectivity())
}

func TestList_ConnectivityErrorIsDistinct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening any more

	client := NewBackendClient(server.URL)
	_, err := List[models.Tour](context.Background(), client, "/tours")

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.True(t, be.Connectivity())
	assert.Zero(t, be.Status)
}

func TestCreate_WritesMultipartFieldsAndFile(t *testing.T) {
	var gotFields map[string]string
	var gotFile string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			gotFile = files[0].Filename
		}
	}))
	defer server.Close()

	payload := &MultipartPayload{}
	payload.AddField("title", "Safari")
	payload.AddField("includes", `["Meals","Guide"]`)
	payload.AttachFile(&FileUpload{Filename: "leopard.jpg", Data: []byte("jpegdata")})

	client := NewBackendClient(server.URL)
	require.NoError(t, client.Create(context.Background(), "/tours", payload))

	assert.Equal(t, "Safari", gotFields["title"])
	assert.Equal(t, `["Meals","Guide"]`, gotFields["includes"])
	assert.Equal(t, "leopard.jpg", gotFile)
}

func TestUpdate_TargetsEntityID(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
	}))
	defer server.Close()

	client := NewBackendClient(server.URL)
	require.NoError(t, client.Update(context.Background(), "/rentals", "r42", &MultipartPayload{}))

	assert.Equal(t, "/api/rentals/r42", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)
}

func TestDelete_TargetsEntityID(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
	}))
	defer server.Close()

	client := NewBackendClient(server.URL)
	require.NoError(t, client.Delete(context.Background(), "/gallery", "g7"))

	assert.Equal(t, "/api/gallery/g7", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestLogin_DecodesTokenAndUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"token":"tok-123","user":{"_id":"u1","name":"Admin","email":"a@b.lk"}}`))
	}))
	defer server.Close()

	client := NewBackendClient(server.URL)
	resp, err := client.Login(context.Background(), "a@b.lk", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Admin", resp.User.Name)
}

func TestUserMessage_PrefersServerMessage(t *testing.T) {
	serverErr := &BackendError{Status: 400, Message: "title already exists"}
	assert.Equal(t, "title already exists", UserMessage(serverErr, "generic"))

	connErr := &BackendError{Err: errors.New("refused")}
	assert.Equal(t, "generic", UserMessage(connErr, "generic"))

	assert.Equal(t, "generic", UserMessage(errors.New("boom"), "generic"))
	assert.Empty(t, UserMessage(nil, "generic"))
}
