// file: controllers/test_helpers.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"yala-safari-web/config"
)

// stubBackend is a fake booking backend that records every request and
// serves canned responses per method+path.
type stubBackend struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  []stubRequest
	responses map[string]stubResponse // key: "METHOD /api/path"
}

type stubRequest struct {
	Method  string
	Path    string
	Form    map[string]string
	HasFile bool
}

type stubResponse struct {
	status int
	body   string
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()
	sb := &stubBackend{responses: map[string]stubResponse{}}
	sb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured := stubRequest{Method: r.Method, Path: r.URL.Path, Form: map[string]string{}}
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			for k, v := range r.MultipartForm.Value {
				captured.Form[k] = v[0]
			}
			captured.HasFile = len(r.MultipartForm.File["image"]) > 0
		}

		sb.mu.Lock()
		sb.requests = append(sb.requests, captured)
		resp, ok := sb.responses[r.Method+" "+r.URL.Path]
		sb.mu.Unlock()

		if !ok {
			resp = stubResponse{status: http.StatusOK, body: `{"data":[]}`}
		}
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(sb.server.Close)
	return sb
}

func (sb *stubBackend) respond(methodAndPath string, status int, body string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.responses[methodAndPath] = stubResponse{status: status, body: body}
}

func (sb *stubBackend) recorded() []stubRequest {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return append([]stubRequest(nil), sb.requests...)
}

// countOf returns how many recorded requests match method and path.
func (sb *stubBackend) countOf(method, path string) int {
	n := 0
	for _, r := range sb.recorded() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// setupTestRouter wires the controllers against the stub backend and
// returns a router with session middleware and minimal templates.
func setupTestRouter(t *testing.T, backendURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	Setup(config.Config{
		BackendBaseURL:      backendURL,
		SessionSecret:       "test-secret",
		ContactNumber:       "+94771234567",
		PlaceholderImageURL: "https://via.placeholder.com/400x256?text=No+Image",
		Env:                 "development",
	})

	router := gin.Default()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes minimal templates so handlers can render
// without the real template tree.
func createDummyTemplates(dir string) error {
	list := `{{ .Error }}{{ .LoadError }}{{ range .Items }}[{{ .ID }}]{{ end }}{{ if .Editing }}editing:{{ .EditID }}{{ end }}`
	templates := map[string]string{
		"home.html":           `home`,
		"tours.html":          `{{ .LoadError }}{{ range .Tours }}[{{ .Tour.Title }}]{{ end }}`,
		"packages.html":       `{{ .LoadError }}{{ range .Packages }}[{{ .Package.Name }}]{{ end }}`,
		"rentals.html":        `{{ .LoadError }}{{ range .Rentals }}[{{ .Rental.VehicleName }}]{{ end }}`,
		"gallery.html":        `{{ .LoadError }}{{ range .Items }}[{{ .Item.Title }}]{{ end }}`,
		"contact.html":        `{{ .Error }}{{ .Success }}{{ .WhatsAppLink }}`,
		"admin_login.html":    `{{ .Error }}|{{ .Email }}`,
		"admin_tours.html":    list,
		"admin_packages.html": list,
		"admin_rentals.html":  list,
		"admin_gallery.html":  list,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(`<html><body>`+content+`</body></html>`), 0644); err != nil {
			return err
		}
	}
	return nil
}

// sessionCookieFor plants session values via a helper route and returns the
// resulting cookie for use on subsequent requests.
func sessionCookieFor(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "testsession" {
			return cookie
		}
	}
	return nil
}
