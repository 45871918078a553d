// Package services: services/backend_client.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"yala-safari-web/logger"
	"yala-safari-web/models"
)

// requestTimeout bounds every backend call so a dead backend surfaces as a
// distinct timeout error instead of a hung page render.
const requestTimeout = 15 * time.Second

// ------------------- error type -------------------

// BackendError describes a failed backend call. Status 0 means the request
// never reached the server (connectivity or timeout); any other status is a
// server-side rejection, with Message carrying the backend's own `message`
// field when the response body provided one.
type BackendError struct {
	Status   int
	Message  string
	TimedOut bool
	Err      error
}

func (e *BackendError) Error() string {
	switch {
	case e.TimedOut:
		return "request timed out"
	case e.Status == 0:
		return fmt.Sprintf("cannot reach server: %v", e.Err)
	case e.Message != "":
		return e.Message
	default:
		return fmt.Sprintf("server returned status %d", e.Status)
	}
}

func (e *BackendError) Unwrap() error { return e.Err }

// Connectivity reports whether the request never reached the server.
func (e *BackendError) Connectivity() bool { return e.Status == 0 }

// ------------------- client -------------------

// BackendClient is the thin HTTP wrapper over the booking backend's REST API.
// All application components talk to the backend through it.
type BackendClient struct {
	baseURL string // backend origin, without trailing slash
	httpc   *http.Client
}

// NewBackendClient builds a client for the backend at the given origin.
func NewBackendClient(origin string) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimSuffix(origin, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// apiURL joins the /api base path with the given endpoint path.
func (c *BackendClient) apiURL(path string) string {
	return c.baseURL + "/api" + path
}

// do executes a request, tagging it with a request ID, and normalises every
// failure into a *BackendError. Callers get the raw body on 2xx.
func (c *BackendClient) do(req *http.Request) ([]byte, error) {
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		timedOut := false
		var ne interface{ Timeout() bool }
		if errors.As(err, &ne) && ne.Timeout() {
			timedOut = true
		}
		logger.Warn.Printf("backend %s %s failed before a response: %v", req.Method, req.URL.Path, err)
		return nil, &BackendError{TimedOut: timedOut, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BackendError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := extractMessage(body)
		logger.Warn.Printf("backend %s %s rejected: status=%d message=%q", req.Method, req.URL.Path, resp.StatusCode, msg)
		return nil, &BackendError{Status: resp.StatusCode, Message: msg}
	}
	return body, nil
}

// extractMessage pulls the `message` field out of an error response body.
func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}

// ------------------- list fetching -------------------

// List fetches a collection endpoint and decodes the `data` envelope into a
// slice of T. A missing envelope is treated as an empty list, matching the
// backend's behaviour for empty collections.
func List[T models.Searchable](ctx context.Context, c *BackendClient, path string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL(path), nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &BackendError{Err: fmt.Errorf("decoding %s response: %w", path, err)}
	}
	if envelope.Data == nil {
		return []T{}, nil
	}
	return envelope.Data, nil
}

// ------------------- multipart writes -------------------

// FileUpload is a user-selected image attached to a create/update call.
type FileUpload struct {
	Filename string
	Data     []byte
}

// MultipartPayload is an ordered set of text fields plus at most one image
// file, matching the backend's multipart contract (file field name `image`).
type MultipartPayload struct {
	fields []fieldPair
	file   *FileUpload
}

type fieldPair struct {
	name  string
	value string
}

// AddField appends a text field, preserving insertion order.
func (p *MultipartPayload) AddField(name, value string) {
	p.fields = append(p.fields, fieldPair{name: name, value: value})
}

// AttachFile sets the image file part. Calling it with nil leaves the
// payload file-less, which the backend reads as "keep the existing image".
func (p *MultipartPayload) AttachFile(f *FileUpload) {
	p.file = f
}

// HasFile reports whether an image part will be written.
func (p *MultipartPayload) HasFile() bool { return p.file != nil }

// encode writes the payload into multipart form format and returns the body
// plus its content type.
func (p *MultipartPayload) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, f := range p.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}
	if p.file != nil {
		part, err := w.CreateFormFile("image", p.file.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(p.file.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// Create POSTs a new entity to the collection endpoint as multipart.
func (c *BackendClient) Create(ctx context.Context, path string, payload *MultipartPayload) error {
	return c.sendMultipart(ctx, http.MethodPost, c.apiURL(path), payload)
}

// Update PUTs changed fields for an existing entity as multipart.
func (c *BackendClient) Update(ctx context.Context, path, id string, payload *MultipartPayload) error {
	return c.sendMultipart(ctx, http.MethodPut, c.apiURL(path+"/"+id), payload)
}

func (c *BackendClient) sendMultipart(ctx context.Context, method, url string, payload *MultipartPayload) error {
	body, contentType, err := payload.encode()
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	_, err = c.do(req)
	return err
}

// Delete removes an entity by id.
func (c *BackendClient) Delete(ctx context.Context, path, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.apiURL(path+"/"+id), nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// ------------------- auth & contact -------------------

// Login exchanges admin credentials for a token via POST /api/admin/login.
func (c *BackendClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	reqBody, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL("/admin/login"), bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result models.LoginResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &BackendError{Err: fmt.Errorf("decoding login response: %w", err)}
	}
	return &result, nil
}

// ContactMessage is a visitor enquiry forwarded to the backend mailer.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendContactEmail forwards a contact form submission to the backend.
func (c *BackendClient) SendContactEmail(ctx context.Context, msg ContactMessage) error {
	reqBody, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL("/contact/send-email"), bytes.NewReader(reqBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}
