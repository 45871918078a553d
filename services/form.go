// Package services: services/form.go
package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ------------------- form state -------------------

// ModeKind tags the form's editing mode.
type ModeKind int

const (
	// ModeCreate is the blank form creating a new entity.
	ModeCreate ModeKind = iota
	// ModeEdit is the form seeded from an existing entity.
	ModeEdit
)

// Mode is the tagged editing mode: either create, or edit with the target
// entity's id. Representing this explicitly (rather than a nullable id plus
// loose booleans) rules out impossible states like submitting with no mode.
type Mode struct {
	Kind   ModeKind
	EditID string
}

var (
	// ErrSubmitInFlight is returned when Submit is called while a previous
	// submission has not finished. Screens disable the submit control while
	// Submitting; this is the backstop.
	ErrSubmitInFlight = errors.New("a submission is already in progress")

	// ErrConfirmationRequired is returned when an update or delete is
	// attempted without the explicit user confirmation step.
	ErrConfirmationRequired = errors.New("confirmation required before changing existing data")
)

// ------------------- field rules -------------------

// FieldKind classifies a form field for validation and payload encoding.
type FieldKind int

const (
	// FieldText is a plain string field.
	FieldText FieldKind = iota
	// FieldNumber parses to a finite number with a lower bound.
	FieldNumber
	// FieldList is a comma-separated input sent as a JSON-encoded array.
	FieldList
	// FieldBool is a checkbox sent as "true"/"false".
	FieldBool
	// FieldImage is the file upload slot.
	FieldImage
)

// FieldRule describes one form field: its wire name, kind, display label,
// whether it is required, and the numeric lower bound for FieldNumber.
type FieldRule struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	Min      float64
	Integer  bool
}

// FormSpec binds an entity type's endpoint to its ordered field rules.
// Field order is both validation order and multipart field order.
type FormSpec struct {
	Endpoint string
	Fields   []FieldRule
}

// ValidationError reports the first failing field. Validation is fail-fast:
// one error per attempt, identifying the field by name.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ------------------- form controller -------------------

// previewEncoded runs after each asynchronous preview conversion resolves,
// whether applied or discarded as stale. Swappable in tests.
var previewEncoded = func() {}

// FormController manages the create-or-edit form for one entity type: field
// state, fail-fast validation, multipart payload construction and the submit
// lifecycle. On success the list is refetched from the backend rather than
// patched locally.
type FormController struct {
	mu     sync.Mutex
	spec   FormSpec
	client *BackendClient
	reload func()

	values       map[string]string
	mode         Mode
	submitting   bool
	pendingFile  *FileUpload
	currentImage string // preview data URL, or resolved existing image in edit mode
	hasExisting  bool   // edit target already has a stored image
	selectionSeq uint64 // bumps per file selection; stale conversions are dropped
}

// NewFormController builds a controller for one entity form. reload is
// invoked exactly once after every successful mutation.
func NewFormController(spec FormSpec, client *BackendClient, reload func()) *FormController {
	return &FormController{
		spec:   spec,
		client: client,
		reload: reload,
		values: map[string]string{},
	}
}

// SelectForEdit seeds the form from an existing entity: field values, the
// entity's current image resolved for preview, and the edit target id. The
// file slot is left empty; selecting no new file means "keep existing image".
func (f *FormController) SelectForEdit(id string, values map[string]string, resolvedImage string, hasImage bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values = map[string]string{}
	for k, v := range values {
		f.values[k] = v
	}
	f.mode = Mode{Kind: ModeEdit, EditID: id}
	f.pendingFile = nil
	f.currentImage = resolvedImage
	f.hasExisting = hasImage
	f.selectionSeq++ // invalidate any conversion still in flight
}

// Reset returns the form to the blank create state.
func (f *FormController) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *FormController) resetLocked() {
	f.values = map[string]string{}
	f.mode = Mode{Kind: ModeCreate}
	f.pendingFile = nil
	f.currentImage = ""
	f.hasExisting = false
	f.selectionSeq++
}

// SetField stores a raw field value. Image selections go through AttachImage.
func (f *FormController) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
}

// AttachImage records a newly selected image file and derives a local data
// URL preview asynchronously. Each selection bumps a monotonic counter and a
// finished conversion is applied only if its selection is still the latest,
// so rapid reselection always leaves the newest file on display.
func (f *FormController) AttachImage(filename string, data []byte, contentType string) {
	f.mu.Lock()
	f.pendingFile = &FileUpload{Filename: filename, Data: data}
	f.selectionSeq++
	seq := f.selectionSeq
	f.mu.Unlock()

	go func() {
		dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
		f.applyPreview(seq, dataURL)
		previewEncoded()
	}()
}

func (f *FormController) applyPreview(seq uint64, dataURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.selectionSeq {
		return // superseded by a later selection
	}
	f.currentImage = dataURL
}

// ------------------- validation -------------------

// Validate checks the form against its field rules, stopping at the first
// failure. The image slot is satisfied by a newly selected file, or in edit
// mode by the entity's existing image.
func (f *FormController) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *FormController) validateLocked() error {
	for _, rule := range f.spec.Fields {
		raw := strings.TrimSpace(f.values[rule.Name])

		switch rule.Kind {
		case FieldText:
			if rule.Required && raw == "" {
				return &ValidationError{Field: rule.Name, Reason: fmt.Sprintf("please enter a %s", rule.Label)}
			}
		case FieldNumber:
			if raw == "" && !rule.Required {
				continue
			}
			if err := checkNumber(rule, raw); err != nil {
				return err
			}
		case FieldImage:
			if f.pendingFile != nil {
				continue
			}
			if f.mode.Kind == ModeEdit && f.hasExisting {
				continue // keeping the stored image is fine
			}
			if rule.Required {
				return &ValidationError{Field: rule.Name, Reason: "please select an image"}
			}
		case FieldList, FieldBool:
			// never invalid: lists drop empty segments, bools default false
		}
	}
	return nil
}

func checkNumber(rule FieldRule, raw string) error {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return &ValidationError{Field: rule.Name, Reason: fmt.Sprintf("%s must be a valid number", rule.Label)}
	}
	if rule.Integer && v != float64(int64(v)) {
		return &ValidationError{Field: rule.Name, Reason: fmt.Sprintf("%s must be a whole number", rule.Label)}
	}
	if v < rule.Min {
		return &ValidationError{Field: rule.Name, Reason: fmt.Sprintf("%s must be at least %s", rule.Label, strconv.FormatFloat(rule.Min, 'f', -1, 64))}
	}
	return nil
}

// ------------------- payload -------------------

// SplitList turns a comma-separated input into its segments: each trimmed,
// empty segments dropped, order preserved.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// buildPayloadLocked constructs the multipart payload: trimmed scalars,
// normalised numbers, list fields as JSON-encoded arrays, and the image file
// only when the user selected a new one.
func (f *FormController) buildPayloadLocked() (*MultipartPayload, error) {
	payload := &MultipartPayload{}

	for _, rule := range f.spec.Fields {
		raw := strings.TrimSpace(f.values[rule.Name])

		switch rule.Kind {
		case FieldText:
			payload.AddField(rule.Name, raw)
		case FieldNumber:
			if raw == "" && !rule.Required {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &ValidationError{Field: rule.Name, Reason: fmt.Sprintf("%s must be a valid number", rule.Label)}
			}
			payload.AddField(rule.Name, strconv.FormatFloat(v, 'f', -1, 64))
		case FieldList:
			encoded, err := json.Marshal(SplitList(raw))
			if err != nil {
				return nil, err
			}
			payload.AddField(rule.Name, string(encoded))
		case FieldBool:
			payload.AddField(rule.Name, strconv.FormatBool(raw == "true"))
		case FieldImage:
			payload.AttachFile(f.pendingFile)
		}
	}
	return payload, nil
}

// ------------------- submit lifecycle -------------------

// Submit validates and dispatches the form: POST in create mode, PUT to the
// edit target in edit mode. Updates require confirmed=true. On success the
// form resets to blank create mode and the list store is reloaded exactly
// once; on failure all entered values are preserved so the user can retry.
func (f *FormController) Submit(ctx context.Context, confirmed bool) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if err := f.validateLocked(); err != nil {
		f.mu.Unlock()
		return err
	}
	if f.mode.Kind == ModeEdit && !confirmed {
		f.mu.Unlock()
		return ErrConfirmationRequired
	}
	payload, err := f.buildPayloadLocked()
	if err != nil {
		f.mu.Unlock()
		return err
	}
	mode := f.mode
	f.submitting = true
	f.mu.Unlock()

	if mode.Kind == ModeEdit {
		err = f.client.Update(ctx, f.spec.Endpoint, mode.EditID, payload)
	} else {
		err = f.client.Create(ctx, f.spec.Endpoint, payload)
	}

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.resetLocked()
	f.mu.Unlock()

	f.reload()
	return nil
}

// Delete removes an entity after explicit confirmation, then reloads the
// list. If the deleted entity was being edited the form resets too.
func (f *FormController) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := f.client.Delete(ctx, f.spec.Endpoint, id); err != nil {
		return err
	}

	f.mu.Lock()
	if f.mode.Kind == ModeEdit && f.mode.EditID == id {
		f.resetLocked()
	}
	f.mu.Unlock()

	f.reload()
	return nil
}

// ------------------- accessors -------------------

// Values returns a copy of the current field values.
func (f *FormController) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Field returns one field's current raw value.
func (f *FormController) Field(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

// Mode returns the current tagged editing mode.
func (f *FormController) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Submitting reports whether a submission is in flight; screens disable the
// submit control while it is.
func (f *FormController) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// CurrentImage returns the preview to display: the freshest selected file's
// data URL, or the edit target's resolved stored image.
func (f *FormController) CurrentImage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentImage
}

// UserMessage maps a submit/delete error to the string shown to the user:
// the backend's own message when it sent one, otherwise the given fallback.
// Validation errors and confirmation errors pass through as-is.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	if errors.Is(err, ErrSubmitInFlight) || errors.Is(err, ErrConfirmationRequired) {
		return err.Error()
	}
	var be *BackendError
	if errors.As(err, &be) && be.Status != 0 && be.Message != "" {
		return be.Message
	}
	return fallback
}
