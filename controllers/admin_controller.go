// Package controllers file: controllers/admin_controller.go
package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"yala-safari-web/logger"
	"yala-safari-web/models"
	"yala-safari-web/services"
)

// adminScreen is the one list+form CRUD screen, parameterized per entity.
// Every admin page used to re-implement this flow by hand; now the entity
// screens differ only in their form spec, template and seed functions.
type adminScreen[T models.Searchable] struct {
	name     string // singular, for messages: "tour"
	plural   string // for load errors: "tours"
	template string
	redirect string
	catalog  *services.Catalog[T]
	form     *services.FormController
	spec     services.FormSpec
	idOf     func(T) string
	imageOf  func(T) string
	seed     func(T) map[string]string
	extras   func() gin.H // extra template data, nil for most screens
}

// show loads the list, optionally seeds the form from ?edit=<id> or resets
// it on ?cancel=1, then renders list plus form.
func (s *adminScreen[T]) show(c *gin.Context) {
	loadErr := s.catalog.Load(c.Request.Context())

	if id := c.Query("edit"); id != "" {
		if item, ok := s.catalog.Find(id, s.idOf); ok {
			img := s.imageOf(item)
			s.form.SelectForEdit(id, s.seed(item), resolver.Resolve(img), img != "")
		} else {
			logger.Warn.Printf("admin %s: edit target %s not in catalog", s.plural, id)
		}
	}
	if c.Query("cancel") == "1" {
		s.form.Reset()
	}

	s.render(c, "", loadErr)
}

// save copies the posted fields into the form controller and submits:
// create on a blank form, update (confirmation required) on an edit target.
// On failure the page re-renders with every entered value intact.
func (s *adminScreen[T]) save(c *gin.Context) {
	s.copyPostedFields(c)
	s.attachPostedImage(c)

	confirmed := c.PostForm("confirm") == "true"
	if err := s.form.Submit(c.Request.Context(), confirmed); err != nil {
		logger.Warn.Printf("admin %s: save failed: %v", s.plural, err)
		s.render(c, services.UserMessage(err, "could not save "+s.name+", please try again"), s.catalog.Err())
		return
	}

	c.Redirect(http.StatusFound, s.redirect)
}

// remove deletes the posted entity id. Deletion is destructive, so the
// confirmation flag is mandatory.
func (s *adminScreen[T]) remove(c *gin.Context) {
	id := c.PostForm("id")
	confirmed := c.PostForm("confirm") == "true"

	if err := s.form.Delete(c.Request.Context(), id, confirmed); err != nil {
		logger.Warn.Printf("admin %s: delete of %s failed: %v", s.plural, id, err)
		s.render(c, services.UserMessage(err, "could not delete "+s.name+", please try again"), s.catalog.Err())
		return
	}

	c.Redirect(http.StatusFound, s.redirect)
}

func (s *adminScreen[T]) render(c *gin.Context, errMsg string, loadErr error) {
	term := c.Query("q")
	items := s.catalog.Filter(term)

	cards := make([]gin.H, 0, len(items))
	for _, item := range items {
		cards = append(cards, gin.H{
			"Item":     item,
			"ID":       s.idOf(item),
			"ImageURL": resolver.Resolve(s.imageOf(item)),
		})
	}

	mode := s.form.Mode()
	data := gin.H{
		"Items":        cards,
		"Search":       term,
		"Form":         s.form.Values(),
		"Editing":      mode.Kind == services.ModeEdit,
		"EditID":       mode.EditID,
		"CurrentImage": s.form.CurrentImage(),
		"Submitting":   s.form.Submitting(),
		"Error":        errMsg,
		"LoadError":    loadErrorText(loadErr, s.plural),
	}
	if s.extras != nil {
		for k, v := range s.extras() {
			data[k] = v
		}
	}

	c.HTML(http.StatusOK, s.template, data)
}

// copyPostedFields stores every posted non-file field on the controller.
// Unchecked checkboxes post nothing, so bool fields default to false.
func (s *adminScreen[T]) copyPostedFields(c *gin.Context) {
	for _, rule := range s.spec.Fields {
		switch rule.Kind {
		case services.FieldImage:
			// handled by attachPostedImage
		case services.FieldBool:
			if v := c.PostForm(rule.Name); v == "on" || v == "true" {
				s.form.SetField(rule.Name, "true")
			} else {
				s.form.SetField(rule.Name, "false")
			}
		default:
			s.form.SetField(rule.Name, c.PostForm(rule.Name))
		}
	}
}

// attachPostedImage forwards a newly selected image file, if any, to the
// form controller. An empty file input means "keep existing image".
func (s *adminScreen[T]) attachPostedImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil || header.Size == 0 {
		return
	}

	file, err := header.Open()
	if err != nil {
		logger.Error.Printf("admin %s: opening uploaded image: %v", s.plural, err)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error.Printf("admin %s: reading uploaded image: %v", s.plural, err)
		return
	}

	s.form.AttachImage(header.Filename, data, header.Header.Get("Content-Type"))
}
