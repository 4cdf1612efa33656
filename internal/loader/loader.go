// Package loader turns one project file into a models.Project, filling the
// fields that can be inferred from where the file lives.
package loader

import (
	"fmt"
	"path"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/projlog/internal/apperr"
	"github.com/starford/projlog/internal/models"
	"github.com/starford/projlog/internal/parser"
)

// Loaded is a record together with the keys the parser did not recognise.
type Loaded struct {
	Project models.Project
	Unknown []string
}

// Load parses data read from src and applies the loader defaults:
//   - status falls back to the directory the file was discovered in
//   - name falls back to the file name without its extension
//
// Values present in the file are never replaced.
func Load(src models.Source, data []byte) (*Loaded, error) {
	res, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", src.Path, err)
	}
	doc := res.Document

	p := models.Project{
		Path:     src.Path,
		Status:   models.Status(doc.Status),
		Name:     doc.Name,
		Slug:     doc.Slug,
		What:     doc.What,
		How:      doc.How,
		Now:      doc.Now,
		With:     doc.With,
		Where:    doc.Where,
		Media:    doc.Media,
		Started:  doc.Started,
		Finished: doc.Finished,
	}
	if p.Status == "" {
		p.Status = statusOf(src)
	}
	if p.Name == "" {
		p.Name = NameFromPath(src.Path)
	}

	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("loader: %s: %w", src.Path, apperr.Invalid(err))
	}
	return &Loaded{Project: p, Unknown: res.Unknown}, nil
}

// NameFromPath returns the base name of p with its extension removed.
func NameFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// StatusFromPath returns the first segment of a slash separated path.
func StatusFromPath(p string) models.Status {
	first, _, _ := strings.Cut(p, "/")
	return models.Status(first)
}

func statusOf(src models.Source) models.Status {
	if src.Status != "" {
		return src.Status
	}
	return StatusFromPath(src.Path)
}

func validate(p *models.Project) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Status, validation.Required),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.What, validation.Required),
	)
}
