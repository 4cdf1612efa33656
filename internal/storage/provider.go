// Package storage defines the file-system abstraction for project sources
// and generated output.
package storage

import "github.com/starford/projlog/internal/models"

// Provider is the interface for project tree file operations.
type Provider interface {
	// Discover returns every file with extension ext directly inside one of
	// the status directories, in status order then name order.
	Discover(statuses []models.Status, ext string) ([]models.Source, error)
	// Read returns the raw bytes of the file at path (relative to root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to root).
	Write(path string, content []byte) error
	// WriteIfChanged writes content unless path already holds identical bytes.
	// It reports whether the file was written.
	WriteIfChanged(path string, content []byte) (bool, error)
}
