// Package models defines the domain types for projlog.
package models

// Status is the lifecycle group a project belongs to. The set of statuses is
// populated by discovery from the configured source directories.
type Status string

const (
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

func (s Status) String() string { return string(s) }

// DefaultStatuses lists the source directories scanned when none are configured.
var DefaultStatuses = []Status{StatusDoing, StatusDone}

// Source is a discovered project file.
type Source struct {
	Path   string // slash separated, relative to the source root
	Status Status // the directory the file was found in
}

// Project is one record of the project log, built from a single source file.
type Project struct {
	Path   string
	Status Status
	Name   string
	Slug   string

	What string
	How  string
	Now  string

	With  []string
	Where []string
	Media []string

	Started  Timestamp
	Finished Timestamp

	// Commit and Modified come from version control and stay empty when the
	// file has no history.
	Commit   string
	Modified Timestamp
}

// HasHistory reports whether the record was enriched from version control.
func (p Project) HasHistory() bool {
	return p.Commit != ""
}
