// Package normalize brings loaded records into canonical shape. Every
// function here is pure; normalizing a normalized record changes nothing.
package normalize

import (
	"strings"
	"time"

	"github.com/starford/projlog/internal/models"
)

const (
	githubScheme = "github:"
	githubURL    = "https://github.com/"
)

// Project returns a normalized copy of p with dates pinned to loc.
func Project(p models.Project, loc *time.Location) models.Project {
	out := p
	if out.Slug == "" {
		out.Slug = Slug(out.Name)
	}
	out.With = List(p.With)
	out.Where = Where(p.Where)
	out.Media = List(p.Media)
	out.Started = p.Started.In(loc)
	out.Finished = p.Finished.In(loc)
	out.Modified = p.Modified.In(loc)
	return out
}

// List copies l, turning an absent list into an empty one.
func List(l []string) []string {
	out := make([]string, 0, len(l))
	return append(out, l...)
}

// Where expands github: shorthands into full URLs.
func Where(l []string) []string {
	out := make([]string, 0, len(l))
	for _, s := range l {
		if rest, ok := strings.CutPrefix(s, githubScheme); ok {
			s = githubURL + rest
		}
		out = append(out, s)
	}
	return out
}
