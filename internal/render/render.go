// Package render turns a normalized project into an HTML fragment.
//
// Field values are escaped for their HTML context. Setting
// Options.TrustMarkup lets prose fields carry markup of their own; it is
// still passed through a sanitising policy first.
package render

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/starford/projlog/internal/apperr"
	"github.com/starford/projlog/internal/models"
)

//go:embed fragment.html.tmpl
var fragmentSource string

const (
	dateLayout     = "2 January 2006"
	dateTimeLayout = "2 January 2006, 15:04"
)

// Options configures a Renderer.
type Options struct {
	// Location is the timezone dates are displayed in. Defaults to UTC.
	Location *time.Location
	// TrustMarkup interprets prose fields as HTML instead of text.
	TrustMarkup bool
	// HistoryURL is the base a record's path is appended to for its
	// "history" link. Empty disables the link.
	HistoryURL string
}

// Renderer renders fragments. It is safe for concurrent use.
type Renderer struct {
	tmpl       *template.Template
	loc        *time.Location
	trust      bool
	historyURL string
	policy     *bluemonday.Policy
}

// New parses the fragment template.
func New(opts Options) (*Renderer, error) {
	tmpl, err := template.New("fragment").Parse(fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("render: parse template: %w", err)
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{
		tmpl:       tmpl,
		loc:        loc,
		trust:      opts.TrustMarkup,
		historyURL: strings.TrimRight(opts.HistoryURL, "/"),
		policy:     bluemonday.UGCPolicy(),
	}, nil
}

type fragment struct {
	Status     string
	Slug       string
	Name       string
	Dates      []string
	What       template.HTML
	How        []template.HTML
	Now        template.HTML
	With       []string
	Where      []link
	Media      []link
	Modified   string
	Commit     string
	HistoryURL string
}

// Render produces the fragment for p.
func (r *Renderer) Render(p models.Project) (string, error) {
	if strings.TrimSpace(p.What) == "" {
		return "", fmt.Errorf("render: %s: %w", p.Path, apperr.Invalid(errors.New("what: cannot be blank")))
	}

	f := fragment{
		Status: string(p.Status),
		Slug:   p.Slug,
		Name:   p.Name,
		What:   r.prose(p.What),
		Now:    r.prose(p.Now),
		With:   p.With,
		Where:  links(p.Where),
		Media:  links(p.Media),
	}
	for _, line := range Paragraphs(p.How) {
		f.How = append(f.How, r.prose(line))
	}
	if !p.Started.IsZero() {
		f.Dates = append(f.Dates, "Started "+r.date(p.Started, dateLayout))
	}
	if !p.Finished.IsZero() {
		f.Dates = append(f.Dates, "Finished "+r.date(p.Finished, dateLayout))
	}
	if p.HasHistory() && !p.Modified.IsZero() {
		f.Modified = r.date(p.Modified, dateTimeLayout)
		f.Commit = p.Commit
		if r.historyURL != "" {
			f.HistoryURL = r.historyURL + "/" + p.Path
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, f); err != nil {
		return "", fmt.Errorf("render: %s: %w", p.Path, err)
	}
	return buf.String(), nil
}

// link is a list entry. Href is empty when the entry is not something a
// browser can follow, and the entry is shown as plain text.
type link struct {
	Text string
	Href string
}

var linkSchemes = map[string]bool{"": true, "http": true, "https": true, "mailto": true}

func links(l []string) []link {
	out := make([]link, 0, len(l))
	for _, s := range l {
		e := link{Text: s}
		if u, err := url.Parse(s); err == nil && linkSchemes[strings.ToLower(u.Scheme)] {
			e.Href = s
		}
		out = append(out, e)
	}
	return out
}

// Paragraphs splits multi-line text into one entry per non-blank line.
func Paragraphs(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func (r *Renderer) prose(s string) template.HTML {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if r.trust {
		return template.HTML(UnwidowHTML(r.policy.Sanitize(s)))
	}
	return template.HTML(template.HTMLEscapeString(Unwidow(s)))
}

func (r *Renderer) date(ts models.Timestamp, layout string) string {
	return ts.Time.In(r.loc).Format(layout)
}
