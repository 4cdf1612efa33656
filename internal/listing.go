package internal

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/starford/projlog/internal/models"
)

var (
	doingColor = color.New(color.FgYellow).SprintFunc()
	doneColor  = color.New(color.FgGreen).SprintFunc()
	otherColor = color.New(color.FgCyan).SprintFunc()
)

// writeListing prints one line per project: status, name, slug and the most
// relevant date.
func writeListing(w io.Writer, projects []models.Project, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range projects {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", statusLabel(p.Status), p.Name, p.Slug, when(p, now)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func statusLabel(s models.Status) string {
	switch s {
	case models.StatusDoing:
		return doingColor(s.String())
	case models.StatusDone:
		return doneColor(s.String())
	default:
		return otherColor(s.String())
	}
}

func when(p models.Project, now time.Time) string {
	switch {
	case !p.Finished.IsZero():
		return "finished " + humanize.RelTime(p.Finished.Time, now, "ago", "from now")
	case !p.Modified.IsZero():
		return "modified " + humanize.RelTime(p.Modified.Time, now, "ago", "from now")
	case !p.Started.IsZero():
		return "started " + humanize.RelTime(p.Started.Time, now, "ago", "from now")
	}
	return "-"
}
