package history

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// gitDateLayout matches git's %ai placeholder.
const gitDateLayout = "2006-01-02 15:04:05 -0700"

// Git resolves history by shelling out to git inside Dir.
type Git struct {
	Dir     string
	Binary  string        // defaults to "git"
	Timeout time.Duration // zero means no per-lookup timeout
}

// NewGit returns a Git lookup rooted at dir.
func NewGit(dir string, timeout time.Duration) *Git {
	return &Git{Dir: dir, Binary: "git", Timeout: timeout}
}

// Latest runs `git log -1` for path and parses the revision and author date.
func (g *Git) Latest(ctx context.Context, path string) Result {
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	bin := g.Binary
	if bin == "" {
		bin = "git"
	}
	cmd := exec.CommandContext(ctx, bin, "log", "-1", "--format=%H%x09%ai", "--", path)
	cmd.Dir = g.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			err = fmt.Errorf("git log %s: %w: %s", path, err, msg)
		} else {
			err = fmt.Errorf("git log %s: %w", path, err)
		}
		return Result{Outcome: Failed, Err: err}
	}
	return parseLog(out)
}

// parseLog reads "<hash>\t<date>" as printed by --format=%H%x09%ai. Empty
// output means git knows nothing about the path.
func parseLog(out []byte) Result {
	line := strings.TrimSpace(string(out))
	if line == "" {
		return Result{Outcome: NotFound}
	}
	hash, date, ok := strings.Cut(line, "\t")
	if !ok || hash == "" {
		return Result{Outcome: Failed, Err: fmt.Errorf("unexpected git output %q", line)}
	}
	modified, err := time.Parse(gitDateLayout, date)
	if err != nil {
		return Result{Outcome: Failed, Err: fmt.Errorf("parse git date: %w", err)}
	}
	return Result{Outcome: Found, Commit: hash, Modified: modified}
}
