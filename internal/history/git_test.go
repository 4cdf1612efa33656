package history

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func TestParseLog(t *testing.T) {
	r := parseLog([]byte("0123abcd\t2023-01-02 03:04:05 +1300\n"))
	if r.Outcome != Found {
		t.Fatalf("outcome = %v, err = %v", r.Outcome, r.Err)
	}
	if r.Commit != "0123abcd" {
		t.Errorf("commit = %q", r.Commit)
	}
	want := time.Date(2023, 1, 1, 14, 4, 5, 0, time.UTC)
	if !r.Modified.Equal(want) {
		t.Errorf("modified = %v, want %v", r.Modified, want)
	}
}

func TestParseLog_Empty(t *testing.T) {
	if r := parseLog([]byte("\n")); r.Outcome != NotFound {
		t.Errorf("outcome = %v, want not-found", r.Outcome)
	}
}

func TestParseLog_Garbage(t *testing.T) {
	for _, in := range []string{"no-tab-here", "abc\tyesterday"} {
		r := parseLog([]byte(in))
		if r.Outcome != Failed || r.Err == nil {
			t.Errorf("parseLog(%q) = %+v, want failed", in, r)
		}
	}
}

func TestGit_MissingBinary(t *testing.T) {
	g := &Git{Dir: t.TempDir(), Binary: "projlog-no-such-git"}
	r := g.Latest(context.Background(), "doing/a.toml")
	if r.Outcome != Failed || r.Err == nil {
		t.Errorf("result = %+v, want failed", r)
	}
}

func TestGit_Repository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	git := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=projlog", "GIT_AUTHOR_EMAIL=projlog@example.com",
			"GIT_COMMITTER_NAME=projlog", "GIT_COMMITTER_EMAIL=projlog@example.com",
			"GIT_AUTHOR_DATE=2023-01-02T03:04:05+13:00",
			"GIT_COMMITTER_DATE=2023-01-02T03:04:05+13:00",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	if err := os.MkdirAll(filepath.Join(dir, "doing"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "doing", "a.toml"), []byte(`what = "x"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "doing", "untracked.toml"), []byte(`what = "y"`), 0o644); err != nil {
		t.Fatal(err)
	}
	git("init", "-q")
	git("add", "doing/a.toml")
	git("commit", "-q", "-m", "add a")

	g := NewGit(dir, 5*time.Second)

	r := g.Latest(context.Background(), "doing/a.toml")
	if r.Outcome != Found {
		t.Fatalf("outcome = %v, err = %v", r.Outcome, r.Err)
	}
	if len(r.Commit) != 40 {
		t.Errorf("commit = %q, want full hash", r.Commit)
	}
	if want := time.Date(2023, 1, 1, 14, 4, 5, 0, time.UTC); !r.Modified.Equal(want) {
		t.Errorf("modified = %v, want %v", r.Modified, want)
	}

	if r := g.Latest(context.Background(), "doing/untracked.toml"); r.Outcome != NotFound {
		t.Errorf("untracked outcome = %v, err = %v", r.Outcome, r.Err)
	}
}

func TestGit_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	r := NewGit(dir, 0).Latest(context.Background(), "doing/a.toml")
	if r.Outcome != Failed {
		t.Errorf("outcome = %v, want failed", r.Outcome)
	}
}

func TestDisabled(t *testing.T) {
	if r := Disabled.Latest(context.Background(), "x"); r.Outcome != NotFound {
		t.Errorf("outcome = %v", r.Outcome)
	}
}
