package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/projlog/internal/models"
)

func tempTree(t *testing.T) *FS {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func TestWriteAndRead(t *testing.T) {
	s := tempTree(t)
	content := []byte("name = \"Alpha\"\n")
	if err := s.Write("doing/alpha.toml", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("doing/alpha.toml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestDiscover(t *testing.T) {
	s := tempTree(t)
	_ = s.Write("done/zeta.toml", []byte(""))
	_ = s.Write("doing/beta.toml", []byte(""))
	_ = s.Write("doing/alpha.toml", []byte(""))
	_ = s.Write("doing/notes.txt", []byte(""))
	_ = s.Write("doing/.#alpha.toml", []byte(""))
	_ = s.Write("done/.hidden.toml", []byte(""))
	_ = s.Write("doing/nested/deep.toml", []byte(""))
	_ = s.Write("archived/old.toml", []byte(""))

	got, err := s.Discover(models.DefaultStatuses, ".toml")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []models.Source{
		{Path: "doing/alpha.toml", Status: models.StatusDoing},
		{Path: "doing/beta.toml", Status: models.StatusDoing},
		{Path: "done/zeta.toml", Status: models.StatusDone},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDiscover_MissingStatusDir(t *testing.T) {
	s := tempTree(t)
	_ = s.Write("done/a.toml", []byte(""))
	got, err := s.Discover(models.DefaultStatuses, ".toml")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 1 || got[0].Status != models.StatusDone {
		t.Errorf("got %v", got)
	}
}

func TestDiscover_StatusEscapingRoot(t *testing.T) {
	s := tempTree(t)
	if _, err := s.Discover([]models.Status{"../elsewhere"}, ".toml"); err == nil {
		t.Error("expected error for status outside root")
	}
}

func TestWriteIfChanged(t *testing.T) {
	s := tempTree(t)
	written, err := s.WriteIfChanged("out/index.html", []byte("<p>one</p>"))
	if err != nil || !written {
		t.Fatalf("first write: written=%v err=%v", written, err)
	}
	written, err = s.WriteIfChanged("out/index.html", []byte("<p>one</p>"))
	if err != nil || written {
		t.Fatalf("identical write: written=%v err=%v", written, err)
	}
	written, err = s.WriteIfChanged("out/index.html", []byte("<p>two</p>"))
	if err != nil || !written {
		t.Fatalf("changed write: written=%v err=%v", written, err)
	}
	got, _ := s.Read("out/index.html")
	if string(got) != "<p>two</p>" {
		t.Errorf("content = %q", got)
	}
}

func TestTraversalBlocked(t *testing.T) {
	s := tempTree(t)

	cases := []string{
		"../../etc/passwd",
		"../outside.toml",
		"/etc/shadow",
	}
	for _, p := range cases {
		if _, err := s.Read(p); err == nil {
			t.Errorf("expected error for path %q", p)
		}
		if err := s.Write(p, []byte("x")); err == nil {
			t.Errorf("expected error for write to %q", p)
		}
	}
}

func TestAtomicWriteNoLeftovers(t *testing.T) {
	s := tempTree(t)
	_ = s.Write("index.html", []byte("original"))
	if err := s.Write("index.html", []byte("updated")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read("index.html")
	if string(got) != "updated" {
		t.Errorf("expected updated content, got %q", got)
	}
	matches, _ := filepath.Glob(filepath.Join(s.root, ".projlog-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestNewFS_NonExistentDir(t *testing.T) {
	_, err := NewFS(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("expected error for non-existent dir")
	}
}

func TestNewFS_FileNotDir(t *testing.T) {
	f, _ := os.CreateTemp(t.TempDir(), "projlog-test-*")
	_ = f.Close()
	_, err := NewFS(f.Name())
	if err == nil {
		t.Error("expected error when root is a file")
	}
}
