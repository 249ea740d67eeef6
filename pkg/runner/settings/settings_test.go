package settings

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"tableflip.dev/dreams/pkg/store"
)

func isolate(t *testing.T) string {
	t.Helper()
	color.NoColor = true
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DREAMS_CONFIG_PATH", "")
	t.Setenv("DREAMS_VAULT", "")
	t.Setenv("DREAMS_EXTENSION", "")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestInitWritesSettings(t *testing.T) {
	home := isolate(t)
	var out bytes.Buffer

	n := &Init{Vault: "~/journal/dreams", Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	path := filepath.Join(home, ".dreams.yaml")
	if !strings.Contains(out.String(), path) {
		t.Fatalf("expected location in output, got %q", out.String())
	}

	s, file, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if file != path || s.Vault != "~/journal/dreams" || s.Extension != "md" {
		t.Fatalf("unexpected settings %+v from %q", s, file)
	}
}

func TestInitRefusesToReplace(t *testing.T) {
	isolate(t)
	ctx := context.Background()
	if err := (&Init{Out: &bytes.Buffer{}}).Do(ctx); err != nil {
		t.Fatalf("first Do: %v", err)
	}
	if err := (&Init{Extension: "txt", Out: &bytes.Buffer{}}).Do(ctx); err == nil {
		t.Fatalf("expected existing file to be kept")
	}
	if err := (&Init{Extension: "txt", Force: true, Out: &bytes.Buffer{}}).Do(ctx); err != nil {
		t.Fatalf("forced Do: %v", err)
	}
	s, _, err := store.LoadSettings()
	if err != nil || s.Extension != "txt" {
		t.Fatalf("expected txt extension, got %+v, %v", s, err)
	}
}
