package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func isolate(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(envConfigPath, t.TempDir())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestSaveThenLoadSettings(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv(envConfigPath, dir)

	want := Settings{Vault: filepath.Join(dir, "vault"), Extension: "txt"}
	if err := SaveSettings(filepath.Join(dir, configName+".yaml"), want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, used, err := LoadSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if used != filepath.Join(dir, configName+".yaml") {
		t.Fatalf("unexpected config file %q", used)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Extension() != "md" {
		t.Fatalf("unexpected extension %q", cfg.Extension())
	}
	if cfg.VaultPath() != filepath.Join(home, "dreams") {
		t.Fatalf("unexpected vault %q", cfg.VaultPath())
	}
}

func TestEnvironmentOverridesVault(t *testing.T) {
	isolate(t)
	t.Setenv("DREAMS_VAULT", "/tmp/elsewhere")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.VaultPath() != "/tmp/elsewhere" {
		t.Fatalf("unexpected vault %q", cfg.VaultPath())
	}
}
