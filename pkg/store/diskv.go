// Package store persists dream documents and the tool's settings.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/peterbourgon/diskv/v3"
)

var (
	// ErrExists is returned by Create when the name is taken.
	ErrExists = errors.New("store: document already exists")
	// ErrNotFound is returned when a document is missing.
	ErrNotFound = errors.New("store: document not found")
	// ErrInvalidName is returned for names that would escape the vault.
	ErrInvalidName = errors.New("store: invalid document name")
)

// Artifact is a document stored in the vault.
type Artifact struct {
	Name string
	Path string
}

// Vault is the storage capability the entry session writes through.
type Vault interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string, content []byte) (Artifact, error)
	Overwrite(ctx context.Context, a Artifact, content []byte) error
	Read(ctx context.Context, name string) ([]byte, error)
}

const tempDirName = ".dreams-tmp"

// Load creates a Vault backed by diskv using the provided config. Documents
// are plain files directly inside the vault directory.
func Load(cfg Config) (Vault, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.VaultPath()
	if basePath == "" {
		return nil, errors.New("store: vault path unknown")
	}
	tmp := filepath.Join(basePath, tempDirName)
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure vault: %w", err)
	}

	// No read cache: other programs edit and delete entries while a
	// long-running server holds the vault open.
	return &vault{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		TempDir:           tmp,
		CacheSizeMax:      0,
	}), basePath: basePath}, nil
}

type vault struct {
	d        *diskv.Diskv
	basePath string
}

func (v *vault) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := validName(name); err != nil {
		return false, err
	}
	return v.d.Has(name), nil
}

func (v *vault) Create(ctx context.Context, name string, content []byte) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	if err := validName(name); err != nil {
		return Artifact{}, err
	}
	if v.d.Has(name) {
		return Artifact{}, fmt.Errorf("%w: %s", ErrExists, name)
	}
	if err := v.d.Write(name, content); err != nil {
		return Artifact{}, fmt.Errorf("store: create %s: %w", name, err)
	}
	return v.artifact(name), nil
}

func (v *vault) Overwrite(ctx context.Context, a Artifact, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validName(a.Name); err != nil {
		return err
	}
	if !v.d.Has(a.Name) {
		return fmt.Errorf("%w: %s", ErrNotFound, a.Name)
	}
	if err := v.d.Write(a.Name, content); err != nil {
		return fmt.Errorf("store: overwrite %s: %w", a.Name, err)
	}
	return nil
}

func (v *vault) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validName(name); err != nil {
		return nil, err
	}
	b, err := v.d.Read(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("store: read %s: %w", name, err)
	}
	return b, nil
}

func (v *vault) artifact(name string) Artifact {
	return Artifact{Name: name, Path: filepath.Join(v.basePath, name)}
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: control character in %q", ErrInvalidName, name)
	}
	return nil
}

// keyToPathTransform keeps every document at the vault root.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
