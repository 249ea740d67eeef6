// Package settings writes the dreams settings file.
package settings

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/dreams/pkg/printers"
	"tableflip.dev/dreams/pkg/store"
)

// Init saves a settings file seeded from the current settings. Empty
// fields keep their current value.
type Init struct {
	Path      string
	Vault     string
	Extension string
	Force     bool
	Out       io.Writer
}

func (n *Init) Do(ctx context.Context) error {
	s, _, err := store.LoadSettings()
	if err != nil {
		return err
	}
	if n.Vault != "" {
		s.Vault = n.Vault
	}
	if n.Extension != "" {
		s.Extension = n.Extension
	}

	path := n.Path
	if path == "" {
		if path, err = store.DefaultSettingsPath(); err != nil {
			return err
		}
	}
	if _, err := os.Stat(path); err == nil && !n.Force {
		return fmt.Errorf("%s already exists, use --force to replace it", path)
	}

	if err := store.SaveSettings(path, s); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Notify("Settings saved")
	pp.Location(path)
	return nil
}
