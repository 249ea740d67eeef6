package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/dreams/pkg/store"
)

type Info struct {
	Config store.Config
	// SettingsFile is the config file viper used, empty when none was found.
	SettingsFile string
	Out          io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv("DREAMS_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "DREAMS_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "DREAMS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		s, file, err := store.LoadSettings()
		if err != nil {
			return err
		}
		n.Config = s.Config()
		n.SettingsFile = file
	}

	if n.SettingsFile != "" {
		_, _ = fmt.Fprintln(w, "Settings file:", n.SettingsFile)
	} else {
		_, _ = fmt.Fprintln(w, "Settings file: none, using defaults")
	}
	_, _ = fmt.Fprintln(w, "Vault path:", n.Config.VaultPath())
	_, _ = fmt.Fprintln(w, "Extension:", n.Config.Extension())

	if _, err := os.Stat(n.Config.VaultPath()); os.IsNotExist(err) {
		_, _ = fmt.Fprintln(w, "Vault does not exist yet, it is created with the first entry.")
	}
	return nil
}
