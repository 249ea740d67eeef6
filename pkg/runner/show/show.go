// Package show prints a stored dream entry.
package show

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/dreams/pkg/document"
	"tableflip.dev/dreams/pkg/printers"
	"tableflip.dev/dreams/pkg/store"
)

type Show struct {
	Title     string
	Extension string
	// Raw prints the document exactly as stored.
	Raw bool
	// Markdown renders the body instead of wrapping it.
	Markdown bool
	Vault    store.Vault
	Out      io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Vault == nil {
		return errors.New("can not show, no vault")
	}
	ext := n.Extension
	if ext == "" {
		ext = "md"
	}
	name := document.Document{Title: n.Title}.FileName(ext)

	b, err := n.Vault.Read(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no dream entry titled %q", n.Title)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, Markdown: n.Markdown}
	if n.Raw {
		pp.Raw(b)
		return nil
	}
	d, err := document.Parse(b)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	pp.NewLine()
	pp.Document(d)
	return nil
}
