// Package fields provides CLI helpers to display the entry fields.
package fields

import (
	"context"
	"io"

	"tableflip.dev/dreams/pkg/printers"
	"tableflip.dev/dreams/pkg/schema"
)

// Fields prints the fields a dream entry can carry.
type Fields struct {
	Out io.Writer
}

// Do renders the field table.
func (f *Fields) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: f.Out}
	pp.NewLine()
	pp.Fields(schema.Fields())
	return nil
}
