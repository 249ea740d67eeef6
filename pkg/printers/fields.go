package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dreams/pkg/schema"
)

// Fields renders the schema as a table, content first.
func (pp *PrettyPrint) Fields(fields []schema.FieldDescriptor) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Field"), bold.Sprint("Label"), bold.Sprint("Kind"))
	all := append([]schema.FieldDescriptor{schema.ContentField}, fields...)
	for _, f := range all {
		tbl.AddRow(string(f.ID), f.Label, describeKind(f.Kind))
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func describeKind(k schema.Kind) string {
	switch k := k.(type) {
	case schema.Choice:
		return fmt.Sprintf("%s (%d options)", k, len(k.Options))
	case schema.List:
		return fmt.Sprintf("%s of %s", k, k.Item)
	default:
		return k.String()
	}
}
