package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dreams/pkg/runner/fields"
)

func addFields(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the fields of a dream entry",
		Example: `
dreams fields
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := fields.Fields{Out: cmd.OutOrStdout()}
			err := f.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
