package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dreams/pkg/runner/settings"
)

func addInit(topLevel *cobra.Command) {
	n := &settings.Init{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file.",
		Example: `
dreams init --vault ~/notes/dreams
dreams init --path ./.dreams.yaml --extension txt --force
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			n.Out = cmd.OutOrStdout()
			err := n.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&n.Path, "path", "", "Settings file to write, defaults to ~/.dreams.yaml.")
	cmd.Flags().StringVar(&n.Vault, "vault", "", "Directory dream entries are written to.")
	cmd.Flags().StringVar(&n.Extension, "extension", "", "Extension of entry files.")
	cmd.Flags().BoolVar(&n.Force, "force", false, "Replace an existing settings file.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
