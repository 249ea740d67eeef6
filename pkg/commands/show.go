package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dreams/pkg/runner/show"
	"tableflip.dev/dreams/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	raw, plain := false, false
	cmd := &cobra.Command{
		Use:   "show <title>",
		Short: "Print a recorded dream",
		Example: `
dreams show "Flight"
dreams show 2024-03-09 --raw
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			v, err := store.Load(cfg)
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{
				Title:     args[0],
				Extension: cfg.Extension(),
				Raw:       raw,
				Markdown:  !plain,
				Vault:     v,
				Out:       cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the document as stored.")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the body as wrapped text instead of rendered Markdown.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
