package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dreams/pkg/commands/options"
	"tableflip.dev/dreams/pkg/form"
	"tableflip.dev/dreams/pkg/runner/add"
	"tableflip.dev/dreams/pkg/snake"
	"tableflip.dev/dreams/pkg/store"
)

func addNew(topLevel *cobra.Command) {
	topLevel.AddCommand(newEntryCommand("new", "Record a new dream.", []string{"add"}))
}

func newEntryCommand(use, short string, aliases []string) *cobra.Command {
	ao := &options.AddOptions{}
	interactive := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		Example: `
dreams new
dreams new -i
dreams new --title "Flight" --type Dream --rating 8 --lucid --emotion joy --emotion awe --no-form
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := runNew(cmd, ao, interactive)
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, ao)
	base.AddOutputArg(cmd, output)
	options.InteractiveArgs(cmd, interactive)
	return cmd
}

func runNew(cmd *cobra.Command, ao *options.AddOptions, interactive *options.InteractiveOptions) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	v, err := store.Load(cfg)
	if err != nil {
		return err
	}

	mode := add.ModeForm
	switch {
	case interactive.Interactive:
		mode = add.ModePrompt
	case ao.NoForm || !terminal():
		mode = add.ModeFlags
	}

	a := add.Add{
		Vault:     v,
		Extension: cfg.Extension(),
		Mode:      mode,
		Prefill: func(s *form.State, rows *form.Rows) error {
			return ao.Apply(cmd.Flags(), s, rows)
		},
		Asker: &snake.Prompter{
			Stdin:  os.Stdin,
			Stdout: snake.NopCloser(os.Stdout),
		},
		Out: cmd.OutOrStdout(),
	}
	return a.Do(cmd.Context())
}

func terminal() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return false
		}
	}
	return true
}
