package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dreams/pkg/commands/options"
	"tableflip.dev/dreams/pkg/logging"
)

var (
	output  = &base.OutputOptions{}
	verbose = &options.VerboseOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dreams",
		Short: base.Wrap80("Dream journaling on the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetVerbose(verbose.Verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddVerboseArg(cmd, verbose)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNew(topLevel)
	addStats(topLevel)
	addFields(topLevel)
	addShow(topLevel)
	addInit(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
