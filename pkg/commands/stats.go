package commands

import (
	"github.com/spf13/cobra"
)

// Statistics are not implemented yet; the command records a new entry like
// new does.
func addStats(topLevel *cobra.Command) {
	cmd := newEntryCommand("stats", "Dream statistics (records a new dream for now).", nil)
	cmd.Hidden = true
	topLevel.AddCommand(cmd)
}
