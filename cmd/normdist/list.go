// cmd/normdist/list.go
package normdist

import (
	"github.com/spf13/cobra"
)

// listCmd is the namespace for read-only listings: the command tree and
// the critical-value table.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands that print reference listings",
	Long:  `The 'list' command groups subcommands that print reference listings, such as the command tree or a table of critical values. It performs no action on its own.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
