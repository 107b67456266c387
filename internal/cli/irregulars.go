package cli

import (
	"github.com/rcliao/verbseed/internal/conjugation"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "irregulars",
		Short: "List the verbs with hand-authored irregular tables",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(cmd, conjugation.IrregularVerbs())
		},
	}

	RootCmd.AddCommand(cmd)
}
