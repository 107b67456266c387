package cli

import (
	"github.com/rcliao/verbseed/internal/conjugation"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get <infinitive>",
		Short: "Retrieve a stored verb",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}

	cmd.Flags().StringP("tense", "t", "", "Only print the forms of one tense")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	tenseName, _ := cmd.Flags().GetString("tense")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	v, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("get", err)
	}

	if tenseName == "" {
		printJSON(cmd, v)
		return
	}
	tense, err := conjugation.ParseTense(tenseName)
	if err != nil {
		exitErr("get", err)
	}
	printJSON(cmd, v.Conjugations[tense])
}
