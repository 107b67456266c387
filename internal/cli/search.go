package cli

import (
	"fmt"
	"strings"

	"github.com/rcliao/verbseed/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search <form>",
		Short: "Find which stored verbs produce a conjugated form",
		Long:  "Reverse lookup: list the verb, tense and person of every stored form equal to the query.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().BoolP("partial", "p", false, "Match forms containing the query")
	cmd.Flags().IntP("limit", "l", 50, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	partial, _ := cmd.Flags().GetBool("partial")
	limit, _ := cmd.Flags().GetInt("limit")
	form := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		Form:    form,
		Partial: partial,
		Limit:   limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "[]")
		return
	}

	printJSON(cmd, results)
}
