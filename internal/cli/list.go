package cli

import (
	"fmt"

	"github.com/rcliao/verbseed/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored verbs",
		Run:   runList,
	}

	cmd.Flags().StringP("category", "c", "", "Filter by category")
	cmd.Flags().Bool("irregular", false, "Only irregular verbs")
	cmd.Flags().IntP("limit", "l", 20, "Max results")
	cmd.Flags().Bool("infinitives-only", false, "Only output infinitives")

	cmd.RegisterFlagCompletionFunc("category", completeCategory)

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	irregular, _ := cmd.Flags().GetBool("irregular")
	limit, _ := cmd.Flags().GetInt("limit")
	infinitivesOnly, _ := cmd.Flags().GetBool("infinitives-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	verbs, err := s.List(cmd.Context(), store.ListParams{
		Category:      category,
		IrregularOnly: irregular,
		Limit:         limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if infinitivesOnly {
		for _, v := range verbs {
			fmt.Fprintln(cmd.OutOrStdout(), v.Infinitive)
		}
		return
	}

	printJSON(cmd, verbs)
}
