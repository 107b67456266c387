package cli

import (
	"github.com/rcliao/verbseed/internal/model"
	"github.com/rcliao/verbseed/internal/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "put <infinitive>",
		Short: "Conjugate and store a single verb",
		Long:  "Conjugate a single verb and store it, replacing any stored verb with the same infinitive.",
		Args:  cobra.ExactArgs(1),
		Run:   runPut,
	}

	cmd.Flags().StringP("english", "e", "", "English gloss (required)")
	cmd.Flags().BoolP("irregular", "i", false, "Use the irregular catalog when the verb is in it")
	cmd.Flags().StringP("category", "c", "", "Category tag, e.g. essential, social, slang")
	cmd.Flags().String("example-es", "", "Spanish example sentence")
	cmd.Flags().String("example-en", "", "English translation of the example")

	cmd.MarkFlagRequired("english")
	cmd.RegisterFlagCompletionFunc("category", completeCategory)

	RootCmd.AddCommand(cmd)
}

func runPut(cmd *cobra.Command, args []string) {
	english, _ := cmd.Flags().GetString("english")
	irregular, _ := cmd.Flags().GetBool("irregular")

	rec := model.VerbRecord{
		Infinitive:     args[0],
		English:        english,
		IsIrregular:    irregular,
		Category:       optionalFlag(cmd, "category"),
		ExampleSpanish: optionalFlag(cmd, "example-es"),
		ExampleEnglish: optionalFlag(cmd, "example-en"),
	}

	verbs, _, err := pipeline.Expand(cmd.Context(), []model.VerbRecord{rec}, pipeline.Options{Workers: 1})
	if err != nil {
		exitErr("put", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stored, err := s.Put(cmd.Context(), verbs[0])
	if err != nil {
		exitErr("put", err)
	}

	printJSON(cmd, stored)
}

func optionalFlag(cmd *cobra.Command, name string) *string {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return nil
	}
	return &v
}

func completeCategory(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for c := range model.ValidCategories {
		out = append(out, c)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
