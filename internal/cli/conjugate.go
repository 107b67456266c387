package cli

import (
	"errors"

	"github.com/rcliao/verbseed/internal/conjugation"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "conjugate <infinitive>",
		Short: "Print the conjugation table of one verb",
		Long:  "Print the conjugation table of one verb. Unsupported infinitives print an empty table.",
		Args:  cobra.ExactArgs(1),
		Run:   runConjugate,
	}

	cmd.Flags().BoolP("irregular", "i", false, "Use the irregular catalog when the verb is in it")
	cmd.Flags().StringP("tense", "t", "", "Only print one tense: presente, preterito, imperfecto, futuro, condicional")

	RootCmd.AddCommand(cmd)
}

func runConjugate(cmd *cobra.Command, args []string) {
	infinitive := args[0]
	irregular, _ := cmd.Flags().GetBool("irregular")
	tenseName, _ := cmd.Flags().GetString("tense")

	table, err := conjugation.Derive(infinitive, irregular)
	if errors.Is(err, conjugation.ErrUnsupportedForm) {
		log.Warn().Str("infinitive", infinitive).Msg("unsupported infinitive form")
	}
	if irregular && !conjugation.IsCatalogued(infinitive) {
		log.Warn().Str("infinitive", infinitive).Msg("not in the irregular catalog; conjugated as regular")
	}

	if tenseName == "" {
		printJSON(cmd, table)
		return
	}
	tense, err := conjugation.ParseTense(tenseName)
	if err != nil {
		exitErr("conjugate", err)
	}
	if table.Empty() {
		printJSON(cmd, struct{}{})
		return
	}
	printJSON(cmd, table[tense])
}
