package cli

import (
	"fmt"

	"github.com/rcliao/verbseed/internal/dataset"
	"github.com/rcliao/verbseed/internal/model"
	"github.com/rcliao/verbseed/internal/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <dataset>",
		Short: "Replace the stored verbs with a dataset",
		Long: "Replace every stored verb with the verbs of an expanded dataset. With --expand the file is " +
			"read as seed input and conjugated first.",
		Args: cobra.ExactArgs(1),
		Run:  runImport,
	}

	cmd.Flags().Bool("expand", false, "Treat the file as seed input and conjugate before importing")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	expand, _ := cmd.Flags().GetBool("expand")

	var verbs []model.Verb
	if expand {
		records, err := dataset.Load(args[0])
		if err != nil {
			exitErr("load", err)
		}
		verbs, _, err = pipeline.Expand(cmd.Context(), records, pipeline.Options{})
		if err != nil {
			exitErr("expand", err)
		}
	} else {
		var err error
		verbs, err = dataset.LoadExpanded(args[0])
		if err != nil {
			exitErr("load", err)
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), verbs)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}
