package cli

import (
	"github.com/rcliao/verbseed/internal/dataset"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored verbs as an expanded dataset",
		Long:  "Export every stored verb, in import order, as an expanded JSON dataset.",
		Run:   runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	verbs, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	if output == "" {
		if err := dataset.Encode(cmd.OutOrStdout(), verbs); err != nil {
			exitErr("export", err)
		}
		return
	}
	if err := dataset.Write(output, verbs); err != nil {
		exitErr("export", err)
	}
}
