package cli

import (
	"path/filepath"
	"strings"

	"github.com/rcliao/verbseed/internal/dataset"
	"github.com/rcliao/verbseed/internal/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "expand <seed-file>",
		Short: "Expand a seed dataset with full conjugation tables",
		Long: "Reads seed verbs (JSON array, .csv or .xlsx), conjugates every verb and writes the expanded " +
			"JSON dataset. JSON input is rewritten in place unless --output is given; spreadsheet input is " +
			"written next to the source with a .json extension.",
		Args: cobra.ExactArgs(1),
		Run:  runExpand,
	}

	cmd.Flags().StringP("output", "o", "", "Output path (\"-\" for stdout)")
	cmd.Flags().IntP("workers", "w", 0, "Concurrent conjugation workers (default: number of CPUs)")
	cmd.Flags().Bool("strict", false, "Drop verbs with unsupported infinitive forms instead of writing empty tables")

	RootCmd.AddCommand(cmd)
}

type expandSummary struct {
	OK     bool   `json:"ok"`
	Output string `json:"output"`
	*pipeline.Report
}

func runExpand(cmd *cobra.Command, args []string) {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	workers, _ := cmd.Flags().GetInt("workers")
	strict, _ := cmd.Flags().GetBool("strict")

	if output == "" {
		output = defaultOutput(input)
	}

	records, err := dataset.Load(input)
	if err != nil {
		exitErr("load", err)
	}

	verbs, report, err := pipeline.Expand(cmd.Context(), records, pipeline.Options{
		Workers:         workers,
		SkipUnsupported: strict,
	})
	if err != nil {
		exitErr("expand", err)
	}

	if output == "-" {
		if err := dataset.Encode(cmd.OutOrStdout(), verbs); err != nil {
			exitErr("write", err)
		}
		return
	}
	if err := dataset.Write(output, verbs); err != nil {
		exitErr("write", err)
	}

	printJSON(cmd, expandSummary{OK: true, Output: output, Report: report})
}

func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	switch strings.ToLower(ext) {
	case ".csv", ".xlsx":
		return strings.TrimSuffix(input, ext) + ".json"
	}
	return input
}
