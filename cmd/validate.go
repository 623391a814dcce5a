package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/plantlore/internal/format"
)

var validateCmd = &cobra.Command{
	Use:   "validate [location]",
	Short: "Check an analysis document",
	Long: `Loads the analysis document (the configured one, or the file or URL given
as argument) and reports its shape and any out-of-range values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("strict", false, "treat out-of-range values as errors")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Analysis = args[0]
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		cfg.Strict = true
	}
	logger, err := initLogger(cfg)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	printer, err := format.NewPrinter(cfg.Locale)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, t := range doc.Texts {
		label := cfg.Labels.First
		if i == 1 {
			label = cfg.Labels.Second
		}
		fmt.Fprintf(out, "%s: %s words, %s unique, %d top words\n",
			label, printer.Count(t.TotalWords), printer.Count(t.UniqueWords), len(t.TopWords))
	}
	fmt.Fprintf(out, "Comparison: %s overlap, %s shared words\n",
		printer.Percent(doc.Comparison.OverlapPercentage, 2), printer.Count(doc.Comparison.TotalSharedWords))

	problems := doc.Problems()
	if len(problems) == 0 {
		fmt.Fprintln(out, "OK")
		return nil
	}
	fmt.Fprintf(out, "%d warning(s):\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(out, "  - %s\n", p)
	}
	return nil
}
