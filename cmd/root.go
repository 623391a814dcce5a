package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "plantlore",
	Short: "Browse a distant reading of two plant-lore books",
	Long: `Plant Lore presents a precomputed lexical analysis of two Victorian
plant-lore texts as three views: one per text and a comparison with a
vocabulary overlap chart. Serve it over HTTP or write it out as a static
site.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".plantlore.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
