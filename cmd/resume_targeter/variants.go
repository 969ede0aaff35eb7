package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/jonathan/resume-targeter/internal/keywords"
	"github.com/spf13/cobra"
)

var variantsCmd = &cobra.Command{
	Use:   "variants TERM [TERM...]",
	Short: "Show the match variants generated for keywords",
	Long:  "Prints the normalized variant set (hyphen/space swaps, naive singular and plural) the matcher generates for each given term. Useful for debugging why a keyword did or did not match.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVariants,
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}

func runVariants(_ *cobra.Command, args []string) error {
	for _, term := range args {
		variants := keywords.VariantsOf(term)
		sorted := make([]string, 0, len(variants))
		for variant := range variants {
			sorted = append(sorted, variant)
		}
		sort.Strings(sorted)

		_, _ = fmt.Fprintf(os.Stdout, "%s:\n", term)
		for _, variant := range sorted {
			_, _ = fmt.Fprintf(os.Stdout, "  %s\n", variant)
		}
	}
	return nil
}
