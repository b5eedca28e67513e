package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/artscore/internal/scoring"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List scoring profiles and their weights",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printProfiles(cmd)
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func printProfiles(cmd *cobra.Command) {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	out := cmd.OutOrStdout()

	for _, p := range scoring.Profiles {
		var terms []string
		for _, w := range p.Weights() {
			terms = append(terms, fmt.Sprintf("%s×%g", w.Type, w.Factor))
		}
		fmt.Fprintf(out, "%s %s\n", header.Render(fmt.Sprintf("%-18s", p)), strings.Join(terms, " + "))
	}
	fmt.Fprintln(out, dim.Render(fmt.Sprintf("tiers: SS >= %d, S >= %d, A >= %d, else B",
		scoring.TierSSMin, scoring.TierSMin, scoring.TierAMin)))
}
