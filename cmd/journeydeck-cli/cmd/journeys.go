package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"journeydeck/internal/adapters/format"
	"journeydeck/internal/application"
	"journeydeck/internal/application/commands"
)

var uptoFlag int

var journeysCmd = &cobra.Command{
	Use:   "journeys",
	Short: "List and reveal deployment journeys",
	Long: `List the deployment journeys or reveal one step by step.

Examples:
  journeydeck-cli journeys list
  journeydeck-cli journeys show github
  journeydeck-cli journeys show local --upto 3 --output json`,
}

var journeysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all journeys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}

		summaries, err := commands.NewListJourneysCommand().Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if f != format.Text {
			return format.Encode(out, f, format.SummaryDocs(summaries))
		}
		for _, s := range summaries {
			fmt.Fprintf(out, "%-8s %-20s %2d steps  %s\n", s.Name, s.Title, s.Steps, s.Tagline)
		}
		return nil
	},
}

var journeysShowCmd = &cobra.Command{
	Use:       "show <journey>",
	Short:     "Reveal a journey's steps",
	Long:      "Reveal a journey's steps from the first one, the way the flowchart does.\n\nJourneys: " + strings.Join(application.JourneyNames(), ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: application.JourneyNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}
		if uptoFlag < 0 {
			return &application.ValidationError{Field: "upto", Message: "must not be negative"}
		}

		view, err := commands.NewShowJourneyCommand(args[0], uptoFlag).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if f != format.Text {
			return format.Encode(out, f, format.JourneyViewDoc(view))
		}

		fmt.Fprintf(out, "%s  (step %d of %d)\n\n", view.Title, view.Revealed, view.Total)
		for i, vs := range view.Steps {
			if i > 0 {
				fmt.Fprintln(out, "   ↓")
			}
			marker := " "
			if vs.Latest {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %2d. %s\n      %s\n", marker, vs.Step.ID, vs.Step.Title, vs.Step.Description)
			for _, p := range vs.Step.PainPoints {
				fmt.Fprintf(out, "      ! %s\n", p)
			}
			for _, s := range vs.Step.Solutions {
				fmt.Fprintf(out, "      + %s\n", s)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(journeysCmd)
	journeysCmd.AddCommand(journeysListCmd)
	journeysCmd.AddCommand(journeysShowCmd)

	addOutputFlag(journeysListCmd)
	addOutputFlag(journeysShowCmd)
	journeysShowCmd.Flags().IntVarP(&uptoFlag, "upto", "u", 0, "number of steps to reveal (0 reveals all)")
}
