package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"journeydeck/internal/adapters/format"
	"journeydeck/internal/application"
	"journeydeck/internal/application/commands"
	"journeydeck/internal/domain"
)

var playCmd = &cobra.Command{
	Use:   "play <action[:arg]>...",
	Short: "Replay navigation actions on a fresh session",
	Long: `Replay a sequence of navigation actions starting from the landing screen
and print the state after each one. Actions that do not apply to the current
screen leave it unchanged.

Actions: ` + strings.Join(application.ActionNames(), ", ") + `

Examples:
  journeydeck-cli play enter select-task:journey-analysis select-journey:github next next
  journeydeck-cli play enter select-task:growth-strategy next-slide back --output yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}

		frames, err := commands.NewPlayCommand(args).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if f != format.Text {
			return format.Encode(out, f, format.FrameDocs(frames))
		}
		for _, fr := range frames {
			fmt.Fprintf(out, "%-28s %s\n", fr.Step, describe(fr.Snapshot))
		}
		return nil
	},
}

// describe summarizes a snapshot on one line
func describe(snap domain.Snapshot) string {
	switch {
	case snap.InFlowchart():
		latest, _ := snap.Latest()
		return fmt.Sprintf("%s  %s step %d of %d: %s",
			snap.Screen, snap.Journey, snap.Revealed, snap.TotalSteps, latest.Title)
	case snap.InSignup():
		return fmt.Sprintf("%s  slide %d of %d: %s",
			snap.Screen, snap.SlidePosition(), snap.TotalSlides, snap.Slide.Heading())
	default:
		return snap.Screen.String()
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	addOutputFlag(playCmd)
}
