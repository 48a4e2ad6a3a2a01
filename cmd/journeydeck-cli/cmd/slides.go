package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"journeydeck/internal/adapters/format"
	"journeydeck/internal/adapters/markdown"
	"journeydeck/internal/application"
	"journeydeck/internal/application/commands"
)

var rawFlag bool

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Show the signup strategy slides",
	Long: `List the signup strategy slides or show one of them.

Examples:
  journeydeck-cli slides list
  journeydeck-cli slides show 4
  journeydeck-cli slides show 10 --raw`,
}

var slidesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List slide headings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		headings, err := commands.NewListSlidesCommand().Execute(cmd.Context())
		if err != nil {
			return err
		}
		for i, h := range headings {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i+1, h)
		}
		return nil
	},
}

var slidesShowCmd = &cobra.Command{
	Use:   "show <number>",
	Short: "Show one slide",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}

		number, err := strconv.Atoi(args[0])
		if err != nil {
			return &application.ValidationError{Field: "number", Message: fmt.Sprintf("%q is not a slide number", args[0])}
		}

		slide, err := commands.NewShowSlideCommand(number).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if f != format.Text {
			return format.Encode(out, f, format.SlideDocFor(number, slide))
		}

		fmt.Fprintf(out, "Slide %d of %d\n\n", number, application.TotalSlides)
		if rawFlag {
			fmt.Fprint(out, slide.Markdown())
			return nil
		}

		ui := GetConfig().UI
		rendered, err := markdown.NewRenderer(ui.MarkdownStyle, ui.WordWrap).Render(slide.Markdown())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slidesCmd)
	slidesCmd.AddCommand(slidesListCmd)
	slidesCmd.AddCommand(slidesShowCmd)

	addOutputFlag(slidesShowCmd)
	slidesShowCmd.Flags().BoolVar(&rawFlag, "raw", false, "print markdown without terminal styling")
}
