package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subcast/internal/pipeline"
)

func newColorizeCommand(ctx *commandContext) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "colorize <captions.srt> <transcript.txt>",
		Short: "Assign speakers to existing captions using the transcript",
		Long: `Colorize aligns a caption file with the speaker-tagged episode
transcript, attributes each caption to the host, guest, or narrator, and
writes a styled subtitle file with per-speaker colours.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensure()
			if err != nil {
				return err
			}

			res, err := pipeline.New(cfg, logger).Colorize(cmd.Context(), pipeline.ColorizeRequest{
				SRTPath:        args[0],
				TranscriptPath: args[1],
				Title:          title,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Attributed %d cues for %q\n", res.CueCount, res.Title)
			fmt.Fprintf(out, "  %s\n", res.ASSPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Episode title (defaults to the caption file name)")
	return cmd
}
