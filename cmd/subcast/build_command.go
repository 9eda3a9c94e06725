package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subcast/internal/pipeline"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var title string
	var audioPath string
	var srtOnly bool

	cmd := &cobra.Command{
		Use:   "build <timeline.json>",
		Short: "Build subtitle files from an episode timeline",
		Long: `Build reads a timeline JSON file, synthesizes caption timing for
utterances without measured spans, and writes captions.srt plus a styled
captions.ass into the per-episode output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensure()
			if err != nil {
				return err
			}

			res, err := pipeline.New(cfg, logger).Build(cmd.Context(), pipeline.BuildRequest{
				TimelinePath: args[0],
				Title:        title,
				AudioPath:    audioPath,
				SRTOnly:      srtOnly,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Built %d cues for %q\n", res.CueCount, res.Title)
			fmt.Fprintf(out, "  %s\n", res.SRTPath)
			if res.ASSPath != "" {
				fmt.Fprintf(out, "  %s\n", res.ASSPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Episode title (defaults to the timeline file name)")
	cmd.Flags().StringVarP(&audioPath, "audio", "a", "", "Episode audio file, probed to sanity-check the timeline")
	cmd.Flags().BoolVar(&srtOnly, "srt-only", false, "Skip the styled .ass output")
	return cmd
}
