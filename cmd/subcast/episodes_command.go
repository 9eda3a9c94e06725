package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"subcast/internal/episode"
	"subcast/internal/pipeline"
)

func newEpisodesCommand(ctx *commandContext) *cobra.Command {
	var slug string

	cmd := &cobra.Command{
		Use:   "episodes",
		Short: "List processed episodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.ensure()
			if err != nil {
				return err
			}

			store, err := episode.Open(cmd.Context(), filepath.Join(cfg.Paths.OutputDir, pipeline.LedgerFileName))
			if err != nil {
				return err
			}
			defer store.Close()

			var records []episode.Record
			if slug != "" {
				records, err = store.FindBySlug(cmd.Context(), slug)
			} else {
				records, err = store.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No episodes recorded")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.CreatedAt.Local().Format("2006-01-02 15:04"),
					rec.Title,
					rec.Source,
					strconv.Itoa(rec.CueCount),
					formatDuration(rec.DurationSeconds),
					rec.OutputDir,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Date", "Title", "Source", "Cues", "Duration", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "Only show runs for one episode slug")
	return cmd
}

func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return d.String()
}
