package pipeline

import (
	"subcast/internal/attribution"
	"subcast/internal/config"
	"subcast/internal/subtitles"
	"subcast/internal/timeline"
)

func rolesFromConfig(cfg *config.Config) timeline.RoleSet {
	return timeline.NewRoleSet(cfg.Speakers.HostName, cfg.Speakers.GuestName)
}

func timingFromConfig(cfg *config.Config) timeline.TimingOptions {
	return timeline.TimingOptions{
		CharsPerSecond: cfg.Timing.CharsPerSecond,
		MinDuration:    cfg.Timing.MinDuration,
		PauseStrong:    cfg.Timing.PauseStrong,
		PauseSoft:      cfg.Timing.PauseSoft,
		QuestionBoost:  cfg.Timing.QuestionBoost,
	}
}

func layoutFromConfig(cfg *config.Config) subtitles.Layout {
	return subtitles.Layout{
		MaxSegmentChars: cfg.Layout.MaxSegmentChars,
		MaxLineChars:    cfg.Layout.MaxLineChars,
		MaxLines:        cfg.Layout.MaxLines,
		MinSplitChars:   cfg.Layout.MinSplitChars,
		MinPartSeconds:  cfg.Layout.MinPartSeconds,
	}
}

func styleFromConfig(cfg *config.Config) subtitles.StyleSpec {
	return subtitles.StyleSpec{
		Font:       cfg.Style.Font,
		FontSize:   cfg.Style.FontSize,
		MarginV:    cfg.Style.MarginV,
		MarginLR:   cfg.Style.MarginLR,
		Outline:    cfg.Style.Outline,
		Shadow:     cfg.Style.Shadow,
		HostColor:  cfg.Speakers.HostColor,
		GuestColor: cfg.Speakers.GuestColor,
		UseColors:  cfg.Speakers.UseColors,
	}
}

func attributionFromConfig(cfg *config.Config) attribution.Options {
	return attribution.Options{NarratorWindowSeconds: cfg.Speakers.NarratorWindowSeconds}
}
