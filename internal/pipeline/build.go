package pipeline

import (
	"context"
	"strings"

	"subcast/internal/subtitles"
	"subcast/internal/timeline"
)

// BuildRequest describes one timeline-to-subtitles run.
type BuildRequest struct {
	TimelinePath string
	// Title names the episode; defaults to the timeline file name.
	Title string
	// AudioPath, when set, is probed to sanity-check the synthesized timeline.
	AudioPath string
	// SRTOnly suppresses the styled output file.
	SRTOnly bool
}

// Build runs the full pipeline over a timeline JSON file: load, synthesize
// timing for untimed utterances, split and wrap into cues, and serialize into
// the episode output directory.
func (p *Pipeline) Build(ctx context.Context, req BuildRequest) (Result, error) {
	roles := rolesFromConfig(p.cfg)
	utterances, err := timeline.LoadJSONFile(req.TimelinePath, roles)
	if err != nil {
		return Result{}, err
	}
	p.logger.Info("timeline loaded", "path", req.TimelinePath, "utterances", len(utterances))

	timeline.Synthesize(utterances, timingFromConfig(p.cfg))

	doc, err := subtitles.Build(utterances, layoutFromConfig(p.cfg))
	if err != nil {
		return Result{}, err
	}

	title := resolveTitle(req.Title, req.TimelinePath)
	res := Result{
		Title:    title,
		Slug:     slugFor(title),
		CueCount: len(doc.Cues),
	}
	if n := len(doc.Cues); n > 0 {
		res.DurationSeconds = doc.Cues[n-1].End
	}

	if strings.TrimSpace(req.AudioPath) != "" {
		if d := p.checkAudioDuration(ctx, req.AudioPath, res.DurationSeconds); d > 0 {
			res.DurationSeconds = d
		}
	}

	dir, lock, err := p.episodeDir(res.Slug)
	if err != nil {
		return Result{}, err
	}
	defer lock.Unlock()
	res.OutputDir = dir

	res.SRTPath, res.ASSPath, err = p.writeOutputs(doc, dir, req.SRTOnly)
	if err != nil {
		return Result{}, err
	}

	p.record(ctx, res, "timeline")
	p.logger.Info("episode built", "slug", res.Slug, "cues", res.CueCount, "output", dir)
	return res, nil
}
