package pipeline

import (
	"context"

	"subcast/internal/attribution"
	"subcast/internal/subtitles"
	"subcast/internal/timeline"
)

// ColorizeRequest describes a speaker-attribution run over existing captions.
type ColorizeRequest struct {
	SRTPath        string
	TranscriptPath string
	// Title names the episode; defaults to the caption file name.
	Title string
}

// Colorize reads a caption file whose speakers are unknown, aligns it with a
// speaker-tagged transcript, and writes a styled per-speaker subtitle file
// alongside a re-serialized caption file.
func (p *Pipeline) Colorize(ctx context.Context, req ColorizeRequest) (Result, error) {
	roles := rolesFromConfig(p.cfg)

	captions, err := subtitles.ParseSRTFile(req.SRTPath)
	if err != nil {
		return Result{}, err
	}
	transcript, err := timeline.ParseTranscriptFile(req.TranscriptPath, roles)
	if err != nil {
		return Result{}, err
	}
	p.logger.Info("inputs loaded", "captions", len(captions), "transcript_lines", len(transcript))

	resolver := attribution.NewResolver(roles, attributionFromConfig(p.cfg))
	resolver.Resolve(captions, transcript)

	doc, err := subtitles.Build(captions, layoutFromConfig(p.cfg))
	if err != nil {
		return Result{}, err
	}

	title := resolveTitle(req.Title, req.SRTPath)
	res := Result{
		Title:    title,
		Slug:     slugFor(title),
		CueCount: len(doc.Cues),
	}
	if n := len(doc.Cues); n > 0 {
		res.DurationSeconds = doc.Cues[n-1].End
	}

	dir, lock, err := p.episodeDir(res.Slug)
	if err != nil {
		return Result{}, err
	}
	defer lock.Unlock()
	res.OutputDir = dir

	res.SRTPath, res.ASSPath, err = p.writeOutputs(doc, dir, false)
	if err != nil {
		return Result{}, err
	}

	p.record(ctx, res, "srt")
	p.logger.Info("episode colorized", "slug", res.Slug, "cues", res.CueCount, "output", dir)
	return res, nil
}
