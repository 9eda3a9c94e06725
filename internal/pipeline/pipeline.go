package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"subcast/internal/config"
	"subcast/internal/episode"
	"subcast/internal/media/ffprobe"
	"subcast/internal/services"
	"subcast/internal/subtitles"
	"subcast/internal/textutil"
)

const (
	srtFileName  = "captions.srt"
	assFileName  = "captions.ass"
	lockFileName = ".subcast.lock"

	// LedgerFileName is the episode ledger database, kept at the root of the
	// output tree and shared by every episode directory.
	LedgerFileName = "subcast.db"
)

// Pipeline runs caption builds against one configuration.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
	probe  ffprobe.Runner
}

// New constructs a pipeline. A nil logger discards output; a nil probe runner
// shells out to ffprobe.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{cfg: cfg, logger: logger.With("component", "pipeline")}
}

// WithProbeRunner overrides how ffprobe is executed. Used by tests.
func (p *Pipeline) WithProbeRunner(runner ffprobe.Runner) *Pipeline {
	p.probe = runner
	return p
}

// Result describes the artifacts produced by one run.
type Result struct {
	Title           string
	Slug            string
	OutputDir       string
	SRTPath         string
	ASSPath         string
	CueCount        int
	DurationSeconds float64
}

// episodeDir resolves and creates the per-episode output directory and takes
// the run lock inside it. The caller must release the returned lock.
func (p *Pipeline) episodeDir(slug string) (string, *flock.Flock, error) {
	dir := filepath.Join(p.cfg.Paths.OutputDir, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return "", nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return "", nil, services.Wrap(services.ErrValidation, "pipeline", "lock",
			"another run is writing "+dir, nil)
	}
	return dir, lock, nil
}

// writeOutputs serializes the document into dir and returns the artifact
// paths. The styled file is skipped when srtOnly is set.
func (p *Pipeline) writeOutputs(doc *subtitles.Document, dir string, srtOnly bool) (string, string, error) {
	srtPath := filepath.Join(dir, srtFileName)
	if err := os.WriteFile(srtPath, []byte(subtitles.RenderSRT(doc)), 0o644); err != nil {
		return "", "", fmt.Errorf("write srt: %w", err)
	}

	var assPath string
	if !srtOnly {
		spec := styleFromConfig(p.cfg)
		assPath = filepath.Join(dir, assFileName)
		if err := os.WriteFile(assPath, []byte(subtitles.RenderASS(doc, spec)), 0o644); err != nil {
			return "", "", fmt.Errorf("write ass: %w", err)
		}
	}
	return srtPath, assPath, nil
}

// record appends the run to the episode ledger. Ledger failures do not fail
// the run; the subtitle files are already on disk.
func (p *Pipeline) record(ctx context.Context, res Result, source string) {
	store, err := episode.Open(ctx, filepath.Join(p.cfg.Paths.OutputDir, LedgerFileName))
	if err != nil {
		p.logger.Warn("ledger unavailable", "error", err)
		return
	}
	defer store.Close()

	_, err = store.Add(ctx, episode.Record{
		Title:           res.Title,
		Slug:            res.Slug,
		Source:          source,
		CueCount:        res.CueCount,
		DurationSeconds: res.DurationSeconds,
		OutputDir:       res.OutputDir,
	})
	if err != nil {
		p.logger.Warn("ledger write failed", "error", err)
	}
}

// checkAudioDuration probes the episode audio and warns when the caption
// timeline extends past the end of the recording.
func (p *Pipeline) checkAudioDuration(ctx context.Context, audioPath string, timelineEnd float64) float64 {
	duration, err := ffprobe.AudioDuration(ctx, p.probe, p.cfg.FFprobeBinary(), audioPath)
	if err != nil {
		p.logger.Warn("audio probe failed", "path", audioPath, "error", err)
		return 0
	}
	if timelineEnd > duration+1.0 {
		p.logger.Warn("caption timeline exceeds audio duration",
			"timeline_end", timelineEnd, "audio_duration", duration)
	}
	return duration
}

// resolveTitle derives the episode title, falling back to the input file
// name.
func resolveTitle(explicit, inputPath string) string {
	if t := strings.TrimSpace(explicit); t != "" {
		return t
	}
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// slugFor is the directory-safe form of a title.
func slugFor(title string) string {
	return textutil.Slugify(title)
}
