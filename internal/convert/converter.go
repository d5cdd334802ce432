package convert

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/gofrs/flock"

	"subgrid/internal/audit"
	"subgrid/internal/fileutil"
	"subgrid/internal/history"
	"subgrid/internal/logging"
	"subgrid/internal/media/ffprobe"
	"subgrid/internal/services"
	"subgrid/internal/srt"
	"subgrid/internal/textgrid"
	"subgrid/internal/timeline"
)

// DurationProber reports a media file's duration in seconds. The production
// implementation shells out to ffprobe; tests substitute a fake.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Recorder persists a conversion run. *history.Store satisfies it.
type Recorder interface {
	Add(ctx context.Context, rec history.Record) (history.Record, error)
}

// FFprobeProber probes duration via the ffprobe wrapper.
type FFprobeProber struct {
	Binary  string
	Timeout time.Duration
}

// Duration implements DurationProber.
func (p FFprobeProber) Duration(ctx context.Context, path string) (float64, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	return ffprobe.Duration(ctx, p.Binary, path)
}

// Request describes one conversion run.
type Request struct {
	SRTPath      string
	MediaPath    string
	TextGridPath string
	CSVPath      string

	Diarize        bool
	ConvertNumbers bool
	// Speaker overrides the tier label used when Diarize is false.
	Speaker string
}

// Result summarizes a completed run.
type Result struct {
	RunID         string
	MediaDuration float64
	SpeakerCount  int
	IntervalCount int
	ChangeCount   int
	CSVWritten    bool
}

// Converter runs conversions. The recorder is optional; a nil recorder
// disables history.
type Converter struct {
	prober   DurationProber
	recorder Recorder
	logger   *slog.Logger
}

// New builds a Converter. A nil logger is replaced with a no-op logger.
func New(prober DurationProber, recorder Recorder, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Converter{prober: prober, recorder: recorder, logger: logger}
}

// Run executes the pipeline. Probe and I/O failures are fatal; malformed
// subtitle blocks are skipped inside the parser without failing the run.
func (c *Converter) Run(ctx context.Context, req Request) (Result, error) {
	if req.SRTPath == "" || req.MediaPath == "" || req.TextGridPath == "" || req.CSVPath == "" {
		return Result{}, services.Wrap(services.ErrValidation, "convert", "request", "all four paths are required", nil)
	}

	// Serialize writers of the same output so concurrent runs cannot
	// interleave partial TextGrids.
	lock := flock.New(req.TextGridPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, "convert", "lock output", req.TextGridPath, err)
	}
	if !locked {
		return Result{}, services.Wrap(services.ErrValidation, "convert", "lock output", "another run is writing "+req.TextGridPath, nil)
	}
	defer func() { _ = lock.Unlock() }()

	duration, err := c.prober.Duration(ctx, req.MediaPath)
	if err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, "convert", "probe media duration", req.MediaPath, err)
	}

	content, err := fileutil.ReadText(req.SRTPath)
	if err != nil {
		marker := services.ErrExternalTool
		if errors.Is(err, fs.ErrNotExist) {
			marker = services.ErrNotFound
		}
		return Result{}, services.Wrap(marker, "convert", "read srt", req.SRTPath, err)
	}

	tiers, changes := srt.Parse(content, duration, srt.Options{
		Diarize:        req.Diarize,
		ConvertNumbers: req.ConvertNumbers,
		Speaker:        req.Speaker,
	})
	filled := timeline.FillSilence(tiers, duration)

	if err := textgrid.WriteFile(req.TextGridPath, filled, duration); err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, "convert", "write textgrid", req.TextGridPath, err)
	}

	result := Result{
		MediaDuration: duration,
		SpeakerCount:  filled.Len(),
		ChangeCount:   len(changes),
	}
	for _, speaker := range filled.Speakers() {
		result.IntervalCount += len(filled.Intervals(speaker))
	}

	c.logger.Info("textgrid written",
		logging.String("path", req.TextGridPath),
		logging.Int("tiers", result.SpeakerCount),
		logging.Int("intervals", result.IntervalCount),
		logging.Float64("duration_seconds", duration),
	)

	if len(changes) == 0 {
		c.logger.Info("no text changes to record; skipping csv", logging.String("path", req.CSVPath))
	} else {
		if err := audit.WriteFile(req.CSVPath, changes); err != nil {
			return Result{}, services.Wrap(services.ErrExternalTool, "convert", "write csv", req.CSVPath, err)
		}
		result.CSVWritten = true
		c.logger.Info("change log written",
			logging.String("path", req.CSVPath),
			logging.Int("changes", len(changes)),
		)
	}

	if c.recorder != nil {
		rec, err := c.recorder.Add(ctx, history.Record{
			SRTPath:        req.SRTPath,
			MediaPath:      req.MediaPath,
			TextGridPath:   req.TextGridPath,
			CSVPath:        csvPathIfWritten(req.CSVPath, result.CSVWritten),
			MediaDuration:  duration,
			Diarize:        req.Diarize,
			ConvertNumbers: req.ConvertNumbers,
			SpeakerCount:   result.SpeakerCount,
			IntervalCount:  result.IntervalCount,
			ChangeCount:    result.ChangeCount,
		})
		if err != nil {
			// History is bookkeeping; the conversion itself succeeded.
			c.logger.Warn("history record failed", logging.Error(err))
		} else {
			result.RunID = rec.ID
		}
	}

	return result, nil
}

func csvPathIfWritten(path string, written bool) string {
	if written {
		return path
	}
	return ""
}
