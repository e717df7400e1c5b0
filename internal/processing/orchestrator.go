// Package processing orchestrates check and fix runs over a batch of files.
package processing

import (
	"context"
	"fmt"

	"videofix/internal/config"
	"videofix/internal/ffmpeg"
	"videofix/internal/history"
	"videofix/internal/logging"
	"videofix/internal/metadata"
	"videofix/internal/remediation"
	"videofix/internal/reporter"
	"videofix/internal/util"
	"videofix/internal/validation"
)

// Prober extracts metadata for one file. It exists so tests can substitute
// the external ffprobe invocation.
type Prober func(path string) (*metadata.FileMetadata, error)

// Transcoder executes one remediation transcode. It exists so tests can
// substitute the external ffmpeg invocation.
type Transcoder func(ctx context.Context, d *remediation.Directive, durationSecs float64, callback ffmpeg.ProgressCallback) error

// Options configures a processing run.
type Options struct {
	Target config.Target
	Fix    bool

	// History records scan outcomes when non-nil.
	History *history.Store
	RunID   string

	Logger *logging.Logger

	// Prober and Transcoder default to the real external tools when nil.
	Prober     Prober
	Transcoder Transcoder
}

// FileResult is the outcome for a single file in a batch.
type FileResult struct {
	Path       string
	Metadata   *metadata.FileMetadata
	Validation validation.Validation
	Remediated bool
	Err        error
}

// ProcessFiles checks every file against the target and, when fixing is
// enabled, remediates the non-compliant ones. A failure on one file does
// not stop the batch; it is reported and recorded in that file's result.
func ProcessFiles(ctx context.Context, files []string, opts Options, rep reporter.Reporter) ([]FileResult, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}
	probe := opts.Prober
	if probe == nil {
		probe = metadata.Probe
	}
	transcode := opts.Transcoder
	if transcode == nil {
		transcode = ffmpeg.Run
	}

	rep.BatchStarted(reporter.BatchStartInfo{
		TotalFiles: len(files),
		Target:     opts.Target.Name,
		Fix:        opts.Fix,
	})

	results := make([]FileResult, 0, len(files))
	for _, path := range files {
		if ctx.Err() != nil {
			rep.Warning(fmt.Sprintf("run cancelled: %v", ctx.Err()))
			return results, ctx.Err()
		}

		result := processFile(ctx, path, opts, probe, transcode, rep)
		results = append(results, result)
	}

	rep.BatchComplete(summarize(results))
	return results, nil
}

func processFile(ctx context.Context, path string, opts Options, probe Prober, transcode Transcoder, rep reporter.Reporter) FileResult {
	result := FileResult{Path: path}

	opts.Logger.Debug("checking %s", path)

	meta, err := probe(path)
	if err != nil {
		opts.Logger.Error("metadata extraction failed for %s: %v", path, err)
		rep.FileFailed(path, err)
		result.Err = err
		return result
	}
	result.Metadata = meta

	val := validation.Evaluate(meta, opts.Target.Spec)
	result.Validation = val

	rep.FileChecked(reporter.FileReport{
		Path:         path,
		Container:    meta.Container,
		VideoCodec:   meta.Video.Codec,
		AudioCodec:   meta.Audio.Codec,
		PixFmt:       meta.Video.PixFmt,
		DurationMins: meta.Duration,
		Validation:   val,
	})
	opts.Logger.Info("%s: container=%s video=%s audio=%s pix_fmt=%s valid=%t",
		util.GetFilename(path), meta.Container, meta.Video.Codec, meta.Audio.Codec, meta.Video.PixFmt, val.IsValid())

	if opts.Fix && !val.IsValid() {
		if err := remediate(ctx, path, meta, val, opts, transcode, rep); err != nil {
			opts.Logger.Error("remediation failed for %s: %v", path, err)
			rep.FileFailed(path, err)
			result.Err = err
		} else {
			result.Remediated = true
		}
	}

	recordHistory(ctx, opts, result)
	return result
}

func remediate(ctx context.Context, path string, meta *metadata.FileMetadata, val validation.Validation, opts Options, transcode Transcoder, rep reporter.Reporter) error {
	directive, err := remediation.Plan(val, opts.Target.Default, path)
	if err != nil {
		return err
	}

	durationSecs := meta.DurationSecs()

	rep.RemediationStarted(reporter.RemediationStart{
		Source:       directive.Source,
		Output:       directive.Output,
		VideoCodec:   directive.VideoCodec,
		AudioCodec:   directive.AudioCodec,
		PixFmt:       directive.PixFmt,
		DurationSecs: durationSecs,
	})
	opts.Logger.Info("fixing %s -> %s (video=%s audio=%s pix_fmt=%q)",
		util.GetFilename(path), util.GetFilename(directive.Output),
		directive.VideoCodec, directive.AudioCodec, directive.PixFmt)

	err = transcode(ctx, directive, durationSecs, func(p ffmpeg.Progress) {
		rep.RemediationProgress(reporter.ProgressSnapshot{
			Percent:     p.Percent,
			ElapsedSecs: p.ElapsedSecs,
		})
	})
	if err != nil {
		return err
	}

	rep.RemediationComplete(reporter.RemediationOutcome{Output: directive.Output})
	return nil
}

func recordHistory(ctx context.Context, opts Options, result FileResult) {
	if opts.History == nil || result.Metadata == nil {
		return
	}

	meta := result.Metadata
	err := opts.History.Add(ctx, history.Entry{
		RunID:      opts.RunID,
		Path:       result.Path,
		Target:     opts.Target.Name,
		Container:  meta.Container,
		VideoCodec: meta.Video.Codec,
		AudioCodec: meta.Audio.Codec,
		PixFmt:     meta.Video.PixFmt,
		Validation: result.Validation,
		Remediated: result.Remediated,
	})
	if err != nil {
		opts.Logger.Warn("could not record scan history for %s: %v", result.Path, err)
	}
}

func summarize(results []FileResult) reporter.BatchSummary {
	summary := reporter.BatchSummary{TotalFiles: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.FailedCount++
		case r.Validation.IsValid():
			summary.CompliantCount++
		}
		if r.Remediated {
			summary.RemediatedCount++
		}
	}
	return summary
}
