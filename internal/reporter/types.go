// Package reporter provides result reporting interfaces and implementations.
package reporter

import "videofix/internal/validation"

// BatchStartInfo describes the batch before the first file is checked.
type BatchStartInfo struct {
	TotalFiles int
	Target     string
	Fix        bool
}

// FileReport describes one checked file and its compliance outcome.
type FileReport struct {
	Path       string
	Container  string
	VideoCodec string
	AudioCodec string
	PixFmt     string
	// DurationMins is nil when ffprobe reported no duration.
	DurationMins *float64
	Validation   validation.Validation
}

// RemediationStart describes a transcode about to run.
type RemediationStart struct {
	Source       string
	Output       string
	VideoCodec   string
	AudioCodec   string
	PixFmt       string
	DurationSecs float64
}

// ProgressSnapshot contains transcode progress information.
type ProgressSnapshot struct {
	Percent     float32
	ElapsedSecs float64
}

// RemediationOutcome describes a finished transcode.
type RemediationOutcome struct {
	Output string
}

// BatchSummary totals a finished batch.
type BatchSummary struct {
	TotalFiles      int
	CompliantCount  int
	RemediatedCount int
	FailedCount     int
}
