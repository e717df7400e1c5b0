package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// JSONReporter outputs NDJSON events, one per line, suitable for
// consumption by other tools.
type JSONReporter struct {
	writer             io.Writer
	mu                 sync.Mutex
	lastProgressBucket int
}

// NewJSONReporter creates a new JSON reporter that writes to stdout.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{
		writer:             os.Stdout,
		lastProgressBucket: -1,
	}
}

// NewJSONReporterWithWriter creates a JSON reporter with a custom writer.
func NewJSONReporterWithWriter(w io.Writer) *JSONReporter {
	return &JSONReporter{
		writer:             w,
		lastProgressBucket: -1,
	}
}

func (r *JSONReporter) timestamp() int64 {
	return time.Now().Unix()
}

func (r *JSONReporter) write(v map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.writer, string(data))
}

func (r *JSONReporter) BatchStarted(info BatchStartInfo) {
	r.write(map[string]interface{}{
		"type":        "batch_started",
		"total_files": info.TotalFiles,
		"target":      info.Target,
		"fix":         info.Fix,
		"timestamp":   r.timestamp(),
	})
}

func (r *JSONReporter) FileChecked(report FileReport) {
	event := map[string]interface{}{
		"type":           "file_checked",
		"path":           report.Path,
		"container":      report.Container,
		"video_codec":    report.VideoCodec,
		"audio_codec":    report.AudioCodec,
		"pix_fmt":        report.PixFmt,
		"container_okay": report.Validation.ContainerOkay,
		"video_okay":     report.Validation.VideoOkay,
		"audio_okay":     report.Validation.AudioOkay,
		"pix_fmt_okay":   report.Validation.PixFmtOkay,
		"valid":          report.Validation.IsValid(),
		"timestamp":      r.timestamp(),
	}
	if report.DurationMins != nil {
		event["duration_mins"] = *report.DurationMins
	}
	r.write(event)
}

func (r *JSONReporter) FileFailed(path string, err error) {
	r.write(map[string]interface{}{
		"type":      "file_failed",
		"path":      path,
		"error":     err.Error(),
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) RemediationStarted(start RemediationStart) {
	r.mu.Lock()
	r.lastProgressBucket = -1
	r.mu.Unlock()

	r.write(map[string]interface{}{
		"type":        "remediation_started",
		"source":      start.Source,
		"output":      start.Output,
		"video_codec": start.VideoCodec,
		"audio_codec": start.AudioCodec,
		"pix_fmt":     start.PixFmt,
		"timestamp":   r.timestamp(),
	})
}

func (r *JSONReporter) RemediationProgress(progress ProgressSnapshot) {
	// Emit at most one event per percent to keep the stream small.
	bucket := int(progress.Percent)

	r.mu.Lock()
	if bucket <= r.lastProgressBucket && progress.Percent < 100 {
		r.mu.Unlock()
		return
	}
	r.lastProgressBucket = bucket
	r.mu.Unlock()

	r.write(map[string]interface{}{
		"type":         "remediation_progress",
		"percent":      progress.Percent,
		"elapsed_secs": progress.ElapsedSecs,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) RemediationComplete(outcome RemediationOutcome) {
	r.write(map[string]interface{}{
		"type":      "remediation_complete",
		"output":    outcome.Output,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Warning(message string) {
	r.write(map[string]interface{}{
		"type":      "warning",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) BatchComplete(summary BatchSummary) {
	r.write(map[string]interface{}{
		"type":             "batch_complete",
		"total_files":      summary.TotalFiles,
		"compliant_count":  summary.CompliantCount,
		"remediated_count": summary.RemediatedCount,
		"failed_count":     summary.FailedCount,
		"timestamp":        r.timestamp(),
	})
}
