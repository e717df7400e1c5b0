package ffmpeg

import (
	"bufio"
	"io"
	"os/exec"
	"regexp"
	"strings"

	"videofix/internal/errors"
	"videofix/internal/remediation"
	"videofix/internal/util"

	"context"
)

// Progress represents transcode progress information.
type Progress struct {
	ElapsedSecs float64
	// Percent is 0 when the source duration is unknown.
	Percent float32
}

// ProgressCallback is called with progress updates during a transcode.
type ProgressCallback func(Progress)

var timeRegex = regexp.MustCompile(`time=(\d{2}:\d{2}:\d{2}\.?\d*)`)

// Run executes ffmpeg for the given directive, waiting for completion.
// durationSecs is the source duration used to derive percentages; pass 0
// when unknown. The callback may be nil.
func Run(ctx context.Context, d *remediation.Directive, durationSecs float64, callback ProgressCallback) error {
	args := BuildArgs(d)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errors.NewCommandStartError("ffmpeg", err)
	}

	if err := cmd.Start(); err != nil {
		return errors.NewCommandStartError("ffmpeg", err)
	}

	var stderrBuilder strings.Builder
	parseProgress(stderr, &stderrBuilder, durationSecs, callback)

	err = cmd.Wait()
	if err != nil {
		if ctx.Err() != nil {
			return errors.NewCancelledError()
		}
		return errors.WrapExecError("ffmpeg", err, lastStderrLine(stderrBuilder.String()))
	}
	return nil
}

// parseProgress reads ffmpeg stderr and emits progress updates. Progress
// lines are terminated with \r, so this reads byte-wise rather than by line.
func parseProgress(stderr io.Reader, stderrBuilder *strings.Builder, durationSecs float64, callback ProgressCallback) {
	reader := bufio.NewReader(stderr)
	var lineBuf strings.Builder

	for {
		b, err := reader.ReadByte()
		if err != nil {
			break
		}

		stderrBuilder.WriteByte(b)

		if b == '\r' || b == '\n' {
			line := lineBuf.String()
			lineBuf.Reset()

			if callback != nil && strings.Contains(line, "time=") {
				if progress := parseProgressLine(line, durationSecs); progress != nil {
					callback(*progress)
				}
			}
		} else {
			lineBuf.WriteByte(b)
		}
	}
}

// parseProgressLine extracts progress from an ffmpeg stats line.
func parseProgressLine(line string, durationSecs float64) *Progress {
	matches := timeRegex.FindStringSubmatch(line)
	if len(matches) < 2 {
		return nil
	}
	elapsed, ok := util.ParseFFmpegTime(matches[1])
	if !ok {
		return nil
	}

	p := &Progress{ElapsedSecs: elapsed}
	if durationSecs > 0 {
		percent := float32(elapsed / durationSecs * 100)
		if percent > 100 {
			percent = 100
		}
		p.Percent = percent
	}
	return p
}

// lastStderrLine returns the last non-empty stderr line for error context.
func lastStderrLine(stderr string) string {
	lines := strings.FieldsFunc(stderr, func(r rune) bool { return r == '\n' || r == '\r' })
	for i := len(lines) - 1; i >= 0; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
