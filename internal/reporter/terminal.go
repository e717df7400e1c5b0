package reporter

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"videofix/internal/util"
)

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu       sync.Mutex
	progress *progressbar.ProgressBar
	isTTY    bool

	cyan  *color.Color
	green *color.Color
	red   *color.Color
	bold  *color.Color
}

// NewTerminalReporter creates a new terminal reporter. Color and the
// progress bar are disabled when stdout is not a terminal.
func NewTerminalReporter() *TerminalReporter {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !isTTY {
		color.NoColor = true
	}
	return &TerminalReporter{
		isTTY: isTTY,
		cyan:  color.New(color.FgCyan, color.Bold),
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed, color.Bold),
		bold:  color.New(color.Bold),
	}
}

func (r *TerminalReporter) mark(okay bool) string {
	if okay {
		return r.green.Sprint("✓")
	}
	return r.red.Sprint("✗")
}

func (r *TerminalReporter) BatchStarted(info BatchStartInfo) {
	mode := "check"
	if info.Fix {
		mode = "check and fix"
	}
	fmt.Printf("Checking %d file(s) against target %q (%s)\n",
		info.TotalFiles, info.Target, mode)
}

func (r *TerminalReporter) FileChecked(report FileReport) {
	fmt.Println()
	_, _ = r.bold.Println(util.GetFilename(report.Path))

	duration := ""
	if report.DurationMins != nil {
		duration = "; " + util.FormatMinutes(*report.DurationMins)
	}

	v := report.Validation
	fmt.Printf("  %s %s; %s %s; %s %s; %s %s%s\n",
		report.AudioCodec, r.mark(v.AudioOkay),
		report.VideoCodec, r.mark(v.VideoOkay),
		report.Container, r.mark(v.ContainerOkay),
		report.PixFmt, r.mark(v.PixFmtOkay),
		duration,
	)
}

func (r *TerminalReporter) FileFailed(path string, err error) {
	fmt.Println()
	_, _ = r.bold.Println(util.GetFilename(path))
	_, _ = r.red.Fprintf(os.Stderr, "  ERROR %v\n", err)
}

func (r *TerminalReporter) RemediationStarted(start RemediationStart) {
	fmt.Printf("  Fixing -> %s (video %s, audio %s", util.GetFilename(start.Output),
		start.VideoCodec, start.AudioCodec)
	if start.PixFmt != "" {
		fmt.Printf(", pix_fmt %s", start.PixFmt)
	}
	fmt.Println(")")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = progressbar.NewOptions64(
		100,
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetWriter(r.progressWriter()),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Fixing [",
			BarEnd:        "]",
		}),
	)
}

// progressWriter suppresses the bar when output is not a terminal.
func (r *TerminalReporter) progressWriter() io.Writer {
	if r.isTTY {
		return os.Stderr
	}
	return io.Discard
}

func (r *TerminalReporter) RemediationProgress(progress ProgressSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.progress == nil {
		return
	}

	clamped := progress.Percent
	if clamped > 100 {
		clamped = 100
	}
	if clamped < 0 {
		clamped = 0
	}
	_ = r.progress.Set64(int64(clamped))
}

func (r *TerminalReporter) RemediationComplete(outcome RemediationOutcome) {
	r.finishProgress()
	fmt.Printf("  %s %s\n", r.green.Sprint("Fixed:"), outcome.Output)
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
}

func (r *TerminalReporter) Warning(message string) {
	r.finishProgress()
	_, _ = fmt.Fprintf(os.Stderr, "  WARNING %s\n", message)
}

func (r *TerminalReporter) BatchComplete(summary BatchSummary) {
	r.finishProgress()
	fmt.Println()
	_, _ = r.cyan.Println("SUMMARY")
	fmt.Printf("  %s\n", r.bold.Sprintf("%d file(s) checked", summary.TotalFiles))
	fmt.Printf("  Compliant: %s  Non-compliant: %s\n",
		r.green.Sprint(summary.CompliantCount),
		r.red.Sprint(summary.TotalFiles-summary.CompliantCount-summary.FailedCount))
	if summary.RemediatedCount > 0 {
		fmt.Printf("  Remediated: %d\n", summary.RemediatedCount)
	}
	if summary.FailedCount > 0 {
		fmt.Printf("  Failed: %s\n", r.red.Sprint(summary.FailedCount))
	}
}
