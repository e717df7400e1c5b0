// Package videofix provides a Go library for checking media files against
// format-compliance targets and fixing the ones that fail.
//
// Videofix inspects files with ffprobe, classifies the container, video
// codec, audio codec, and pixel format against per-dimension allow/reject
// rules, and remediates non-compliant files with a minimal ffmpeg transcode
// that stream-copies every dimension that already complies.
//
// Basic usage:
//
//	checker, err := videofix.New(videofix.Target{
//	    Name:      "standard",
//	    Container: videofix.Allow("matroska", "mp4"),
//	    Video:     videofix.Allow("h264", "hevc"),
//	    Audio:     videofix.Allow("aac", "opus"),
//	    Default:   videofix.DefaultFormat{Video: "libx264", Audio: "aac"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := checker.Check(ctx, "movie.mkv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%s compliant: %t\n", result.Path, result.Compliant)
package videofix

import (
	"context"
	"fmt"

	"videofix/internal/config"
	"videofix/internal/discovery"
	"videofix/internal/processing"
	"videofix/internal/reporter"
	"videofix/internal/validation"
)

// Rule is a per-dimension allow or reject list.
type Rule = validation.Rule

// Allow builds a rule that passes only the listed values.
func Allow(values ...string) Rule {
	return validation.Allow(values...)
}

// Reject builds a rule that passes everything except the listed values.
func Reject(values ...string) Rule {
	return validation.Reject(values...)
}

// DefaultFormat is the remediation target for non-compliant dimensions.
type DefaultFormat struct {
	Video  string
	Audio  string
	PixFmt string
}

// Target binds format rules to their remediation defaults. A zero Rule
// disables checking for its dimension, so unset dimensions always pass.
type Target struct {
	Name      string
	Container Rule
	Video     Rule
	Audio     Rule
	PixFmt    Rule
	Default   DefaultFormat
}

// Result is the outcome for a single checked file.
type Result struct {
	Path      string
	Compliant bool
	// ContainerOkay and friends break the verdict down per dimension.
	ContainerOkay bool
	VideoOkay     bool
	AudioOkay     bool
	PixFmtOkay    bool
	// Fixed reports whether a remediation transcode ran and succeeded.
	Fixed bool
}

// Checker is the main entry point for compliance checking.
type Checker struct {
	target config.Target
}

// New creates a Checker for the given target.
func New(target Target) (*Checker, error) {
	if target.Name == "" {
		return nil, fmt.Errorf("target name must not be empty")
	}
	return &Checker{
		target: config.Target{
			Name: target.Name,
			Spec: validation.FormatSpec{
				Container: orDisabled(target.Container),
				Video:     orDisabled(target.Video),
				Audio:     orDisabled(target.Audio),
				PixFmt:    orDisabled(target.PixFmt),
			},
			Default: config.DefaultFormat{
				Video:  target.Default.Video,
				Audio:  target.Default.Audio,
				PixFmt: target.Default.PixFmt,
			},
		},
	}, nil
}

// orDisabled turns the zero Rule into an empty reject list, which passes
// every value. An empty allow list would reject everything instead.
func orDisabled(r Rule) Rule {
	if r.Kind == validation.RuleAllow && len(r.Values) == 0 {
		return validation.Reject()
	}
	return r
}

// Check inspects a single file without modifying it.
func (c *Checker) Check(ctx context.Context, path string) (*Result, error) {
	return c.run(ctx, path, false)
}

// Fix inspects a single file and remediates it when non-compliant. The
// remediated output is written next to the source with a fixed.mkv suffix.
func (c *Checker) Fix(ctx context.Context, path string) (*Result, error) {
	return c.run(ctx, path, true)
}

func (c *Checker) run(ctx context.Context, path string, fix bool) (*Result, error) {
	results, err := processing.ProcessFiles(ctx, []string{path}, processing.Options{
		Target: c.target,
		Fix:    fix,
	}, reporter.NullReporter{})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no files were checked")
	}

	r := results[0]
	if r.Err != nil {
		return nil, r.Err
	}
	return &Result{
		Path:          r.Path,
		Compliant:     r.Validation.IsValid(),
		ContainerOkay: r.Validation.ContainerOkay,
		VideoOkay:     r.Validation.VideoOkay,
		AudioOkay:     r.Validation.AudioOkay,
		PixFmtOkay:    r.Validation.PixFmtOkay,
		Fixed:         r.Remediated,
	}, nil
}

// FindMedia lists the media files directly inside a directory, sorted by
// filename. Passing a file path returns that file.
func FindMedia(path string) ([]string, error) {
	return discovery.SelectFiles(path)
}
