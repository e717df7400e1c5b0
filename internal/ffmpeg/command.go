// Package ffmpeg invokes the external transcoder for remediation directives.
package ffmpeg

import "videofix/internal/remediation"

// BuildArgs translates a remediation directive into ffmpeg arguments.
// -stats keeps progress lines on stderr at warning log level.
func BuildArgs(d *remediation.Directive) []string {
	args := []string{
		"-loglevel", "warning",
		"-stats",
		"-i", d.Source,
		"-c:v", d.VideoCodec,
		"-c:a", d.AudioCodec,
	}
	if d.PixFmt != "" {
		args = append(args, "-pix_fmt", d.PixFmt)
	}
	return append(args, d.Output)
}
