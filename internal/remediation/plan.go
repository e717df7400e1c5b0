// Package remediation derives the minimal transcode directive for a
// non-compliant file: compliant dimensions are stream-copied, the rest are
// converted to the target's defaults.
package remediation

import (
	"videofix/internal/config"
	"videofix/internal/errors"
	"videofix/internal/util"
	"videofix/internal/validation"
)

const (
	// StreamCopy is the codec directive for dimensions that need no re-encode.
	StreamCopy = "copy"

	// OutputSuffix replaces the source extension on remediated files. The
	// trailing mkv fixes container mismatches as a side effect: the output
	// is always written as matroska, so the container dimension has no
	// directive of its own.
	OutputSuffix = "fixed.mkv"
)

// Directive describes one remediation transcode for the external transcoder.
// It is a pure parameter set; the planner never reads file bytes.
type Directive struct {
	Source string
	Output string
	// VideoCodec and AudioCodec are either StreamCopy or a codec name.
	VideoCodec string
	AudioCodec string
	// PixFmt is set only when the pixel format must change; empty means the
	// transcoder leaves it alone (stream-copy preserves it).
	PixFmt string
}

// OutputPath derives the remediated output path for a source file.
func OutputPath(source string) string {
	return util.ReplaceExtension(source, OutputSuffix)
}

// Plan derives the transcode directive for a validated file. It fails before
// any external invocation when the derived output path already exists.
func Plan(val validation.Validation, def config.DefaultFormat, source string) (*Directive, error) {
	out := OutputPath(source)
	if util.FileExists(out) {
		return nil, errors.NewPathCollisionError(out)
	}

	d := &Directive{
		Source:     source,
		Output:     out,
		VideoCodec: StreamCopy,
		AudioCodec: StreamCopy,
	}
	if !val.VideoOkay {
		d.VideoCodec = def.Video
	}
	if !val.AudioOkay {
		d.AudioCodec = def.Audio
	}
	if !val.PixFmtOkay {
		d.PixFmt = def.PixFmt
	}
	return d, nil
}
