// Package metadata builds validated file metadata from ffprobe output.
//
// A FileMetadata can only be constructed through FromProbe, which enforces
// the "exactly one video and one audio stream" contract. Files that violate
// it fail extraction instead of producing a partial record.
package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"videofix/internal/errors"
	"videofix/internal/ffprobe"
)

// VideoStream holds the essential attributes of the file's video stream.
type VideoStream struct {
	Codec  string
	PixFmt string
}

// AudioStream holds the essential attributes of the file's audio stream.
type AudioStream struct {
	Codec    string
	Channels int
}

// FileMetadata describes the observed format of one media file.
type FileMetadata struct {
	Path      string
	Container string
	// Duration is in minutes, informational only.
	Duration *float64
	Video    VideoStream
	Audio    AudioStream
}

// Probe runs ffprobe on the given path and builds FileMetadata from the result.
func Probe(path string) (*FileMetadata, error) {
	probe, err := ffprobe.Run(path)
	if err != nil {
		return nil, err
	}
	return FromProbe(path, probe)
}

// FromProbe constructs FileMetadata from parsed ffprobe output.
// It fails if the file does not have exactly one video and one audio stream,
// or if a required stream field is missing.
func FromProbe(path string, probe *ffprobe.Probe) (*FileMetadata, error) {
	video, err := findStream(path, probe, "video")
	if err != nil {
		return nil, err
	}
	audio, err := findStream(path, probe, "audio")
	if err != nil {
		return nil, err
	}

	if video.CodecName == "" {
		return nil, errors.NewStreamError(fmt.Sprintf("no codec found for stream %d in %s", video.Index, path))
	}
	if video.PixFmt == "" {
		return nil, errors.NewStreamError(fmt.Sprintf("no pix_fmt found for stream %d in %s", video.Index, path))
	}
	if audio.CodecName == "" {
		return nil, errors.NewStreamError(fmt.Sprintf("no codec found for stream %d in %s", audio.Index, path))
	}

	return &FileMetadata{
		Path:      path,
		Container: containerName(probe.Format.FormatName),
		Duration:  durationMinutes(probe.Format.Duration),
		Video: VideoStream{
			Codec:  video.CodecName,
			PixFmt: video.PixFmt,
		},
		Audio: AudioStream{
			Codec:    audio.CodecName,
			Channels: audio.Channels,
		},
	}, nil
}

// findStream returns the single stream of the given kind, failing when there
// are zero or more than one.
func findStream(path string, probe *ffprobe.Probe, kind string) (*ffprobe.Stream, error) {
	var found *ffprobe.Stream
	for i := range probe.Streams {
		if probe.Streams[i].CodecType != kind {
			continue
		}
		if found != nil {
			return nil, errors.NewStreamError(fmt.Sprintf("more than one %s stream in %s", kind, path))
		}
		found = &probe.Streams[i]
	}
	if found == nil {
		return nil, errors.NewStreamError(fmt.Sprintf("no %s stream found in %s", kind, path))
	}
	return found, nil
}

// containerName extracts the short container name: the text before the
// first comma of ffprobe's format_name ("matroska,webm" -> "matroska").
func containerName(formatName string) string {
	if idx := strings.IndexByte(formatName, ','); idx >= 0 {
		return formatName[:idx]
	}
	return formatName
}

// durationMinutes converts ffprobe's duration (seconds, as a string) to minutes.
func durationMinutes(raw string) *float64 {
	if raw == "" {
		return nil
	}
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	mins := secs / 60.0
	return &mins
}

// DurationSecs returns the file duration in seconds, or 0 when unknown.
func (m *FileMetadata) DurationSecs() float64 {
	if m.Duration == nil {
		return 0
	}
	return *m.Duration * 60.0
}
