// Package ffprobe runs ffprobe and parses its JSON output.
package ffprobe

import (
	"encoding/json"
	"os/exec"

	"videofix/internal/errors"
)

// Probe is the parsed ffprobe output for one file.
type Probe struct {
	Format  Format   `json:"format"`
	Streams []Stream `json:"streams"`
}

// Format contains container-level information.
type Format struct {
	Filename   string `json:"filename"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
}

// Stream contains the per-stream fields videofix inspects.
type Stream struct {
	Index     int    `json:"index"`
	CodecType string `json:"codec_type"`
	CodecName string `json:"codec_name"`
	PixFmt    string `json:"pix_fmt"`
	Channels  int    `json:"channels"`
}

// Run executes ffprobe against the given path and returns the parsed output.
func Run(path string) (*Probe, error) {
	cmd := exec.Command("ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, errors.NewProbeError(path, err)
	}

	probe, err := parseOutput(output)
	if err != nil {
		return nil, errors.NewProbeError(path, err)
	}
	return probe, nil
}

// parseOutput decodes raw ffprobe JSON.
func parseOutput(data []byte) (*Probe, error) {
	var probe Probe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	return &probe, nil
}
