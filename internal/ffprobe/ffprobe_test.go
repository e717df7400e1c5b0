package ffprobe

import (
	"os"
	"path/filepath"
	"testing"
)

// loadTestData loads a JSON fixture from the testdata directory.
func loadTestData(t *testing.T, filename string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", filename))
	if err != nil {
		t.Fatalf("failed to load test data %s: %v", filename, err)
	}
	return data
}

func TestParseOutput_TwoStreams(t *testing.T) {
	data := loadTestData(t, "movie_h264_aac.json")

	probe, err := parseOutput(data)
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}

	if probe.Format.FormatName != "matroska,webm" {
		t.Errorf("FormatName = %q, want %q", probe.Format.FormatName, "matroska,webm")
	}
	if probe.Format.Duration != "5400.480000" {
		t.Errorf("Duration = %q, want %q", probe.Format.Duration, "5400.480000")
	}
	if probe.Format.Filename != "/media/movie.mkv" {
		t.Errorf("Filename = %q, want %q", probe.Format.Filename, "/media/movie.mkv")
	}

	if len(probe.Streams) != 2 {
		t.Fatalf("len(Streams) = %d, want 2", len(probe.Streams))
	}

	video := probe.Streams[0]
	if video.CodecType != "video" {
		t.Errorf("video.CodecType = %q, want %q", video.CodecType, "video")
	}
	if video.CodecName != "h264" {
		t.Errorf("video.CodecName = %q, want %q", video.CodecName, "h264")
	}
	if video.PixFmt != "yuv420p" {
		t.Errorf("video.PixFmt = %q, want %q", video.PixFmt, "yuv420p")
	}

	audio := probe.Streams[1]
	if audio.CodecType != "audio" {
		t.Errorf("audio.CodecType = %q, want %q", audio.CodecType, "audio")
	}
	if audio.CodecName != "aac" {
		t.Errorf("audio.CodecName = %q, want %q", audio.CodecName, "aac")
	}
	if audio.Channels != 2 {
		t.Errorf("audio.Channels = %d, want 2", audio.Channels)
	}
}

func TestParseOutput_SingleStream(t *testing.T) {
	data := loadTestData(t, "clip_no_audio.json")

	probe, err := parseOutput(data)
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}

	if len(probe.Streams) != 1 {
		t.Fatalf("len(Streams) = %d, want 1", len(probe.Streams))
	}
	if probe.Streams[0].PixFmt != "yuv420p10le" {
		t.Errorf("PixFmt = %q, want %q", probe.Streams[0].PixFmt, "yuv420p10le")
	}
	if probe.Streams[0].Channels != 0 {
		t.Errorf("Channels = %d, want 0 for a video stream", probe.Streams[0].Channels)
	}
}

func TestParseOutput_Invalid(t *testing.T) {
	if _, err := parseOutput([]byte("not json")); err == nil {
		t.Error("parseOutput() should fail on malformed input")
	}
}
