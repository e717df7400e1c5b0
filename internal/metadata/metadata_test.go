package metadata

import (
	"math"
	"strings"
	"testing"

	"videofix/internal/errors"
	"videofix/internal/ffprobe"
)

func videoStream(index int, codec, pixFmt string) ffprobe.Stream {
	return ffprobe.Stream{Index: index, CodecType: "video", CodecName: codec, PixFmt: pixFmt}
}

func audioStream(index int, codec string, channels int) ffprobe.Stream {
	return ffprobe.Stream{Index: index, CodecType: "audio", CodecName: codec, Channels: channels}
}

func TestFromProbe_Valid(t *testing.T) {
	probe := &ffprobe.Probe{
		Format: ffprobe.Format{
			FormatName: "matroska,webm",
			Duration:   "5400.480000",
		},
		Streams: []ffprobe.Stream{
			videoStream(0, "h264", "yuv420p"),
			audioStream(1, "aac", 2),
		},
	}

	meta, err := FromProbe("/media/movie.mkv", probe)
	if err != nil {
		t.Fatalf("FromProbe() error = %v", err)
	}

	if meta.Container != "matroska" {
		t.Errorf("Container = %q, want %q (text before first comma)", meta.Container, "matroska")
	}
	if meta.Video.Codec != "h264" {
		t.Errorf("Video.Codec = %q, want %q", meta.Video.Codec, "h264")
	}
	if meta.Video.PixFmt != "yuv420p" {
		t.Errorf("Video.PixFmt = %q, want %q", meta.Video.PixFmt, "yuv420p")
	}
	if meta.Audio.Codec != "aac" {
		t.Errorf("Audio.Codec = %q, want %q", meta.Audio.Codec, "aac")
	}
	if meta.Audio.Channels != 2 {
		t.Errorf("Audio.Channels = %d, want 2", meta.Audio.Channels)
	}
	if meta.Duration == nil {
		t.Fatal("Duration = nil, want minutes value")
	}
	if math.Abs(*meta.Duration-90.008) > 0.001 {
		t.Errorf("Duration = %v min, want ~90.008", *meta.Duration)
	}
	if math.Abs(meta.DurationSecs()-5400.48) > 0.001 {
		t.Errorf("DurationSecs() = %v, want ~5400.48", meta.DurationSecs())
	}
}

func TestFromProbe_ContainerWithoutComma(t *testing.T) {
	probe := &ffprobe.Probe{
		Format: ffprobe.Format{FormatName: "avi"},
		Streams: []ffprobe.Stream{
			videoStream(0, "mpeg4", "yuv420p"),
			audioStream(1, "mp3", 2),
		},
	}

	meta, err := FromProbe("/media/old.avi", probe)
	if err != nil {
		t.Fatalf("FromProbe() error = %v", err)
	}
	if meta.Container != "avi" {
		t.Errorf("Container = %q, want %q", meta.Container, "avi")
	}
	if meta.Duration != nil {
		t.Errorf("Duration = %v, want nil when ffprobe reports none", *meta.Duration)
	}
	if meta.DurationSecs() != 0 {
		t.Errorf("DurationSecs() = %v, want 0 when unknown", meta.DurationSecs())
	}
}

func TestFromProbe_StreamCountViolations(t *testing.T) {
	tests := []struct {
		name    string
		streams []ffprobe.Stream
		wantMsg string
	}{
		{
			name:    "no video stream",
			streams: []ffprobe.Stream{audioStream(0, "aac", 2)},
			wantMsg: "no video stream found in /media/x.mkv",
		},
		{
			name: "two video streams",
			streams: []ffprobe.Stream{
				videoStream(0, "h264", "yuv420p"),
				videoStream(1, "mjpeg", "yuvj420p"),
				audioStream(2, "aac", 2),
			},
			wantMsg: "more than one video stream in /media/x.mkv",
		},
		{
			name:    "no audio stream",
			streams: []ffprobe.Stream{videoStream(0, "h264", "yuv420p")},
			wantMsg: "no audio stream found in /media/x.mkv",
		},
		{
			name: "two audio streams",
			streams: []ffprobe.Stream{
				videoStream(0, "h264", "yuv420p"),
				audioStream(1, "aac", 2),
				audioStream(2, "ac3", 6),
			},
			wantMsg: "more than one audio stream in /media/x.mkv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &ffprobe.Probe{
				Format:  ffprobe.Format{FormatName: "matroska,webm"},
				Streams: tt.streams,
			}
			_, err := FromProbe("/media/x.mkv", probe)
			if err == nil {
				t.Fatal("FromProbe() should fail")
			}
			if !errors.IsKind(err, errors.KindStream) {
				t.Errorf("error kind = %v, want KindStream", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestFromProbe_MissingStreamFields(t *testing.T) {
	tests := []struct {
		name    string
		streams []ffprobe.Stream
		wantMsg string
	}{
		{
			name: "video missing codec",
			streams: []ffprobe.Stream{
				{Index: 0, CodecType: "video", PixFmt: "yuv420p"},
				audioStream(1, "aac", 2),
			},
			wantMsg: "no codec found for stream 0",
		},
		{
			name: "video missing pix_fmt",
			streams: []ffprobe.Stream{
				{Index: 0, CodecType: "video", CodecName: "h264"},
				audioStream(1, "aac", 2),
			},
			wantMsg: "no pix_fmt found for stream 0",
		},
		{
			name: "audio missing codec",
			streams: []ffprobe.Stream{
				videoStream(0, "h264", "yuv420p"),
				{Index: 1, CodecType: "audio", Channels: 2},
			},
			wantMsg: "no codec found for stream 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &ffprobe.Probe{
				Format:  ffprobe.Format{FormatName: "matroska"},
				Streams: tt.streams,
			}
			_, err := FromProbe("/media/x.mkv", probe)
			if err == nil {
				t.Fatal("FromProbe() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
