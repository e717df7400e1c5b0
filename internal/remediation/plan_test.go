package remediation

import (
	"os"
	"path/filepath"
	"testing"

	"videofix/internal/config"
	"videofix/internal/errors"
	"videofix/internal/validation"
)

var testDefault = config.DefaultFormat{
	Video:  "h264",
	Audio:  "aac",
	PixFmt: "yuv420p",
}

func sourcePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "movie.avi")
}

func TestPlanCopyVersusConvert(t *testing.T) {
	tests := []struct {
		name      string
		val       validation.Validation
		wantVideo string
		wantAudio string
		wantPix   string
	}{
		{
			name:      "all compliant",
			val:       validation.Validation{ContainerOkay: true, VideoOkay: true, AudioOkay: true, PixFmtOkay: true},
			wantVideo: "copy",
			wantAudio: "copy",
			wantPix:   "",
		},
		{
			name:      "video non-compliant",
			val:       validation.Validation{ContainerOkay: true, VideoOkay: false, AudioOkay: true, PixFmtOkay: true},
			wantVideo: "h264",
			wantAudio: "copy",
			wantPix:   "",
		},
		{
			name:      "audio non-compliant",
			val:       validation.Validation{ContainerOkay: true, VideoOkay: true, AudioOkay: false, PixFmtOkay: true},
			wantVideo: "copy",
			wantAudio: "aac",
			wantPix:   "",
		},
		{
			name:      "pix_fmt non-compliant",
			val:       validation.Validation{ContainerOkay: true, VideoOkay: true, AudioOkay: true, PixFmtOkay: false},
			wantVideo: "copy",
			wantAudio: "copy",
			wantPix:   "yuv420p",
		},
		{
			name:      "everything non-compliant",
			val:       validation.Validation{},
			wantVideo: "h264",
			wantAudio: "aac",
			wantPix:   "yuv420p",
		},
		{
			// The container has no directive of its own: writing the fixed
			// output container corrects it as a side effect.
			name:      "only container non-compliant",
			val:       validation.Validation{ContainerOkay: false, VideoOkay: true, AudioOkay: true, PixFmtOkay: true},
			wantVideo: "copy",
			wantAudio: "copy",
			wantPix:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := sourcePath(t)
			d, err := Plan(tt.val, testDefault, source)
			if err != nil {
				t.Fatalf("Plan() error = %v", err)
			}
			if d.VideoCodec != tt.wantVideo {
				t.Errorf("VideoCodec = %q, want %q", d.VideoCodec, tt.wantVideo)
			}
			if d.AudioCodec != tt.wantAudio {
				t.Errorf("AudioCodec = %q, want %q", d.AudioCodec, tt.wantAudio)
			}
			if d.PixFmt != tt.wantPix {
				t.Errorf("PixFmt = %q, want %q", d.PixFmt, tt.wantPix)
			}
			if d.Source != source {
				t.Errorf("Source = %q, want %q", d.Source, source)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"/media/movie.avi", "/media/movie.fixed.mkv"},
		{"/media/movie.mkv", "/media/movie.fixed.mkv"},
		{"/media/show.s01e02.wmv", "/media/show.s01e02.fixed.mkv"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.source); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestPlanFailsOnExistingOutput(t *testing.T) {
	source := sourcePath(t)
	out := OutputPath(source)
	if err := os.WriteFile(out, []byte("previous run"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Plan(validation.Validation{}, testDefault, source)
	if err == nil {
		t.Fatal("Plan() should fail when the output path exists")
	}
	if !errors.IsPathCollision(err) {
		t.Errorf("error = %v, want a path collision error", err)
	}
}
