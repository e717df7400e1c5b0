package util

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDuration formats seconds as HH:MM:SS.
func FormatDuration(seconds float64) string {
	if seconds < 0 || seconds != seconds { // NaN check
		return "??:??:??"
	}

	totalSecs := int64(seconds)
	hours := totalSecs / 3600
	minutes := (totalSecs % 3600) / 60
	secs := totalSecs % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// FormatMinutes formats a duration in minutes as a short human string.
func FormatMinutes(minutes float64) string {
	if minutes < 0 || minutes != minutes {
		return "?"
	}
	return fmt.Sprintf("%.0f min", minutes)
}

// ParseFFmpegTime parses an FFmpeg time string (HH:MM:SS.MS) to seconds.
func ParseFFmpegTime(timeStr string) (float64, bool) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 3 {
		return 0, false
	}

	hours, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, false
	}

	minutes, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, false
	}

	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, false
	}

	return hours*3600 + minutes*60 + seconds, true
}
