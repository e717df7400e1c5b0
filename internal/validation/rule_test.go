package validation

import "testing"

func TestRuleCompliant(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		value string
		want  bool
	}{
		{"allow member", Allow("h264", "h265"), "h264", true},
		{"allow non-member", Allow("h264", "h265"), "vp9", false},
		{"reject member", Reject("h264", "h265"), "h264", false},
		{"reject non-member", Reject("h264", "h265"), "vp9", true},
		{"empty allow rejects everything", Allow(), "h264", false},
		{"empty allow rejects empty value", Allow(), "", false},
		{"empty reject accepts everything", Reject(), "h264", true},
		{"empty reject accepts empty value", Reject(), "", true},
		{"allow is case-sensitive", Allow("h264"), "H264", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Compliant(tt.value); got != tt.want {
				t.Errorf("Compliant(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRuleString(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{Allow("h264", "h265"), "allow [h264 h265]"},
		{Reject("wmv3"), "reject [wmv3]"},
		{Reject(), "reject []"},
	}

	for _, tt := range tests {
		if got := tt.rule.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
