package version

import "testing"

func TestFormatVersion(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	defer func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild }()

	tests := []struct {
		version, commit, build string
		want                   string
	}{
		{"1.2.3", "", "", "1.2.3 (development)"},
		{"1.2.3", "abc1234", "", "1.2.3 (commit: abc1234)"},
		{"1.2.3", "abc1234", "2026-10-19T10:20:30Z", "1.2.3 (commit: abc1234, built at: 2026-10-19T10:20:30Z)"},
		{"", "", "", "0.0.0-dev (development)"},
	}
	for _, tt := range tests {
		Version, Commit, BuildTime = tt.version, tt.commit, tt.build
		if got := FormatVersion(); got != tt.want {
			t.Fatalf("FormatVersion() = %q, want %q", got, tt.want)
		}
	}
}
