package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit and BuildDate can be empty (optional)
	_ = GitCommit
	_ = BuildDate
}

func TestBanner(t *testing.T) {
	origVersion := Version
	origNoColor := color.NoColor
	t.Cleanup(func() {
		Version = origVersion
		color.NoColor = origNoColor
	})
	color.NoColor = true

	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.2.3-rc.1+build.123", "1.2.3-rc.1+build.123"},
		{"nightly", "nightly"},
		{"1.2", "1.2"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := Banner(); got != tt.want {
			t.Errorf("Banner() for %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestBannerColored(t *testing.T) {
	origVersion := Version
	origNoColor := color.NoColor
	t.Cleanup(func() {
		Version = origVersion
		color.NoColor = origNoColor
	})
	color.NoColor = false

	Version = "1.2.3"
	got := Banner()
	if got == "1.2.3" {
		t.Fatal("expected ANSI escapes in colored banner")
	}
	if want := versionMajorColor.Sprint("1"); len(got) < len(want) || got[:len(want)] != want {
		t.Fatalf("banner %q does not start with colored major %q", got, want)
	}
}

// BenchmarkBanner benchmarks rendering the version banner
func BenchmarkBanner(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Banner()
	}
}
