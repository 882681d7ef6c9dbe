package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestVersionPopulated(t *testing.T) {
	if Version == "" {
		t.Error("Version should never be empty after init")
	}
	if Commit == "" {
		t.Error("Commit should never be empty after init")
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.Contains(full, Version) {
		t.Errorf("Full() = %q, expected it to contain %q", full, Version)
	}
	if !strings.Contains(full, "(commit: "+Commit+")") {
		t.Errorf("Full() = %q, expected commit suffix", full)
	}
}

func TestProduct(t *testing.T) {
	if got, want := Product(), "tinyhttpd/"+Version; got != want {
		t.Errorf("Product() = %q, want %q", got, want)
	}
}

func TestApplyBuildSettings(t *testing.T) {
	origVersion, origCommit := Version, Commit
	defer func() { Version, Commit = origVersion, origCommit }()

	Version, Commit = "", ""
	applyBuildSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-10-16T12:00:00Z"},
	})

	if Commit != "0123456-dirty" {
		t.Errorf("Commit = %q, want %q", Commit, "0123456-dirty")
	}
	if Version != "dev-20261016" {
		t.Errorf("Version = %q, want %q", Version, "dev-20261016")
	}
}

func TestApplyBuildSettings_KeepsLdflags(t *testing.T) {
	origVersion, origCommit := Version, Commit
	defer func() { Version, Commit = origVersion, origCommit }()

	Version, Commit = "v1.0.0", "abc1234"
	applyBuildSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "fffffffffff"},
		{Key: "vcs.time", Value: "2026-10-16T12:00:00Z"},
	})

	if Version != "v1.0.0" || Commit != "abc1234" {
		t.Errorf("ldflags values overwritten: %s %s", Version, Commit)
	}
}
