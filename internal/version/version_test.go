package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	oldCommit, oldBuild := Commit, BuildTime
	t.Cleanup(func() { Commit, BuildTime = oldCommit, oldBuild })

	Commit = "0123456789abcdef"
	BuildTime = "2026-01-19T10:00:00Z"

	got := String()
	if !strings.Contains(got, "commit: 0123456") || strings.Contains(got, "0123456789") {
		t.Errorf("expected short commit, got %q", got)
	}
	if !strings.HasPrefix(got, "storefinder dev") {
		t.Errorf("unexpected prefix: %q", got)
	}
}
