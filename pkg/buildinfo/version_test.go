package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFrom(t *testing.T) {
	v, c, d := Version, Commit, Date
	defer func() { Version, Commit, Date = v, c, d }()

	Version, Commit, Date = "dev", "none", "unknown"
	fillFrom(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})
	if Version != "v0.3.0" || Commit != "0123456789ab" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("got %s %s %s", Version, Commit, Date)
	}
}

func TestFillFromKeepsLdflags(t *testing.T) {
	v, c, d := Version, Commit, Date
	defer func() { Version, Commit, Date = v, c, d }()

	Version, Commit, Date = "v1.0.0", "abc", "today"
	fillFrom(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fff"}},
	})
	if Version != "v1.0.0" || Commit != "abc" || Date != "today" {
		t.Errorf("ldflags values overwritten: %s %s %s", Version, Commit, Date)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template(), "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q", String())
	}
}
