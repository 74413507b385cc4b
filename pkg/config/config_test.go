package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Height != 900 || cfg.BgOpacity != nil || cfg.Letters || cfg.Format != "svg" {
		t.Errorf("Default() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() invalid: %v", err)
	}
}

func TestParse(t *testing.T) {
	data := `
theme = "dark"
angle = 90
letters = true
bg_opacity = 0.8

[cache]
backend = "redis"
redis_addr = "localhost:6379"
ttl = "24h"

[server]
timeout = "5s"
`
	cfg, err := Parse([]byte(data), Default())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Theme != "dark" || cfg.Angle != 90 || !cfg.Letters {
		t.Errorf("top-level keys not applied: %+v", cfg)
	}
	if cfg.BgOpacity == nil || *cfg.BgOpacity != 0.8 {
		t.Errorf("bg_opacity = %v", cfg.BgOpacity)
	}
	if cfg.Height != 900 || cfg.Format != "svg" {
		t.Errorf("absent keys lost their defaults: %+v", cfg)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.TTL.Duration != 24*time.Hour {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Server.Timeout.Duration != 5*time.Second || cfg.Server.Addr != ":8080" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if opts := cfg.CacheOptions(); opts.RedisAddr != "localhost:6379" {
		t.Errorf("CacheOptions() = %+v", opts)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `theme = `, "parse config"},
		{"unknown key", `colour = "red"`, "unknown key"},
		{"bad duration", "[cache]\nttl = \"soon\"", "parse config"},
		{"bad backend", "[cache]\nbackend = \"memcached\"", "cache.backend"},
		{"redis without addr", "[cache]\nbackend = \"redis\"", "redis_addr"},
		{"bad height", `height = 0`, "height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), Default())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = "bright"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Theme != "bright" {
		t.Errorf("Theme = %q", cfg.Theme)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("explicit missing file should fail")
	}
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil || d.Duration != 90*time.Second {
		t.Errorf("UnmarshalText = %v, %v", d, err)
	}
	out, _ := d.MarshalText()
	if string(out) != "1m30s" {
		t.Errorf("MarshalText = %s", out)
	}
}
