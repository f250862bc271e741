// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/namekit/internal/config"
)

func TestConfigShow(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Source = "/home/jo/.config/namekit/config.cue"
	cfg.SyntaxFiles = []config.SyntaxFilePath{"a.cue", "b.toml"}
	cfg.DefaultSyntax = "ldap"

	res := execute(t, staticConfig{cfg: cfg}, "config", "show")
	if res.err != nil {
		t.Fatalf("config show failed: %v", res.err)
	}
	for _, want := range []string{cfg.Source, "default_syntax: ldap", "syntax_files: a.cue, b.toml", "log.level: warn", "ui.verbose: false"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout does not contain %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigDump(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Log.Level = config.LogLevelDebug
	res := execute(t, staticConfig{cfg: cfg}, "config", "dump")
	if res.err != nil {
		t.Fatalf("config dump failed: %v", res.err)
	}
	if res.stdout != config.GenerateCUE(cfg) {
		t.Errorf("stdout = %q, want GenerateCUE output", res.stdout)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	// Not parallel: uses the package-level config directory override.
	dir := filepath.Join(t.TempDir(), "namekit")
	config.SetConfigDirOverride(dir)
	t.Cleanup(config.Reset)

	res := execute(t, staticConfig{}, "config", "path")
	want := filepath.Join(dir, "config.cue")
	if res.err != nil || strings.TrimSpace(res.stdout) != want {
		t.Fatalf("config path = %q, %v; want %q", res.stdout, res.err, want)
	}

	res = execute(t, staticConfig{}, "config", "init")
	if res.err != nil || !strings.Contains(res.stdout, "Created "+want) {
		t.Fatalf("config init = %q, %v", res.stdout, res.err)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	res = execute(t, staticConfig{}, "config", "init")
	if res.err != nil || !strings.Contains(res.stdout, "already exists") {
		t.Errorf("second init = %q, %v", res.stdout, res.err)
	}

	res = execute(t, staticConfig{}, "config", "init", "--force")
	if res.err != nil || !strings.Contains(res.stdout, "Created") {
		t.Errorf("forced init = %q, %v", res.stdout, res.err)
	}
}
