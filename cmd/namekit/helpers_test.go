// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/invowk/namekit/internal/config"
)

// staticConfig is a ConfigProvider returning a fixed configuration.
type staticConfig struct {
	cfg *config.Config
	err error
}

func (s staticConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.cfg == nil {
		return config.DefaultConfig(), nil
	}
	cfg := *s.cfg
	return &cfg, nil
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the CLI in-process with the given configuration.
func execute(t *testing.T, provider ConfigProvider, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{Config: provider, Stdout: &stdout, Stderr: &stderr})
	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// run executes with default configuration and fails the test on error.
func run(t *testing.T, args ...string) string {
	t.Helper()
	res := execute(t, staticConfig{}, args...)
	if res.err != nil {
		t.Fatalf("namekit %v: %v\nstderr: %s", args, res.err, res.stderr)
	}
	return res.stdout
}

// exitCode returns the ExitError code of err, or 0 for nil and -1 for
// other errors.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(*ExitError); ok {
		return ee.Code
	}
	return -1
}
