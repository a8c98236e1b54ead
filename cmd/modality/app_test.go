// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/modalities/modalities/internal/config"
)

type stubProvider struct {
	cfg *config.Config
	err error
}

func (s stubProvider) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.cfg == nil {
		return config.DefaultConfig(), nil
	}
	cfg := *s.cfg
	return &cfg, nil
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the command tree with args against provider.
func runCLI(t *testing.T, provider ConfigProvider, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{Config: provider, Stdout: &stdout, Stderr: &stderr})
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SilenceErrors = true

	err := root.ExecuteContext(context.Background())
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestNewAppDefaults(t *testing.T) {
	t.Parallel()

	app := NewApp(Dependencies{})
	if app.Config == nil || app.Logger == nil || app.stdout == nil || app.stderr == nil {
		t.Fatalf("NewApp() left nil dependencies: %+v", app)
	}
	if got := app.outputFormat(); got != config.OutputFormatText {
		t.Errorf("outputFormat() = %q before config load, want text", got)
	}
	if got := app.colorScheme(); got != "auto" {
		t.Errorf("colorScheme() = %q before config load, want auto", got)
	}
}

func TestInitConfig_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	res := runCLI(t, stubProvider{err: config.ErrInvalidConfig}, "names")
	if res.err != nil {
		t.Fatalf("names returned error: %v", res.err)
	}
	if res.stdout != "text\n" {
		t.Errorf("stdout = %q, want default set", res.stdout)
	}
	if !bytes.Contains([]byte(res.stderr), []byte("using default configuration")) {
		t.Errorf("stderr = %q, want fallback warning", res.stderr)
	}
}

func TestInitConfig_ExplicitConfigFailureIsFatal(t *testing.T) {
	t.Parallel()

	res := runCLI(t, stubProvider{err: config.ErrInvalidConfig}, "--config", "broken.cue", "names")
	if res.err == nil {
		t.Fatal("expected error when --config cannot be loaded")
	}
}

func TestInitConfig_UsesConfiguredFormat(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.Format = config.OutputFormatJSON
	res := runCLI(t, stubProvider{cfg: cfg}, "names", "audio")
	if res.err != nil {
		t.Fatalf("names returned error: %v", res.err)
	}
	if want := "{\n  \"names\": [\n    \"audio\"\n  ]\n}\n"; res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}

	// The flag wins over the config file.
	res = runCLI(t, stubProvider{cfg: cfg}, "--format", "text", "names", "audio")
	if res.stdout != "audio\n" {
		t.Errorf("stdout = %q, want text output", res.stdout)
	}
}

func TestInitConfig_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	res := runCLI(t, stubProvider{}, "--format", "yaml", "list")
	if res.err == nil {
		t.Fatal("expected error for --format yaml")
	}
	if got := exitCodeFor(res.err); got != 2 {
		t.Errorf("exitCodeFor() = %d, want 2", got)
	}
}

func TestInitConfig_VerboseFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.UI.Verbose = true
	res := runCLI(t, stubProvider{cfg: cfg}, "names", "video")
	if res.err != nil {
		t.Fatalf("names returned error: %v", res.err)
	}
	if !bytes.Contains([]byte(res.stderr), []byte("parsed names")) {
		t.Errorf("stderr = %q, want debug log", res.stderr)
	}
}
