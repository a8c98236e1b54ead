// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/modalities/modalities/internal/testutil"
	"github.com/modalities/modalities/pkg/types"
)

func TestLoadOptions_Validate_AllEmpty(t *testing.T) {
	t.Parallel()
	if err := (LoadOptions{}).Validate(); err != nil {
		t.Errorf("empty LoadOptions should be valid, got error: %v", err)
	}
}

func TestLoadOptions_Validate_AllValid(t *testing.T) {
	t.Parallel()
	opts := LoadOptions{
		ConfigFilePath: "/tmp/config.cue",
		ConfigDirPath:  "/tmp/modality",
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("LoadOptions with valid paths should be valid, got error: %v", err)
	}
}

func TestLoadOptions_Validate_InvalidConfigFilePath(t *testing.T) {
	t.Parallel()
	opts := LoadOptions{ConfigFilePath: types.FilesystemPath("   ")}
	err := opts.Validate()
	if err == nil {
		t.Fatal("LoadOptions with whitespace-only ConfigFilePath should be invalid")
	}
	if !errors.Is(err, ErrInvalidLoadOptions) {
		t.Errorf("error should wrap ErrInvalidLoadOptions, got: %v", err)
	}

	var loadErr *InvalidLoadOptionsError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error should be *InvalidLoadOptionsError, got: %T", err)
	}
	if len(loadErr.FieldErrors) != 1 {
		t.Errorf("expected 1 field error, got %d", len(loadErr.FieldErrors))
	}
	if !errors.Is(loadErr.FieldErrors[0], types.ErrInvalidFilesystemPath) {
		t.Errorf("field error should wrap ErrInvalidFilesystemPath, got: %v", loadErr.FieldErrors[0])
	}
}

func TestLoadOptions_Validate_MultipleInvalid(t *testing.T) {
	t.Parallel()
	opts := LoadOptions{
		ConfigFilePath: types.FilesystemPath(" "),
		ConfigDirPath:  types.FilesystemPath("\t"),
	}
	err := opts.Validate()

	var loadErr *InvalidLoadOptionsError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error should be *InvalidLoadOptionsError, got: %T", err)
	}
	if len(loadErr.FieldErrors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(loadErr.FieldErrors))
	}
	if got, want := err.Error(), "invalid load options: 2 field errors"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestProviderLoad_RejectsInvalidOptions(t *testing.T) {
	t.Parallel()
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: "  "})
	if !errors.Is(err, ErrInvalidLoadOptions) {
		t.Errorf("Load() error = %v, want ErrInvalidLoadOptions", err)
	}
}

func TestProviderLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), `
default_modalities: ["video", "audio"]
output: format: "json"
`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: types.FilesystemPath(dir)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != OutputFormatJSON {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, OutputFormatJSON)
	}
	if len(cfg.DefaultModalities) != 2 {
		t.Errorf("DefaultModalities = %v, want two entries", cfg.DefaultModalities)
	}
}
