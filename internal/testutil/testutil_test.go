// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustSetenvRestores(t *testing.T) {
	const key = "MODALITY_TESTUTIL_PROBE"
	restoreUnset := MustUnsetenv(t, key)
	defer restoreUnset()

	cleanup := MustSetenv(t, key, "video")
	if got := os.Getenv(key); got != "video" {
		t.Fatalf("Getenv() = %q, want %q", got, "video")
	}
	cleanup()

	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s still set after cleanup", key)
	}
}

func TestMustChdirRestores(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	restore := MustChdir(t, dir)
	now, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(now) != filepath.Base(dir) {
		t.Errorf("Getwd() = %q, want base %q", now, filepath.Base(dir))
	}
	restore()

	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if after != before {
		t.Errorf("Getwd() after restore = %q, want %q", after, before)
	}
}

func TestMustWriteFileCreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "config.cue")
	if got := MustWriteFile(t, path, "ui: verbose: true\n"); got != path {
		t.Errorf("MustWriteFile() = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "ui: verbose: true\n" {
		t.Errorf("content = %q", data)
	}
}
