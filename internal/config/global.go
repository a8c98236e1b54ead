// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride, when set, is returned by ConfigDir instead of the
// platform location of the modality config directory.
var configDirOverride string

// OverrideConfigDir makes ConfigDir return dir until restore is called.
// Tests use it so a developer's own config.cue never leaks into results.
//
//	t.Cleanup(config.OverrideConfigDir(t.TempDir()))
func OverrideConfigDir(dir string) (restore func()) {
	prev := configDirOverride
	configDirOverride = dir
	return func() { configDirOverride = prev }
}
