// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// They cover the hot paths of the modality CLI:
//   - name parsing and display formatting
//   - CUE modality documents and config loading
//   - the end-to-end command pipeline
//
// To generate a profile, run:
//
//	go test -run '^$' -bench . -cpuprofile default.pgo ./internal/benchmark
package benchmark
