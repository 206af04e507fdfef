// SPDX-License-Identifier: MIT
// Package: bvh3/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (carried from the teacher's builder/errors.go):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Build MUST NOT panic at runtime.
package builder

import "errors"

// ErrInvalidStrategy indicates a Strategy value outside {SAH, Median,
// Equal}. An empty items slice is NOT an error: Build(nil, ...) returns a
// valid empty tree, per spec.md §7's empty-input policy.
var ErrInvalidStrategy = errors.New("builder: invalid strategy")
