package bvhtree

// Sentinel-free by design: every public Tree operation reports failure via
// a documented return value (false, nil, or an empty slice) rather than an
// error, per spec.md §7 — "Error taxonomy... all are reported, none are
// thrown". This file exists, and is named errors.go, to keep the same
// per-concern file layout the teacher uses (builder/errors.go,
// core/types.go's sentinel block) even though this package's "errors" are
// all return-value shaped instead of error-typed.
