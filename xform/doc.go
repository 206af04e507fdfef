// Package xform provides the minimal 3D math collaborator the bvh3 module
// leans on: a 3-vector, a row-major 4x4 affine matrix, and the operations
// geometry, ray, and bvhtree need from them (elementwise set/add/subtract/
// scale, componentwise min/max, dot, length, transformPoint/transformNormal,
// invert).
//
// This package exists because bvh3 ships standalone: the surrounding
// retrieval pack's geometry-flavored dependencies (go-gl/mathgl, golang/geo)
// come bundled with a renderer or a different box/ray shape than bvhtree
// needs end-to-end (see SPEC_FULL.md, DOMAIN STACK), so a thin in-module
// adapter is grown instead, in the teacher's Dense-matrix style: one type
// per file, Stage 1/2 validation comments, sentinel errors for malformed
// input, never a panic on caller-supplied data.
package xform
