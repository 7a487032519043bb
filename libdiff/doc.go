// Package libdiff computes differences between texts and between
// document trees.
//
// [Unified] renders a line diff of two texts with surrounding context,
// [Nodes] lists the changes that turn one tree into another.
package libdiff
