// Package segment computes per character properties of logical text:
// scripts, line and word break opportunities, and bidirectional levels.
//
// All functions work on rune slices indexed by character, the unit of the
// logical model.
package segment
