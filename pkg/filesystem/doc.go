// Package filesystem provides filesystem implementations for clawkit.
//
// This package contains implementations of the types.FS interface.
// Production code uses the OS filesystem; tests exercise the same
// implementation against temporary directories.
package filesystem
