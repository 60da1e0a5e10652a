// Package testutil provides utilities for testing clawkit components.
//
// Tests work against real temporary directories (t.TempDir) rather than an
// in-memory filesystem: the operations under test are plain whole-file
// reads and writes, and exercising the same osFS code path production uses
// keeps the tests honest.
//
// Key helpers:
//   - CreateFile / CreateDir: fixture setup inside a temp dir
//   - AssertFileContent / AssertNoFile: post-run filesystem checks
//   - CalculateFileChecksum: change detection for no-op assertions
//
// Value-level assertions use testify; this package only covers the
// filesystem side.
package testutil
