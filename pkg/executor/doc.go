// Package executor provides the file mutation engine for clawkit.
//
// All writes to a target project go through here as synthfs pipelines, so
// a failed multi-step mutation rolls back instead of leaving partial
// state. Dry-run mode is honored at this layer: methods log what they
// would do and return without touching the filesystem.
package executor
