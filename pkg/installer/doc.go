// Package installer copies kit assets into a project's config directory.
//
// The rules per file: never touch what the target already has unless
// forced, count what would change in dry-run mode, and stop at the first
// real failure. Skipped files are recorded by relative path so the run
// result can name them.
package installer
