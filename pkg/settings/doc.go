// Package settings merges the kit's settings.json into a project's
// settings file without disturbing what the user already has.
//
// The merge manages exactly three keys: hooks (event keys added, values
// opaque), statusLine (set if absent), and the clawkit entry in env.
// Everything else in the target file, including fields clawkit knows
// nothing about, round-trips untouched. The merge runs before any file
// copy so a broken settings file stops an install before it changes the
// project.
package settings
