// Package types defines the core types and interfaces used throughout clawkit.
// This includes the FS filesystem seam, kit and asset group descriptions, and
// the result structures commands return for reporting.
package types
