package types

import "time"

// MergeOutcome reports what the settings merge did.
type MergeOutcome string

const (
	// MergeApplied means the merged document differed and was (or, in
	// dry-run, would be) persisted.
	MergeApplied MergeOutcome = "applied"
	// MergeUnchanged means the merge produced no net change and the file
	// was left untouched.
	MergeUnchanged MergeOutcome = "unchanged"
)

// InstallResult accumulates what one install run did. It is created fresh
// per invocation and threaded through the settings merge and the copy
// engine; an asset is only ever counted once, as installed or as skipped.
type InstallResult struct {
	Target   string       `json:"target"`
	KitRoot  string       `json:"kitRoot"`
	AppName  string       `json:"appName"`
	DryRun   bool         `json:"dryRun"`
	Force    bool         `json:"force"`
	Settings MergeOutcome `json:"settings"`

	Installed      int      `json:"installed"`
	InstalledPaths []string `json:"installedPaths"`
	Skipped        int      `json:"skipped"`
	SkippedPaths   []string `json:"skippedPaths"`

	Timestamp time.Time `json:"timestamp"`
}

// NewInstallResult creates an empty result for one run against target.
func NewInstallResult(target, kitRoot string) *InstallResult {
	return &InstallResult{
		Target:    target,
		KitRoot:   kitRoot,
		Timestamp: time.Now(),
	}
}

// RecordInstalled counts one installed (or, in dry-run, would-be-installed)
// asset and remembers its relative path in discovery order.
func (r *InstallResult) RecordInstalled(relPath string) {
	r.Installed++
	r.InstalledPaths = append(r.InstalledPaths, relPath)
}

// RecordSkipped counts one skipped asset and remembers its relative path
// in discovery order.
func (r *InstallResult) RecordSkipped(relPath string) {
	r.Skipped++
	r.SkippedPaths = append(r.SkippedPaths, relPath)
}

// AssetState classifies one asset when comparing kit and target.
type AssetState string

const (
	StateMissing   AssetState = "missing"   // not present at the target
	StateInstalled AssetState = "installed" // present and byte-identical
	StateModified  AssetState = "modified"  // present with different content
)

// AssetStatus is one asset's comparison outcome for the status command.
type AssetStatus struct {
	RelPath string     `json:"relPath"`
	Group   string     `json:"group"`
	State   AssetState `json:"state"`
}

// StatusResult holds the result of the 'status' command.
type StatusResult struct {
	Target    string        `json:"target"`
	KitRoot   string        `json:"kitRoot"`
	Settings  MergeOutcome  `json:"settings"`
	Assets    []AssetStatus `json:"assets"`
	Timestamp time.Time     `json:"timestamp"`
}

// Counts aggregates the status table for summary lines.
func (s *StatusResult) Counts() (missing, installed, modified int) {
	for _, a := range s.Assets {
		switch a.State {
		case StateMissing:
			missing++
		case StateInstalled:
			installed++
		case StateModified:
			modified++
		}
	}
	return missing, installed, modified
}

// ListResult holds the result of the 'list' command.
type ListResult struct {
	Kit KitInfo `json:"kit"`
}

// GenConfigResult holds the result of the 'gen-config' command.
type GenConfigResult struct {
	// Content is the default configuration in TOML form.
	Content string `json:"content"`
	// Path is where the config was (or would be) written.
	Path string `json:"path,omitempty"`
	// Written reports whether the file was created. False with a non-empty
	// Path means the file already existed and was left alone.
	Written bool `json:"written"`
	// DryRun marks a write that was previewed, not performed.
	DryRun bool `json:"dryRun,omitempty"`
}
