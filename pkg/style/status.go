package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/clawkit/pkg/types"
	"github.com/pterm/pterm"
)

// Status classifies one asset line for display purposes.
type Status string

const (
	StatusInstalled Status = "installed" // written this run, or present and current
	StatusSkipped   Status = "skipped"   // left alone because the target already has it
	StatusPlanned   Status = "planned"   // would be written (dry-run, or absent from target)
	StatusModified  Status = "modified"  // target content differs from the kit copy
	StatusError     Status = "error"     // operation on this asset failed
)

// statusMessages holds the default wording per status. A non-empty
// AssetLine.Note replaces the default.
var statusMessages = map[Status]string{
	StatusInstalled: "installed",
	StatusSkipped:   "already present, left alone",
	StatusPlanned:   "would be installed",
	StatusModified:  "differs from the kit copy",
	StatusError:     "failed",
}

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusInstalled:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusSkipped:
		return pterm.NewStyle(pterm.FgGray)
	case StatusPlanned:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusModified:
		return pterm.NewStyle(pterm.FgCyan)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusForState maps an asset comparison state to a display status.
func StatusForState(state types.AssetState) Status {
	switch state {
	case types.StateInstalled:
		return StatusInstalled
	case types.StateMissing:
		return StatusPlanned
	case types.StateModified:
		return StatusModified
	default:
		return StatusError
	}
}

// AssetLine is one rendered row: the asset's group, its path relative to
// the target directory, and what happened (or would happen) to it.
type AssetLine struct {
	Group   string // hooks, settings, agents, ...
	RelPath string // path under the target directory
	Status  Status
	Note    string // optional wording override
}

// GroupLabel derives the display group for a target-relative path. Assets
// in subdirectories belong to the group named by the first path segment;
// bare files at the target root are hook scripts, except the settings file.
func GroupLabel(relPath string) string {
	if relPath == "settings.json" {
		return "settings"
	}
	if i := strings.IndexByte(relPath, '/'); i > 0 {
		return relPath[:i]
	}
	return "hooks"
}

// RenderAssetLine renders a single asset status line
func RenderAssetLine(al AssetLine) string {
	// Format group name with fixed width so paths line up
	group := fmt.Sprintf("%-13s", al.Group)
	styledGroup := StatusStyle(al.Status).Sprint(group)

	relPath := fmt.Sprintf("%-28s", al.RelPath)

	msg := al.Note
	if msg == "" {
		msg = statusMessages[al.Status]
	}

	return fmt.Sprintf("    %s : %s : %s", styledGroup, relPath, msg)
}

// RenderAssetLines renders one line per asset, in the given order.
func RenderAssetLines(lines []AssetLine) string {
	var b strings.Builder
	for i, al := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(RenderAssetLine(al))
	}
	return b.String()
}
