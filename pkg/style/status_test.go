package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/clawkit/pkg/types"
)

func TestRenderAssetLine(t *testing.T) {
	tests := []struct {
		name     string
		line     AssetLine
		contains []string
	}{
		{
			name: "hook installed",
			line: AssetLine{
				Group:   "hooks",
				RelPath: "bash_guard.py",
				Status:  StatusInstalled,
			},
			contains: []string{"hooks", "bash_guard.py", "installed"},
		},
		{
			name: "hook skipped",
			line: AssetLine{
				Group:   "hooks",
				RelPath: "bash_guard.py",
				Status:  StatusSkipped,
			},
			contains: []string{"hooks", "bash_guard.py", "already present, left alone"},
		},
		{
			name: "agent planned",
			line: AssetLine{
				Group:   "agents",
				RelPath: "agents/code-reviewer.md",
				Status:  StatusPlanned,
			},
			contains: []string{"agents", "agents/code-reviewer.md", "would be installed"},
		},
		{
			name: "modified util",
			line: AssetLine{
				Group:   "utils",
				RelPath: "utils/env_loader.py",
				Status:  StatusModified,
			},
			contains: []string{"utils", "utils/env_loader.py", "differs from the kit copy"},
		},
		{
			name: "settings merged with note",
			line: AssetLine{
				Group:   "settings",
				RelPath: "settings.json",
				Status:  StatusInstalled,
				Note:    "hooks merged into existing settings",
			},
			contains: []string{"settings", "settings.json", "hooks merged into existing settings"},
		},
		{
			name: "error status",
			line: AssetLine{
				Group:   "hooks",
				RelPath: "bash_guard.py",
				Status:  StatusError,
			},
			contains: []string{"hooks", "bash_guard.py", "failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderAssetLine(tt.line)
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("Expected output to contain %q, got %q", want, result)
				}
			}
		})
	}
}

func TestRenderAssetLines(t *testing.T) {
	lines := []AssetLine{
		{Group: "settings", RelPath: "settings.json", Status: StatusInstalled},
		{Group: "hooks", RelPath: "bash_guard.py", Status: StatusSkipped},
	}

	result := RenderAssetLines(lines)
	parts := strings.Split(result, "\n")
	if len(parts) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(parts), result)
	}
	if !strings.Contains(parts[0], "settings.json") {
		t.Errorf("Expected first line to mention settings.json, got %q", parts[0])
	}
	if !strings.Contains(parts[1], "bash_guard.py") {
		t.Errorf("Expected second line to mention bash_guard.py, got %q", parts[1])
	}
}

func TestStatusForState(t *testing.T) {
	tests := []struct {
		state    types.AssetState
		expected Status
	}{
		{types.StateInstalled, StatusInstalled},
		{types.StateMissing, StatusPlanned},
		{types.StateModified, StatusModified},
	}

	for _, tt := range tests {
		if got := StatusForState(tt.state); got != tt.expected {
			t.Errorf("StatusForState(%q) = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestGroupLabel(t *testing.T) {
	tests := []struct {
		relPath  string
		expected string
	}{
		{"settings.json", "settings"},
		{"bash_guard.py", "hooks"},
		{"utils/env_loader.py", "utils"},
		{"statusline/statusline.py", "statusline"},
		{"agents/code-reviewer.md", "agents"},
		{"output-styles/minimal.md", "output-styles"},
	}

	for _, tt := range tests {
		if got := GroupLabel(tt.relPath); got != tt.expected {
			t.Errorf("GroupLabel(%q) = %q, want %q", tt.relPath, got, tt.expected)
		}
	}
}

func TestStatusStyleDistinct(t *testing.T) {
	// Each status should render with its own style so lines are scannable.
	statuses := []Status{StatusInstalled, StatusSkipped, StatusPlanned, StatusModified, StatusError}
	for _, s := range statuses {
		if StatusStyle(s) == nil {
			t.Errorf("StatusStyle(%q) returned nil", s)
		}
	}
}
