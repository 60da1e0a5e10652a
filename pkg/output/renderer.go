package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/output/styles"
	"github.com/arthur-debert/clawkit/pkg/types"
)

// Renderer writes command results as human-readable summaries or JSON.
//
// Layout (indentation, blank lines) is composed here so colored and plain
// output line up byte for byte; the style registry only contributes
// emphasis. With noColor set every style lookup is skipped entirely.
type Renderer struct {
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a Renderer writing to w. When noColor is true all
// styling is suppressed, which is also the right mode for pipes and for
// the plain text format.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	log := logging.GetLogger("output.renderer")
	log.Debug().
		Bool("noColor", noColor).
		Str("NO_COLOR_env", os.Getenv("NO_COLOR")).
		Str("TERM", os.Getenv("TERM")).
		Msg("Creating renderer")

	return &Renderer{
		writer:  w,
		noColor: noColor,
	}
}

// styled applies a registry style unless the renderer runs colorless.
func (r *Renderer) styled(name, text string) string {
	if r.noColor {
		return text
	}
	return styles.GetStyle(name).Render(text)
}

// RenderInstall writes the closing summary for an install run. Per-asset
// lines are rendered separately; this reports the totals, the target, and
// the dry-run notice.
func (r *Renderer) RenderInstall(res *types.InstallResult) error {
	var b strings.Builder
	b.WriteByte('\n')

	switch {
	case res.Installed == 0:
		b.WriteString("  ")
		b.WriteString(r.styled("NoContent", "everything up to date, nothing to install"))
		b.WriteByte('\n')
	case res.DryRun:
		b.WriteString("  ")
		b.WriteString(r.styled("Warning", fmt.Sprintf("%d to install", res.Installed)))
		b.WriteString(", ")
		b.WriteString(r.styled("Muted", fmt.Sprintf("%d already present", res.Skipped)))
		b.WriteByte('\n')
	default:
		b.WriteString("  ")
		b.WriteString(r.styled("Success", fmt.Sprintf("%d installed", res.Installed)))
		b.WriteString(", ")
		b.WriteString(r.styled("Muted", fmt.Sprintf("%d skipped", res.Skipped)))
		b.WriteByte('\n')
	}

	b.WriteString("  ")
	b.WriteString(r.styled("Muted", "target: "))
	b.WriteString(r.styled("Target", res.Target))
	b.WriteByte('\n')

	if res.DryRun {
		b.WriteString("  ")
		b.WriteString(r.styled("DryRunBanner", "dry run: no changes were made"))
		b.WriteByte('\n')
	}

	_, err := fmt.Fprint(r.writer, b.String())
	return err
}

// RenderStatus writes the closing summary for a status run.
func (r *Renderer) RenderStatus(res *types.StatusResult) error {
	missing, installed, modified := res.Counts()

	var b strings.Builder
	b.WriteByte('\n')

	b.WriteString("  ")
	b.WriteString(r.styled("Success", fmt.Sprintf("%d installed", installed)))
	b.WriteString(", ")
	b.WriteString(r.styled("Warning", fmt.Sprintf("%d missing", missing)))
	b.WriteString(", ")
	b.WriteString(r.styled("Info", fmt.Sprintf("%d modified", modified)))
	b.WriteByte('\n')

	b.WriteString("  ")
	if res.Settings == types.MergeApplied {
		b.WriteString(r.styled("Warning", "settings.json has changes pending"))
	} else {
		b.WriteString(r.styled("Muted", "settings.json up to date"))
	}
	b.WriteByte('\n')

	if missing > 0 || res.Settings == types.MergeApplied {
		b.WriteString("  ")
		b.WriteString(r.styled("Info", "run 'clawkit install' to apply"))
		b.WriteByte('\n')
	}

	b.WriteString("  ")
	b.WriteString(r.styled("Muted", "target: "))
	b.WriteString(r.styled("Target", res.Target))
	b.WriteByte('\n')

	_, err := fmt.Fprint(r.writer, b.String())
	return err
}

// RenderList writes the full kit listing: origin, description, and every
// group with its assets.
func (r *Renderer) RenderList(res *types.ListResult) error {
	kit := res.Kit

	var b strings.Builder
	header := "kit " + kit.Name
	if kit.Version != "" {
		header += " " + kit.Version
	}
	b.WriteString(r.styled("Header", header))
	if kit.Embedded {
		b.WriteString(" ")
		b.WriteString(r.styled("MutedItalic", "(embedded)"))
	}
	b.WriteByte('\n')

	if kit.Description != "" {
		b.WriteString("  ")
		b.WriteString(r.styled("Muted", kit.Description))
		b.WriteByte('\n')
	}

	for _, group := range kit.Groups {
		b.WriteByte('\n')
		b.WriteString("  ")
		b.WriteString(r.styled("Group", group.Name))
		b.WriteString(" ")
		b.WriteString(r.styled("Count", fmt.Sprintf("(%d)", len(group.Assets))))
		if group.Optional {
			b.WriteString(" ")
			b.WriteString(r.styled("MutedItalic", "optional"))
		}
		b.WriteByte('\n')

		for _, asset := range group.Assets {
			b.WriteString("    ")
			b.WriteString(r.styled("FilePath", asset))
			b.WriteByte('\n')
		}
	}

	_, err := fmt.Fprint(r.writer, b.String())
	return err
}

// RenderGenConfig reports what gen-config did. Without a path the default
// configuration itself is the output, written verbatim so it can be piped
// straight into a file.
func (r *Renderer) RenderGenConfig(res *types.GenConfigResult) error {
	if res.Path == "" {
		_, err := fmt.Fprint(r.writer, res.Content)
		return err
	}

	var b strings.Builder
	switch {
	case res.Written && res.DryRun:
		b.WriteString(r.styled("Warning", "would write "+res.Path))
		b.WriteByte('\n')
		b.WriteString(r.styled("DryRunBanner", "dry run: no changes were made"))
		b.WriteByte('\n')
	case res.Written:
		b.WriteString(r.styled("Success", "wrote "+res.Path))
		b.WriteByte('\n')
	default:
		b.WriteString(r.styled("Warning", "config already exists at "+res.Path+", leaving it in place"))
		b.WriteByte('\n')
		b.WriteString(r.styled("Info", "use --force to overwrite"))
		b.WriteByte('\n')
	}

	_, err := fmt.Fprint(r.writer, b.String())
	return err
}

// RenderError renders an error message with appropriate styling
func (r *Renderer) RenderError(err error) error {
	line := r.styled("Error", "Error:") + " " + err.Error()
	_, writeErr := fmt.Fprintln(r.writer, line)
	return writeErr
}

// RenderMessage renders a simple message with optional styling
func (r *Renderer) RenderMessage(style, message string) error {
	_, err := fmt.Fprintln(r.writer, r.styled(style, message))
	return err
}

// RenderJSON writes v as indented JSON, the machine-readable counterpart
// of the summary views.
func (r *Renderer) RenderJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(r.writer, string(data))
	return err
}
