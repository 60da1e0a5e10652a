// Package output renders command results for the terminal.
//
// # Architecture Overview
//
// Rendering is split across three packages:
//
//  1. Style Registry (styles/): semantic lipgloss styles loaded from an
//     embedded YAML file
//  2. pkg/style: per-asset status lines, colored with pterm
//  3. Renderer (this package): summary views, error lines, and JSON
//
// Commands return structured results (InstallResult, StatusResult,
// ListResult, GenConfigResult) and never print; the CLI layer picks a
// format and hands the result to a Renderer. This keeps the engines
// testable and makes the JSON output a first-class view rather than an
// afterthought.
//
// # Usage Example
//
//	r := output.NewRenderer(os.Stdout, noColor)
//	if format == ui.FormatJSON {
//	    return r.RenderJSON(result)
//	}
//	return r.RenderInstall(result)
//
// # Color Handling
//
// The Renderer composes all layout itself and uses registry styles only
// for emphasis, so colored and colorless output stay line-compatible.
// Terminal detection lives in pkg/ui; callers pass the decision in as
// the noColor flag.
package output
