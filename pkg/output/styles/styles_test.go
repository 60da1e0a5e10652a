// TEST TYPE: Unit Tests
// DEPENDENCIES: Embedded styles.yaml
// PURPOSE: Verify the style registry loads and resolves semantic styles

package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/clawkit/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	// Test that all expected styles are present
	expectedStyles := []string{
		// Headers
		"Header", "SubHeader",
		// Status styles
		"Success", "Error", "Warning", "Info", "Muted",
		// Text formatting
		"Bold", "Italic", "Underline", "MutedItalic",
		// Content types
		"FilePath", "Group", "Target", "Count",
		// Layout
		"Indent", "DoubleIndent", "Section",
		// Special
		"DryRunBanner", "NoContent", "Timestamp",
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			style, exists := styles.StyleRegistry[styleName]
			assert.True(t, exists, "Style %s should exist in registry", styleName)
			assert.NotNil(t, style, "Style %s should not be nil", styleName)
		})
	}

	// Ensure we have the expected number of styles (helps catch removals)
	assert.GreaterOrEqual(t, len(styles.StyleRegistry), len(expectedStyles),
		"StyleRegistry should contain at least %d styles", len(expectedStyles))
}

func TestGetStyle(t *testing.T) {
	tests := []struct {
		name        string
		styleName   string
		shouldExist bool
	}{
		{
			name:        "existing style Success",
			styleName:   "Success",
			shouldExist: true,
		},
		{
			name:        "existing style Error",
			styleName:   "Error",
			shouldExist: true,
		},
		{
			name:        "non-existent style",
			styleName:   "NonExistentStyle",
			shouldExist: false,
		},
		{
			name:        "empty string style name",
			styleName:   "",
			shouldExist: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := styles.GetStyle(tt.styleName)
			assert.NotNil(t, style, "GetStyle should never return nil")

			if tt.shouldExist {
				registryStyle, exists := styles.StyleRegistry[tt.styleName]
				assert.True(t, exists, "Style should exist in registry")
				assert.Equal(t, registryStyle, style, "Should return registry style")
			} else {
				assert.Equal(t, lipgloss.NewStyle(), style, "Should return default style")
			}

			// Ensure the style can be used without panic
			rendered := style.Render("test content")
			assert.NotEmpty(t, rendered, "Style should render content")
		})
	}
}

func TestMergeStyles(t *testing.T) {
	tests := []struct {
		name   string
		styles []string
	}{
		{name: "single style", styles: []string{"Bold"}},
		{name: "multiple compatible styles", styles: []string{"Bold", "Underline"}},
		{name: "color and formatting", styles: []string{"Success", "Bold"}},
		{name: "with non-existent style", styles: []string{"Bold", "NonExistent", "Italic"}},
		{name: "empty list", styles: []string{}},
		{name: "duplicate styles", styles: []string{"Bold", "Bold", "Italic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := styles.MergeStyles(tt.styles...)
			assert.NotNil(t, merged, "MergeStyles should never return nil")

			result := merged.Render("test content")
			assert.NotEmpty(t, result, "Merged style should render content")
		})
	}
}

func TestStyleProperties(t *testing.T) {
	// Spot-check properties pinned in styles.yaml
	tests := []struct {
		name           string
		styleName      string
		checkBold      bool
		expectedBold   bool
		checkItalic    bool
		expectedItalic bool
	}{
		{
			name:         "Header style is bold",
			styleName:    "Header",
			checkBold:    true,
			expectedBold: true,
		},
		{
			name:         "Bold style applies bold",
			styleName:    "Bold",
			checkBold:    true,
			expectedBold: true,
		},
		{
			name:           "Italic style applies italic",
			styleName:      "Italic",
			checkItalic:    true,
			expectedItalic: true,
		},
		{
			name:           "MutedItalic is italic",
			styleName:      "MutedItalic",
			checkItalic:    true,
			expectedItalic: true,
		},
		{
			name:           "NoContent is italic",
			styleName:      "NoContent",
			checkItalic:    true,
			expectedItalic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := styles.GetStyle(tt.styleName)
			require.NotNil(t, style, "Style should exist")

			if tt.checkBold {
				assert.Equal(t, tt.expectedBold, style.GetBold(),
					"Bold property mismatch for %s", tt.styleName)
			}
			if tt.checkItalic {
				assert.Equal(t, tt.expectedItalic, style.GetItalic(),
					"Italic property mismatch for %s", tt.styleName)
			}
		})
	}
}

func TestLoadStyles(t *testing.T) {
	t.Run("load from valid path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "styles.yaml")
		content := `
colors:
  accent:
    light: "#112233"
    dark: "#AABBCC"
styles:
  Fancy:
    bold: true
    foreground: accent
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		err := styles.LoadStyles(path)
		assert.NoError(t, err, "Should load styles from valid path")
		assert.True(t, styles.GetStyle("Fancy").GetBold(), "Loaded style should be applied")

		// Restore the embedded registry for other tests
		t.Cleanup(func() {
			require.NoError(t, styles.LoadStylesFromData(embeddedForTest(t)))
		})
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		err := styles.LoadStyles("/non/existent/path/styles.yaml")
		assert.Error(t, err, "Should error on non-existent file")
		assert.Contains(t, err.Error(), "failed to read styles file")
	})

	t.Run("error on malformed data", func(t *testing.T) {
		err := styles.LoadStylesFromData([]byte("styles: [not, a, map]"))
		assert.Error(t, err, "Should error on malformed YAML")
	})
}

// embeddedForTest re-reads styles.yaml from the package directory so tests
// that overwrite the registry can put the real definitions back.
func embeddedForTest(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("styles.yaml")
	require.NoError(t, err)
	return data
}

func TestStyleRendering(t *testing.T) {
	// Test that various styles render content correctly
	testContent := "Test Content"

	styleNames := []string{
		"Header", "Success", "Error", "Warning",
		"Bold", "Italic", "Underline",
		"Group", "FilePath", "Target",
	}

	for _, styleName := range styleNames {
		t.Run(styleName, func(t *testing.T) {
			style := styles.GetStyle(styleName)
			rendered := style.Render(testContent)

			// At minimum, the content should be present
			assert.Contains(t, rendered, testContent,
				"Rendered output should contain the original content")
		})
	}
}
