// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/modalities/modalities/pkg/modality"
)

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple - used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for true results and checkmarks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors and false results.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for keys and commands.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// KeyStyle is for field labels and command names.
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// modalityColors gives each modality its own accent in `list` output.
	modalityColors = map[modality.Set]lipgloss.Color{
		modality.Audio: lipgloss.Color("#F472B6"),
		modality.Image: lipgloss.Color("#34D399"),
		modality.Text:  lipgloss.Color("#60A5FA"),
		modality.Video: lipgloss.Color("#FBBF24"),
		modality.Other: ColorMuted,
	}
)

// modalityStyle returns the accent style for a single-flag set.
func modalityStyle(flag modality.Set) lipgloss.Style {
	color, ok := modalityColors[flag]
	if !ok {
		return SubtitleStyle
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
